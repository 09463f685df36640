package dataset

import "github.com/katalvlaran/metricforest/mfcutil"

// LoadHDF5Vectors reads the named 2-D contiguous float dataset from an
// HDF5 file and validates every row has the expected dimension.
func LoadHDF5Vectors(path, datasetName string, dim int) ([][]float32, error) {
	rows, err := mfcutil.ReadVectorDataset(path, datasetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	for _, row := range rows {
		if len(row) != dim {
			return nil, ErrUnsupportedDimension
		}
	}

	return rows, nil
}
