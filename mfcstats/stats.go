package mfcstats

import "gonum.org/v1/gonum/stat"

// Stats returns the mean and population standard deviation (divide by
// len(vals), not len(vals)-1) of vals. Stats([x]) == (x, 0).
//
// gonum.org/v1/gonum/stat already distinguishes population statistics
// (PopMeanStdDev) from sample statistics with Bessel's correction
// (MeanStdDev); this wrapper exists only to pin the module to the
// population variant the reference implementation's consumers depend on,
// and to give the harness a zero-allocation (vals, nil weights) call site.
func Stats(vals []float64) (mean, stddev float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(vals, nil)
}
