// Package mfcutil collects small, independent primitives shared by the
// dataset loaders and generators: sampling a random subset without
// replacement, fixed-dimension vector algebra for synthetic point
// generation, and a minimal read-only HDF5 reader for one specific
// dataset shape (see doc comment on ReadVectorDataset).
package mfcutil
