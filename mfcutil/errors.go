package mfcutil

import "errors"

// ErrBadSignature indicates the file does not begin with the expected
// magic bytes for its format (e.g. the HDF5 8-byte signature).
var ErrBadSignature = errors.New("mfcutil: bad file signature")

// ErrUnsupportedLayout indicates an HDF5 structure this reader does not
// implement: anything other than a version-0 superblock with 8-byte
// offsets/lengths, a single contiguous 2-D floating point dataset of
// IEEE floats, or a chunked/compressed data layout.
var ErrUnsupportedLayout = errors.New("mfcutil: unsupported HDF5 layout")

// ErrDatasetNotFound indicates the requested dataset name was not present
// in the root group's B-tree/local-heap symbol table.
var ErrDatasetNotFound = errors.New("mfcutil: dataset not found")
