package dataset

import "errors"

// ErrEmptyFile indicates a line-delimited input file contained no usable
// records after parsing (and, for integer sets, after edge_size_filter).
var ErrEmptyFile = errors.New("dataset: no records loaded")

// ErrMalformedIntSet indicates a line in an integer-set file contained a
// non-numeric field.
var ErrMalformedIntSet = errors.New("dataset: malformed integer set line")

// ErrUnsupportedDimension indicates a synthetic generator was asked for a
// vector dimension outside the CLI's supported set
// {2,4,8,16,32,64,128,256,512}.
var ErrUnsupportedDimension = errors.New("dataset: unsupported dimension")
