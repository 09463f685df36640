package distance

import "errors"

// ErrLengthMismatch indicates two points passed to a fixed-alphabet metric
// (Hamming, fixed-dimension Euclidean) do not share a length/dimension.
var ErrLengthMismatch = errors.New("distance: length mismatch")
