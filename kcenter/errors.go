package kcenter

import "errors"

// ErrTooFewPoints is returned when there are fewer points than requested
// clusters: a valid k-centering of size k cannot be formed.
var ErrTooFewPoints = errors.New("kcenter: fewer points than clusters")
