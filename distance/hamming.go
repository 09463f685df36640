package distance

import "fmt"

// Hamming counts the positions at which two equal-length strings differ.
// It panics, wrapping ErrLengthMismatch, if a and b differ in length, for
// the same reason Euclidean does: the metric signature has no error
// return, and a length mismatch here means the dataset itself is
// malformed (every record was expected to share one alphabet length).
func Hamming(a, b string) float32 {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: hamming %d vs %d", ErrLengthMismatch, len(a), len(b)))
	}

	var diff float32
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
		}
	}

	return diff
}
