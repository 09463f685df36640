package mfcutil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// RandomUniformVector fills a freshly allocated dim-dimensional float32
// vector with independent uniform samples in [lo, hi).
func RandomUniformVector(rng *rand.Rand, dim int, lo, hi float32) []float32 {
	v := make([]float32, dim)
	span := hi - lo
	for i := range v {
		v[i] = lo + span*rng.Float32()
	}
	return v
}

// RandomGaussianOffset returns mean perturbed by independent N(0, sigma^2)
// noise in each dimension: result[i] = mean[i] + sigma*N(0,1).
//
// The addition itself is delegated to gonum.org/v1/gonum/floats.AddScaled
// (operating on a float64 working copy, since floats.AddScaled is defined
// over []float64) rather than hand-rolled in a loop: this is the one place
// in the module vector algebra runs off the O(n^2) metric hot path, so the
// float64 round-trip cost is immaterial and the dependency is exercised
// for what it is good at.
func RandomGaussianOffset(rng *rand.Rand, mean []float32, sigma float32) []float32 {
	dim := len(mean)
	dst := make([]float64, dim)
	noise := make([]float64, dim)
	for i := 0; i < dim; i++ {
		dst[i] = float64(mean[i])
		noise[i] = rng.NormFloat64()
	}

	floats.AddScaled(dst, float64(sigma), noise)

	out := make([]float32, dim)
	for i, v := range dst {
		out[i] = float32(v)
	}
	return out
}
