package dataset

import (
	"math/rand"

	"github.com/katalvlaran/metricforest/mfcutil"
)

// SupportedDimensions lists the vector dimensions the synthetic CLI
// drivers accept, matching the original's DIM(...) switch-case list in
// uniform.cpp/gaussian.cpp.
var SupportedDimensions = []int{2, 4, 8, 16, 32, 64, 128, 256, 512}

// IsSupportedDimension reports whether dim appears in SupportedDimensions.
func IsSupportedDimension(dim int) bool {
	for _, d := range SupportedDimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// GenUniform generates n independent dim-dimensional vectors with
// coordinates uniform in [-1, 1), matching uniform.cpp's gen_dataset.
func GenUniform(rng *rand.Rand, n, dim int) ([][]float32, error) {
	if !IsSupportedDimension(dim) {
		return nil, ErrUnsupportedDimension
	}

	points := make([][]float32, n)
	for i := range points {
		points[i] = mfcutil.RandomUniformVector(rng, dim, -1, 1)
	}

	return points, nil
}

// gaussMeanLo, gaussMeanHi, gaussSigmaLo, gaussSigmaHi bound the per-blob
// center and spread drawn for each Gaussian, matching gaussian.cpp's
// mean_range = (-5, 5) and sigma_range = (0.5, 0.8).
const (
	gaussMeanLo  = -5.0
	gaussMeanHi  = 5.0
	gaussSigmaLo = 0.5
	gaussSigmaHi = 0.8
)

// GenGaussian generates numGauss Gaussian blobs of pointsPerGauss points
// each, in dim dimensions. Each blob independently draws a per-dimension
// mean in [gaussMeanLo, gaussMeanHi) and one isotropic sigma in
// [gaussSigmaLo, gaussSigmaHi) shared across dimensions, then samples
// pointsPerGauss points around that mean via mfcutil.RandomGaussianOffset
// — matching gaussian.cpp's gen_dataset in spirit (independent per-blob
// mean and spread), simplified from the original's independent per-
// dimension sigma to an isotropic one so each point can be drawn through
// the shared gonum-backed offset helper; a blob's qualitative shape
// (a well-separated spherical cluster) is unchanged by that
// simplification. Restored here because the original treats this as a
// full dataset driver in its own right, one spec.md's distillation
// dropped (see dataset.GenGaussian callers in cmd/mfc-gaussian).
func GenGaussian(rng *rand.Rand, numGauss, pointsPerGauss, dim int) ([][]float32, error) {
	if !IsSupportedDimension(dim) {
		return nil, ErrUnsupportedDimension
	}

	points := make([][]float32, 0, numGauss*pointsPerGauss)
	for g := 0; g < numGauss; g++ {
		mean := make([]float32, dim)
		for d := 0; d < dim; d++ {
			mean[d] = gaussMeanLo + float32(rng.Float64())*(gaussMeanHi-gaussMeanLo)
		}
		sigma := gaussSigmaLo + float32(rng.Float64())*(gaussSigmaHi-gaussSigmaLo)

		for j := 0; j < pointsPerGauss; j++ {
			points = append(points, mfcutil.RandomGaussianOffset(rng, mean, sigma))
		}
	}

	return points, nil
}

// RandomSubsetStrings returns a random size-n subset of items without
// replacement.
func RandomSubsetStrings(items []string, n int, rng *rand.Rand) []string {
	return mfcutil.RandomSubset(items, n, rng)
}

// RandomSubsetIntSets returns a random size-n subset of items without
// replacement.
func RandomSubsetIntSets(items []map[int]struct{}, n int, rng *rand.Rand) []map[int]struct{} {
	return mfcutil.RandomSubset(items, n, rng)
}

// RandomSubsetVectors returns a random size-n subset of items without
// replacement.
func RandomSubsetVectors(items [][]float32, n int, rng *rand.Rand) [][]float32 {
	return mfcutil.RandomSubset(items, n, rng)
}
