package distance_test

import (
	"testing"

	"github.com/katalvlaran/metricforest/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}
	assert.InDelta(t, 5.0, distance.Euclidean(a, b), 1e-6)
	assert.Equal(t, float32(0), distance.Euclidean(a, a))
}

func TestEuclidean_LengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		distance.Euclidean([]float32{1, 2}, []float32{1, 2, 3})
	})
}

func TestHamming(t *testing.T) {
	assert.Equal(t, float32(0), distance.Hamming("abc", "abc"))
	assert.Equal(t, float32(1), distance.Hamming("abc", "abd"))
	assert.Equal(t, float32(3), distance.Hamming("abc", "xyz"))
}

func TestHamming_LengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		distance.Hamming("abc", "ab")
	})
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want float32
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, distance.Levenshtein(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}

func TestJaccard(t *testing.T) {
	a := map[int]struct{}{1: {}, 2: {}, 3: {}}
	b := map[int]struct{}{2: {}, 3: {}, 4: {}}
	// intersection {2,3}=2, union {1,2,3,4}=4 -> 1 - 2/4 = 0.5
	assert.InDelta(t, 0.5, distance.Jaccard(a, b), 1e-6)
	assert.Equal(t, float32(0), distance.Jaccard(a, a))
}

func TestJaccard_BothEmptyIsZero(t *testing.T) {
	empty := map[int]struct{}{}
	assert.Equal(t, float32(0), distance.Jaccard(empty, empty))
}

func TestJaccard_OneEmptyIsOne(t *testing.T) {
	empty := map[int]struct{}{}
	nonEmpty := map[int]struct{}{1: {}}
	assert.Equal(t, float32(1), distance.Jaccard(empty, nonEmpty))
}
