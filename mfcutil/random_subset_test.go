package mfcutil_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/metricforest/mfcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSubset_Size(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng := rand.New(rand.NewSource(1))

	subset := mfcutil.RandomSubset(items, 4, rng)
	require.Len(t, subset, 4)

	seen := map[int]bool{}
	for _, v := range subset {
		assert.False(t, seen[v], "no replacement: %d seen twice", v)
		seen[v] = true
	}
}

func TestRandomSubset_NDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3}
	cp := append([]int(nil), items...)
	rng := rand.New(rand.NewSource(7))

	_ = mfcutil.RandomSubset(items, 2, rng)
	assert.Equal(t, cp, items)
}

func TestRandomSubset_NLargerThanInput(t *testing.T) {
	items := []int{1, 2, 3}
	rng := rand.New(rand.NewSource(3))
	subset := mfcutil.RandomSubset(items, 10, rng)
	assert.Len(t, subset, 3)
}

func TestRandomSubset_Deterministic(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := mfcutil.RandomSubset(items, 5, rand.New(rand.NewSource(99)))
	b := mfcutil.RandomSubset(items, 5, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}
