package mfcutil

import "math/rand"

// RandomSubset returns a random subset of n elements drawn from items
// without replacement, using a partial Fisher-Yates shuffle: only the
// first n positions are ever swapped, so the shuffle does O(n) swaps
// rather than O(len(items)). The input is still copied once in full
// (O(len(items))) so that items is left untouched.
//
// https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
//
// If n >= len(items), a shuffled copy of the full slice is returned. items
// itself is never mutated.
func RandomSubset[T any](items []T, n int, rng *rand.Rand) []T {
	pool := make([]T, len(items))
	copy(pool, items)

	if n > len(pool) {
		n = len(pool)
	}

	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	subset := make([]T, n)
	copy(subset, pool[:n])
	return subset
}
