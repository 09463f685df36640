package metricspace

import "sort"

// ArrayColoredMST computes the minimum spanning forest of the graph on
// numNodes vertices (indices [0, numNodes)) described by edges.
//
// Algorithm (fixed to match the reference's behaviour — do not "upgrade"
// to union-find, see doc.go and DESIGN.md):
//
//  1. Sort edges by ascending Weight. The sort is stable so that, for
//     equal weights, ties break on the edges' original relative order —
//     any stable ordering produces a minimum forest, but determinism
//     across runs depends on a stable sort.
//  2. Maintain a colour array colour[0..numNodes) initialised so that
//     colour[i] == i.
//  3. For each edge (w, a, b) in sorted order: if colour[a] == colour[b]
//     skip it (it would close a cycle); otherwise keep the edge and
//     repaint every node currently coloured colour[b] to colour[a] with
//     a linear scan.
//
// This is an intentional O(E log E + E*numNodes) algorithm. The colour
// repaint is O(numNodes) per merge rather than the near-O(1) amortised
// cost of union-find with path compression, but every call site in this
// module invokes ArrayColoredMST with numNodes equal to either a single
// cluster's member count or the cluster count k (bounded by a few
// hundred), where the constant-factor savings of avoiding union-find's
// bookkeeping dominate, and the code carries no mutable shared state
// across invocations (safe to call concurrently for different inputs).
//
// Returns a forest with at most numNodes-1 edges, minimising total
// weight. Non-finite weights (NaN, +Inf) propagate unchanged; no error is
// signalled for them.
func ArrayColoredMST(numNodes int, edges []WeightedEdge) []WeightedEdge {
	if numNodes <= 1 || len(edges) == 0 {
		return nil
	}

	sorted := make([]WeightedEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	colour := make([]int, numNodes)
	for i := range colour {
		colour[i] = i
	}

	forest := make([]WeightedEdge, 0, numNodes-1)
	for _, e := range sorted {
		ca, cb := colour[e.A], colour[e.B]
		if ca == cb {
			continue
		}
		forest = append(forest, e)

		// Repaint every node currently coloured cb to ca. This linear
		// scan, repeated once per accepted edge, is the "array-coloured"
		// merge this algorithm is named for.
		for i, c := range colour {
			if c == cb {
				colour[i] = ca
			}
		}

		if len(forest) == numNodes-1 {
			break
		}
	}

	return forest
}
