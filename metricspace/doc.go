// Package metricspace defines the abstract metric contract and the exact
// minimum spanning tree primitives the rest of this module builds on.
//
// A Metric is any callable (P, P) -> float32 that is symmetric and
// non-negative with d(a,a) == 0. The triangle inequality is not required
// for the algorithms here to run, only for the approximation guarantees
// of callers further up the stack (see package forest).
//
// Two MST builders live here:
//
//   - ArrayColoredMST operates on an explicit edge list over a known node
//     count. It is the Kruskal variant this module standardizes on: a
//     per-vertex colour array repainted by linear scan on every merge,
//     rather than a union-find. The constant factor favours small vertex
//     counts (a single cluster, or the cluster count itself), which is
//     the only shape ArrayColoredMST is ever asked to solve.
//   - ImplicitMST builds the complete graph on a point slice under a
//     Metric and delegates to ArrayColoredMST. It is the exact baseline
//     against which approximate solutions are measured.
package metricspace
