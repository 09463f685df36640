// Package metricforest computes approximate minimum spanning trees over
// metric point sets via Metric Forest Completion: k-center clustering
// followed by per-cluster exact MSTs stitched together by a small set of
// inter-cluster completion edges.
//
// The module is organized as:
//
//	metricspace/ — the abstract Metric contract and exact MST primitives
//	              (ArrayColoredMST, ImplicitMST)
//	kcenter/     — farthest-point-traversal k-centering
//	forest/      — Metric Forest Completion: per-cluster MST + completion
//	distance/    — concrete metrics (Euclidean, Hamming, Levenshtein, Jaccard)
//	dataset/     — loaders (line-delimited strings/int-sets, HDF5) and
//	              synthetic generators (uniform, Gaussian)
//	mfcstats/    — population mean/stddev aggregation
//	mfcutil/     — random subset sampling, vector helpers, HDF5 reader
//	harness/     — replicated test-runner producing summary/all_trials CSVs
//	cmd/mfc-*    — one CLI binary per metric
//
// Approximation quality (measured by "gamma", the ratio of the forest
// completion's intra-cluster edge weight to the weight of the exact MST
// edges whose endpoints share a cluster) depends on the metric satisfying the
// triangle inequality; the algorithms themselves only require a metric
// to be symmetric, non-negative, and zero on equal points.
package metricforest
