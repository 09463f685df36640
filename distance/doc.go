// Package distance provides the concrete metricspace.Metric implementations
// used by the mfc-* command-line tools: Euclidean over float32 vectors,
// Hamming and Levenshtein over strings, and Jaccard over integer sets.
//
// Every function here is a metricspace.Metric[P] for some P: it is safe to
// pass directly as the metric argument to kcenter.Cluster, forest.Complete,
// or metricspace.ImplicitMST.
package distance
