package forest

import (
	"time"

	"github.com/katalvlaran/metricforest/metricspace"
)

// MetricForestCompletion is the result of running Complete on a point set.
type MetricForestCompletion struct {
	// ClusterEdges[c] is the exact MST of the points assigned to cluster c,
	// with endpoints remapped to metricspace.PointIndex in the ambient
	// point slice. Empty for clusters of size <= 1.
	ClusterEdges [][]metricspace.WeightedEdge
	// CompletionEdges connects clusters: one MST on the "cluster graph" of
	// size K, with endpoints retained as the ambient PointIndex of the
	// representative points chosen during candidate selection.
	CompletionEdges []metricspace.WeightedEdge

	// SubClusterRuntime is wall-clock time spent on per-cluster MSTs.
	SubClusterRuntime time.Duration
	// CompletionEdgesRuntime is wall-clock time spent selecting one
	// candidate completion edge per cluster pair.
	CompletionEdgesRuntime time.Duration
	// CompletionRuntime is wall-clock time spent running the MST over the
	// cluster graph formed by the selected candidates.
	CompletionRuntime time.Duration
}

// ClusterEdgeWeight sums the weight of every edge across all clusters.
func (m MetricForestCompletion) ClusterEdgeWeight() float64 {
	var total float64
	for _, edges := range m.ClusterEdges {
		total += metricspace.EdgeSetWeight(edges)
	}
	return total
}

// TotalWeight sums cluster-edge weight and completion-edge weight: the
// total cost of the MFC approximation.
func (m MetricForestCompletion) TotalWeight() float64 {
	return m.ClusterEdgeWeight() + metricspace.EdgeSetWeight(m.CompletionEdges)
}
