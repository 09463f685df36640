package metricspace

// ImplicitMST computes the exact minimum spanning tree of the complete
// graph on points under metric, enumerating all n(n-1)/2 pairs and
// delegating to ArrayColoredMST. Returns nil if len(points) < 2.
//
// This is the exact baseline every approximation in this module (see
// package forest) is measured against.
func ImplicitMST[P any](points []P, metric Metric[P]) []WeightedEdge {
	n := len(points)
	if n < 2 {
		return nil
	}

	edges := make([]WeightedEdge, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, WeightedEdge{
				Weight: metric(points[i], points[j]),
				A:      PointIndex(i),
				B:      PointIndex(j),
			})
		}
	}

	return ArrayColoredMST(n, edges)
}

// EdgeSetWeight sums the weights of a set of edges. Used throughout the
// harness to turn a forest into a scalar cost.
func EdgeSetWeight(edges []WeightedEdge) float64 {
	var total float64
	for _, e := range edges {
		total += float64(e.Weight)
	}
	return total
}
