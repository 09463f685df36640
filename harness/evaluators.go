package harness

import (
	"fmt"

	"github.com/katalvlaran/metricforest/forest"
	"github.com/katalvlaran/metricforest/kcenter"
	"github.com/katalvlaran/metricforest/metricspace"
)

// DefaultClusterCounts are the five cluster counts every mfc-* binary
// evaluates in normal mode, matching every original driver's fixed_cluster
// list (16, 32, 64, 128, 256).
var DefaultClusterCounts = []int{16, 32, 64, 128, 256}

// ClusterTestCounts returns every cluster count in [2, 150), the sweep
// used by the CLI's "cluster_test" mode in place of DefaultClusterCounts.
func ClusterTestCounts() []int {
	counts := make([]int, 0, 148)
	for k := 2; k < 150; k++ {
		counts = append(counts, k)
	}
	return counts
}

// BuildKCenterEvaluators builds one Evaluator per cluster count, each
// running kcenter.Cluster (seeded at kcenter.DefaultSeedIndex) followed by
// forest.Complete with the given metric — the "C{k}" pipeline every mfc-* binary
// evaluates, regardless of point type or metric.
func BuildKCenterEvaluators[P any](counts []int, metric metricspace.Metric[P]) []Evaluator[P] {
	evaluators := make([]Evaluator[P], len(counts))
	for i, k := range counts {
		k := k
		evaluators[i] = Evaluator[P]{
			Name: fmt.Sprintf("C%d", k),
			Run: func(points []P, _ []float64) (kcenter.Clustering, forest.MetricForestCompletion, error) {
				clustering, err := kcenter.Cluster(points, k, kcenter.DefaultSeedIndex(len(points)), metric)
				if err != nil {
					return kcenter.Clustering{}, forest.MetricForestCompletion{}, err
				}
				mfc := forest.Complete(points, k, clustering.Assignments, metric)
				return clustering, mfc, nil
			},
		}
	}
	return evaluators
}
