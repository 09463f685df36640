package harness

import (
	"math/rand"

	"github.com/katalvlaran/metricforest/forest"
	"github.com/katalvlaran/metricforest/kcenter"
	"github.com/katalvlaran/metricforest/metricspace"
)

// Evaluator is one named clustering+MFC pipeline a Harness runs against
// every generated dataset, e.g. "C16" running kcenter.Cluster(points, 16,
// ...) followed by forest.Complete. The name becomes the column prefix
// "C16_MFC_Cost", "C16_Gamma", etc. in both CSV outputs.
type Evaluator[P any] struct {
	Name string
	Run  func(points []P, args []float64) (kcenter.Clustering, forest.MetricForestCompletion, error)
}

// DatasetGenerator produces one dataset of points for a replicate, given
// the harness's owned RNG and the numeric args for this RunTest call
// (e.g. N, or (GaussCount, PointsPerGauss)). Never called concurrently:
// the harness only ever calls it from the coordinating goroutine, in
// submission order, before any replicate work is scheduled.
type DatasetGenerator[P any] func(rng *rand.Rand, args []float64) ([]P, error)

// Harness owns the seeded RNG, the two output sinks, and the evaluator
// list for one metric's test campaign. Construct with NewHarness; a zero
// Harness is not usable.
type Harness[P any] struct {
	metric      metricspace.Metric[P]
	generator   DatasetGenerator[P]
	evaluators  []Evaluator[P]
	argsHeaders []string

	rng *rand.Rand

	summary    *rowWriter
	allTrials  *rowWriter
	maxWorkers int
}
