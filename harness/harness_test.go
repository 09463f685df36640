package harness_test

import (
	"bufio"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/metricforest/distance"
	"github.com/katalvlaran/metricforest/forest"
	"github.com/katalvlaran/metricforest/harness"
	"github.com/katalvlaran/metricforest/kcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	return n
}

func TestHarness_CSVShape(t *testing.T) {
	dir := t.TempDir()
	summaryPath := filepath.Join(dir, "summary.csv")
	allPath := filepath.Join(dir, "all_trials.csv")

	evaluators := []harness.Evaluator[[]float32]{
		{
			Name: "C2",
			Run: func(points [][]float32, args []float64) (kcenter.Clustering, forest.MetricForestCompletion, error) {
				clustering, err := kcenter.Cluster(points, 2, kcenter.DefaultSeedIndex(len(points)), distance.Euclidean)
				if err != nil {
					return kcenter.Clustering{}, forest.MetricForestCompletion{}, err
				}
				mfc := forest.Complete(points, 2, clustering.Assignments, distance.Euclidean)
				return clustering, mfc, nil
			},
		},
	}

	generator := func(rng *rand.Rand, args []float64) ([][]float32, error) {
		n := int(args[0])
		points := make([][]float32, n)
		for i := range points {
			points[i] = []float32{rng.Float32(), rng.Float32()}
		}
		return points, nil
	}

	h, err := harness.NewHarness[[]float32](summaryPath, allPath, 1, []string{"N"}, distance.Euclidean, generator, evaluators)
	require.NoError(t, err)

	require.NoError(t, h.RunTest(2, []float64{10}))
	require.NoError(t, h.Close())

	assert.Equal(t, 3, countLines(t, allPath), "header + 2 replicate rows")
	assert.Equal(t, 2, countLines(t, summaryPath), "header + 1 summary row")

	allFile, err := os.ReadFile(allPath)
	require.NoError(t, err)
	header := strings.Split(strings.TrimSpace(strings.SplitN(string(allFile), "\n", 2)[0]), ", ")
	assert.Equal(t, []string{
		"N", "N", "MST_Cost", "MST_Runtime",
		"C2_MFC_Cost", "C2_MFC_Runtime", "C2_Gamma", "C2_Cluster_Size_Mu", "C2_Cluster_Size_Sigma",
		"C2_Sub_Clustering_Runtime", "C2_Completion_Edges_Runtime", "C2_Completion_Runtime", "C2_Clustering_Runtime",
	}, header)
}

func TestHarness_RejectsNoEvaluators(t *testing.T) {
	dir := t.TempDir()
	_, err := harness.NewHarness[[]float32](
		filepath.Join(dir, "s.csv"), filepath.Join(dir, "a.csv"), 1, nil, distance.Euclidean,
		func(rng *rand.Rand, args []float64) ([][]float32, error) { return nil, nil },
		nil,
	)
	assert.ErrorIs(t, err, harness.ErrNoEvaluators)
}
