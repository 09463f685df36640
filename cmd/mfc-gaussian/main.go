// Command mfc-gaussian runs the MFC evaluation campaign over synthetic
// Gaussian-blob vectors, mirroring the original gaussian.cpp driver.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metricforest/dataset"
	"github.com/katalvlaran/metricforest/distance"
	"github.com/katalvlaran/metricforest/harness"
)

const campaignSeed = 1

func main() {
	cmd := &cobra.Command{
		Use:   "mfc-gaussian <dim> <summary.csv> <all_trials.csv> [cluster_test]",
		Short: "Evaluate MFC on synthetic Gaussian-blob vectors",
		Args:  cobra.RangeArgs(3, 4),
		RunE:  run,
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dim, err := strconv.Atoi(args[0])
	if err != nil || !dataset.IsSupportedDimension(dim) {
		return fmt.Errorf("mfc-gaussian: unsupported dimension %q (want one of %v)", args[0], dataset.SupportedDimensions)
	}
	summaryPath, allTrialsPath := args[1], args[2]
	clusterTest := len(args) == 4 && args[3] == "cluster_test"

	counts := harness.DefaultClusterCounts
	if clusterTest {
		counts = harness.ClusterTestCounts()
	}

	metric := distance.Euclidean
	generator := func(rng *rand.Rand, genArgs []float64) ([][]float32, error) {
		numGauss := int(genArgs[0])
		pointsPerGauss := int(genArgs[1])
		return dataset.GenGaussian(rng, numGauss, pointsPerGauss, dim)
	}
	evaluators := harness.BuildKCenterEvaluators(counts, metric)

	h, err := harness.NewHarness[[]float32](summaryPath, allTrialsPath, campaignSeed, []string{"GaussCount", "PointsPerGauss"}, metric, generator, evaluators)
	if err != nil {
		return err
	}
	defer h.Close()

	if clusterTest {
		return h.RunTest(32, []float64{100, 200})
	}

	const n = 20000
	for gauss := 8; gauss <= 300; gauss++ {
		ppg := n / gauss
		fmt.Printf("Running tests for num_gauss=%d, points_per_gauss=%d\n", gauss, ppg)
		if err := h.RunTest(16, []float64{float64(gauss), float64(ppg)}); err != nil {
			return err
		}
	}
	return nil
}
