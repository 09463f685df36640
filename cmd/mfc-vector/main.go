// Command mfc-vector runs the MFC evaluation campaign over synthetic
// uniform-random vectors, mirroring the original uniform.cpp driver.
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

// campaignSeed seeds every run's RNG identically: unlike the reference's
// std::random_device (seeded from OS entropy on every invocation), a
// fixed seed makes two runs over the same arguments produce
// byte-identical CSV output, matching spec.md §8's determinism property.
const campaignSeed = 1

func main() {
	cmd := &cobra.Command{
		Use:   "mfc-vector <dim> <summary.csv> <all_trials.csv> [cluster_test]",
		Short: "Evaluate MFC on synthetic uniform-random vectors",
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
		return fmt.Errorf("mfc-vector: unsupported dimension %q (want one of %v)", args[0], dataset.SupportedDimensions)
	}
	summaryPath, allTrialsPath := args[1], args[2]
	clusterTest := len(args) == 4 && args[3] == "cluster_test"

	counts := harness.DefaultClusterCounts
	if clusterTest {
		counts = harness.ClusterTestCounts()
	}

	metric := distance.Euclidean
	generator := func(rng *rand.Rand, genArgs []float64) ([][]float32, error) {
		return dataset.GenUniform(rng, int(genArgs[0]), dim)
	}
	evaluators := harness.BuildKCenterEvaluators(counts, metric)

	h, err := harness.NewHarness[[]float32](summaryPath, allTrialsPath, campaignSeed, []string{"N"}, metric, generator, evaluators)
	if err != nil {
		return err
	}
	defer h.Close()

	if clusterTest {
		return h.RunTest(32, []float64{20000})
	}

	for n := 500; n <= 30000; n += 100 {
		fmt.Printf("Running tests for N=%d\n", n)
		if err := h.RunTest(16, []float64{float64(n)}); err != nil {
			return err
		}
	}
	return nil
}
