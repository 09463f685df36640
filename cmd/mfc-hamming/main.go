// Command mfc-hamming runs the MFC evaluation campaign over a
// line-delimited string dataset under Hamming distance, mirroring the
// original hamming_distance.cpp driver.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metricforest/dataset"
	"github.com/katalvlaran/metricforest/distance"
	"github.com/katalvlaran/metricforest/harness"
)

const campaignSeed = 1

func main() {
	cmd := &cobra.Command{
		Use:   "mfc-hamming <strings-file> <summary.csv> <all_trials.csv> [cluster_test]",
		Short: "Evaluate MFC on a line-delimited string dataset under Hamming distance",
		Args:  cobra.RangeArgs(3, 4),
		RunE:  run,
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	lines, err := dataset.LoadLines(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Loaded dataset of size %d\n", len(lines))

	summaryPath, allTrialsPath := args[1], args[2]
	clusterTest := len(args) == 4 && args[3] == "cluster_test"

	counts := harness.DefaultClusterCounts
	if clusterTest {
		counts = harness.ClusterTestCounts()
	}

	metric := distance.Hamming
	generator := func(rng *rand.Rand, genArgs []float64) ([]string, error) {
		return dataset.RandomSubsetStrings(lines, int(genArgs[0]), rng), nil
	}
	evaluators := harness.BuildKCenterEvaluators(counts, metric)

	h, err := harness.NewHarness[string](summaryPath, allTrialsPath, campaignSeed, []string{"N"}, metric, generator, evaluators)
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
