// Command mfc-edit runs a single MFC evaluation over a line-delimited
// string dataset under Levenshtein edit distance, mirroring the original
// edit_distance.cpp driver. Unlike mfc-vector/mfc-hamming it does not
// sweep N: edit distance is quadratic in string length, so the reference
// driver fixes N via an explicit argument instead of scanning a range.
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
		Use:   "mfc-edit <strings-file> <summary.csv> <all_trials.csv> <n> [cluster_test]",
		Short: "Evaluate MFC on a line-delimited string dataset under Levenshtein distance",
		Args:  cobra.RangeArgs(4, 5),
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

	n, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("mfc-edit: invalid n %q: %w", args[3], err)
	}

	clusterTest := len(args) == 5 && args[4] == "cluster_test"

	counts := harness.DefaultClusterCounts
	repeats := 16
	if clusterTest {
		counts = harness.ClusterTestCounts()
		repeats = 32
		n = 20000
	}

	metric := distance.Levenshtein
	generator := func(rng *rand.Rand, genArgs []float64) ([]string, error) {
		return dataset.RandomSubsetStrings(lines, int(genArgs[0]), rng), nil
	}
	evaluators := harness.BuildKCenterEvaluators(counts, metric)

	h, err := harness.NewHarness[string](summaryPath, allTrialsPath, campaignSeed, []string{"N"}, metric, generator, evaluators)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.RunTest(repeats, []float64{n})
}
