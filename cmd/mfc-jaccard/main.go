// Command mfc-jaccard runs a single MFC evaluation over a line-delimited
// integer-set dataset under Jaccard distance, mirroring the original
// jaccard.cpp driver. Unlike mfc-vector/mfc-hamming it does not sweep N:
// the dataset size is fixed by the input file, so the reference driver
// runs exactly one trial shape over the whole dataset.
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
		Use:   "mfc-jaccard <sets-file> <summary.csv> <all_trials.csv> [edge_size_filter] [cluster_test]",
		Short: "Evaluate MFC on a line-delimited integer-set dataset under Jaccard distance",
		Args:  cobra.RangeArgs(3, 5),
		RunE:  run,
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	edgeSizeFilter := 0
	clusterTest := false
	for _, extra := range args[3:] {
		if extra == "cluster_test" {
			clusterTest = true
			continue
		}
		filter, err := strconv.Atoi(extra)
		if err != nil {
			return fmt.Errorf("mfc-jaccard: invalid edge_size_filter %q: %w", extra, err)
		}
		edgeSizeFilter = filter
	}

	sets, err := dataset.LoadIntSets(args[0], edgeSizeFilter)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded dataset of size %d\n", len(sets))

	summaryPath, allTrialsPath := args[1], args[2]

	counts := harness.DefaultClusterCounts
	repeats := 16
	n := float64(len(sets))
	if clusterTest {
		counts = harness.ClusterTestCounts()
		repeats = 32
		n = 20000
	}

	metric := distance.Jaccard
	generator := func(rng *rand.Rand, genArgs []float64) ([]map[int]struct{}, error) {
		return dataset.RandomSubsetIntSets(sets, int(genArgs[0]), rng), nil
	}
	evaluators := harness.BuildKCenterEvaluators(counts, metric)

	h, err := harness.NewHarness[map[int]struct{}](summaryPath, allTrialsPath, campaignSeed, []string{"N"}, metric, generator, evaluators)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.RunTest(repeats, []float64{n})
}
