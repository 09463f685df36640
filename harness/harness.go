package harness

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/metricforest/mfcstats"
	"github.com/katalvlaran/metricforest/metricspace"
)

// NewHarness creates a Harness, opens both output files, and writes their
// headers immediately — output-stream failures are therefore fatal at
// construction, before any replicate runs, matching spec.md §7's "Output-
// stream open failure: surfaced at harness construction; fatal."
func NewHarness[P any](
	summaryPath, allTrialsPath string,
	seed int64,
	argsHeaders []string,
	metric metricspace.Metric[P],
	generator DatasetGenerator[P],
	evaluators []Evaluator[P],
) (*Harness[P], error) {
	if len(evaluators) == 0 {
		return nil, ErrNoEvaluators
	}

	summary, err := newRowWriter(summaryPath)
	if err != nil {
		return nil, err
	}
	allTrials, err := newRowWriter(allTrialsPath)
	if err != nil {
		summary.close()
		return nil, err
	}

	h := &Harness[P]{
		metric:      metric,
		generator:   generator,
		evaluators:  evaluators,
		argsHeaders: argsHeaders,
		rng:         rand.New(rand.NewSource(seed)),
		summary:     summary,
		allTrials:   allTrials,
		maxWorkers:  runtime.GOMAXPROCS(0),
	}

	if err := h.writeHeaders(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *Harness[P]) writeHeaders() error {
	summaryHeader := []string{"N_mu", "N_sigma"}
	summaryHeader = append(summaryHeader, h.argsHeaders...)
	summaryHeader = append(summaryHeader, "MST_Cost_mu", "MST_Cost_sigma", "MST_Runtime_mu", "MST_Runtime_sigma")

	allHeader := []string{"N"}
	allHeader = append(allHeader, h.argsHeaders...)
	allHeader = append(allHeader, "MST_Cost", "MST_Runtime")

	for _, e := range h.evaluators {
		p := e.Name
		summaryHeader = append(summaryHeader,
			p+"_MFC_Cost_mu", p+"_MFC_Cost_sigma",
			p+"_MFC_Runtime_mu", p+"_MFC_Runtime_sigma",
			p+"_Gamma_mu", p+"_Gamma_sigma",
			p+"_Cluster_Size_Mu_mu", p+"_Cluster_Size_Mu_sigma",
			p+"_Cluster_Size_Sigma_mu", p+"_Cluster_Size_Sigma_sigma",
			p+"_Sub_Clustering_Runtime_mu", p+"_Sub_Clustering_Runtime_sigma",
			p+"_Completion_Edges_Runtime_mu", p+"_Completion_Edges_Runtime_sigma",
			p+"_Completion_Runtime_mu", p+"_Completion_Runtime_sigma",
			p+"_Clustering_Runtime_mu", p+"_Clustering_Runtime_sigma",
		)
		allHeader = append(allHeader,
			p+"_MFC_Cost", p+"_MFC_Runtime", p+"_Gamma",
			p+"_Cluster_Size_Mu", p+"_Cluster_Size_Sigma",
			p+"_Sub_Clustering_Runtime", p+"_Completion_Edges_Runtime",
			p+"_Completion_Runtime", p+"_Clustering_Runtime",
		)
	}

	if err := h.summary.writeRow(summaryHeader); err != nil {
		return err
	}
	return h.allTrials.writeRow(allHeader)
}

// replicateResult is one replicate's measurements, one slot per evaluator.
type replicateResult struct {
	n        int
	mstCost  float64
	mstRunMs float64
	perEval  []evalResult
}

type evalResult struct {
	mfcCost              float64
	mfcRunMs             float64
	gamma                float64
	clusterSizeMu        float64
	clusterSizeSigma     float64
	subClusterRunMs      float64
	completionEdgesRunMs float64
	completionRunMs      float64
	clusteringRunMs      float64
}

// RunTest generates repeats datasets sequentially (via the harness's
// owned RNG), runs one replicate per dataset over a worker pool bounded
// at GOMAXPROCS, then writes every replicate's row to all_trials followed
// by one aggregate row to summary.
//
// Dataset generation happens entirely before any replicate is scheduled:
// a failing generator call aborts before any replicate work starts, per
// spec.md §7 ("Dataset generator failure: propagated out of run_test as
// an error; no replicates execute.").
func (h *Harness[P]) RunTest(repeats int, args []float64) error {
	if len(args) != len(h.argsHeaders) {
		return ErrArgsHeaderMismatch
	}

	datasets := make([][]P, repeats)
	for i := 0; i < repeats; i++ {
		points, err := h.generator(h.rng, args)
		if err != nil {
			return fmt.Errorf("harness: dataset generator: %w", err)
		}
		datasets[i] = points
	}

	results := make([]replicateResult, repeats)
	errs := make([]error, repeats)

	sem := make(chan struct{}, h.maxWorkers)
	var wg sync.WaitGroup
	wg.Add(repeats)
	for i := 0; i < repeats; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := h.runReplicate(datasets[i], args)
			results[i] = res
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("harness: replicate failed: %w", err)
		}
	}

	for _, res := range results {
		if err := h.writeReplicateRow(res, args); err != nil {
			return err
		}
	}

	return h.writeSummaryRow(results, args)
}

func (h *Harness[P]) runReplicate(points []P, args []float64) (replicateResult, error) {
	mstStart := time.Now()
	mst := metricspace.ImplicitMST(points, h.metric)
	mstRunMs := msSince(mstStart)
	mstCost := metricspace.EdgeSetWeight(mst)

	perEval := make([]evalResult, len(h.evaluators))
	for j, e := range h.evaluators {
		evalStart := time.Now()
		clustering, mfc, err := e.Run(points, args)
		mfcRunMs := msSince(evalStart)
		if err != nil {
			return replicateResult{}, err
		}

		mfcClusterWeight := mfc.ClusterEdgeWeight()
		mfcCost := mfc.TotalWeight()

		var intraClusterMSTWeight float64
		for _, edge := range mst {
			if clustering.Assignments[edge.A] == clustering.Assignments[edge.B] {
				intraClusterMSTWeight += float64(edge.Weight)
			}
		}
		gamma := math.Inf(1)
		if intraClusterMSTWeight != 0 {
			gamma = mfcClusterWeight / intraClusterMSTWeight
		}

		clusterSizes := make([]float64, len(mfc.ClusterEdges))
		for _, c := range clustering.Assignments {
			clusterSizes[c]++
		}
		clusterSizeMu, clusterSizeSigma := mfcstats.Stats(clusterSizes)

		perEval[j] = evalResult{
			mfcCost:              mfcCost,
			mfcRunMs:             mfcRunMs,
			gamma:                gamma,
			clusterSizeMu:        clusterSizeMu,
			clusterSizeSigma:     clusterSizeSigma,
			subClusterRunMs:      msOf(mfc.SubClusterRuntime),
			completionEdgesRunMs: msOf(mfc.CompletionEdgesRuntime),
			completionRunMs:      msOf(mfc.CompletionRuntime),
			clusteringRunMs:      msOf(clustering.Runtime),
		}
	}

	return replicateResult{n: len(points), mstCost: mstCost, mstRunMs: mstRunMs, perEval: perEval}, nil
}

func (h *Harness[P]) writeReplicateRow(res replicateResult, args []float64) error {
	row := []string{formatFloat(float64(res.n))}
	for _, a := range args {
		row = append(row, formatFloat(a))
	}
	row = append(row, formatFloat(res.mstCost), formatFloat(res.mstRunMs))

	for _, e := range res.perEval {
		row = append(row,
			formatFloat(e.mfcCost), formatFloat(e.mfcRunMs), formatFloat(e.gamma),
			formatFloat(e.clusterSizeMu), formatFloat(e.clusterSizeSigma),
			formatFloat(e.subClusterRunMs), formatFloat(e.completionEdgesRunMs),
			formatFloat(e.completionRunMs), formatFloat(e.clusteringRunMs),
		)
	}

	return h.allTrials.writeRow(row)
}

func (h *Harness[P]) writeSummaryRow(results []replicateResult, args []float64) error {
	extract := func(f func(replicateResult) float64) []float64 {
		out := make([]float64, len(results))
		for i, r := range results {
			out[i] = f(r)
		}
		return out
	}

	nMu, nSigma := mfcstats.Stats(extract(func(r replicateResult) float64 { return float64(r.n) }))
	mstCostMu, mstCostSigma := mfcstats.Stats(extract(func(r replicateResult) float64 { return r.mstCost }))
	mstRunMu, mstRunSigma := mfcstats.Stats(extract(func(r replicateResult) float64 { return r.mstRunMs }))

	row := []string{formatFloat(nMu), formatFloat(nSigma)}
	for _, a := range args {
		row = append(row, formatFloat(a))
	}
	row = append(row, formatFloat(mstCostMu), formatFloat(mstCostSigma), formatFloat(mstRunMu), formatFloat(mstRunSigma))

	for j := range h.evaluators {
		pick := func(f func(evalResult) float64) []float64 {
			out := make([]float64, len(results))
			for i, r := range results {
				out[i] = f(r.perEval[j])
			}
			return out
		}

		appendStats := func(vals []float64) {
			mu, sigma := mfcstats.Stats(vals)
			row = append(row, formatFloat(mu), formatFloat(sigma))
		}

		appendStats(pick(func(e evalResult) float64 { return e.mfcCost }))
		appendStats(pick(func(e evalResult) float64 { return e.mfcRunMs }))
		appendStats(pick(func(e evalResult) float64 { return e.gamma }))
		appendStats(pick(func(e evalResult) float64 { return e.clusterSizeMu }))
		appendStats(pick(func(e evalResult) float64 { return e.clusterSizeSigma }))
		appendStats(pick(func(e evalResult) float64 { return e.subClusterRunMs }))
		appendStats(pick(func(e evalResult) float64 { return e.completionEdgesRunMs }))
		appendStats(pick(func(e evalResult) float64 { return e.completionRunMs }))
		appendStats(pick(func(e evalResult) float64 { return e.clusteringRunMs }))
	}

	return h.summary.writeRow(row)
}

func msOf(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func msSince(start time.Time) float64 {
	return msOf(time.Since(start))
}

// Close flushes and closes both output files. Safe to call once after the
// last RunTest call.
func (h *Harness[P]) Close() error {
	err1 := h.summary.close()
	err2 := h.allTrials.close()
	if err1 != nil {
		return err1
	}
	return err2
}
