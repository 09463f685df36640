package forest

import (
	"time"

	"github.com/katalvlaran/metricforest/kcenter"
	"github.com/katalvlaran/metricforest/metricspace"
)

// Complete runs the MFC algorithm: points is the ambient point set, k the
// cluster count, and assignments[i] the cluster id (in [0,k)) of point i
// (as produced by kcenter.Cluster, or any external clustering of the same
// shape). Empty clusters are permitted and contribute neither cluster-MST
// edges nor completion edges.
func Complete[P any](points []P, k int, assignments []int, metric metricspace.Metric[P]) MetricForestCompletion {
	members := groupByCluster(len(points), k, assignments)

	clusterEdges, subClusterRuntime := subClusterMSTs(points, members, metric)
	candidates, completionEdgesRuntime := selectCompletionCandidates(points, members, metric)
	completionEdges, completionRuntime := completeClusterGraph(k, candidates)

	return MetricForestCompletion{
		ClusterEdges:           clusterEdges,
		CompletionEdges:        completionEdges,
		SubClusterRuntime:      subClusterRuntime,
		CompletionEdgesRuntime: completionEdgesRuntime,
		CompletionRuntime:      completionRuntime,
	}
}

// groupByCluster partitions point indices [0,n) by assignments[i], into k
// buckets. Members of a bucket are in ascending PointIndex order because
// points are visited in order.
func groupByCluster(n, k int, assignments []int) [][]metricspace.PointIndex {
	members := make([][]metricspace.PointIndex, k)
	for i := 0; i < n; i++ {
		c := assignments[i]
		members[c] = append(members[c], metricspace.PointIndex(i))
	}
	return members
}

// subClusterMSTs runs the exact MST independently inside each cluster,
// remapping local cluster indices back to ambient PointIndex values. This
// remap is the one place a cluster-local index becomes an ambient one.
func subClusterMSTs[P any](points []P, members [][]metricspace.PointIndex, metric metricspace.Metric[P]) ([][]metricspace.WeightedEdge, time.Duration) {
	start := time.Now()

	clusterEdges := make([][]metricspace.WeightedEdge, len(members))
	for c, idxs := range members {
		if len(idxs) <= 1 {
			continue
		}

		subPoints := make([]P, len(idxs))
		for local, global := range idxs {
			subPoints[local] = points[global]
		}

		localMST := metricspace.ImplicitMST(subPoints, metric)
		remapped := make([]metricspace.WeightedEdge, len(localMST))
		for i, e := range localMST {
			a, b := kcenter.LocalIndex(e.A), kcenter.LocalIndex(e.B)
			remapped[i] = metricspace.WeightedEdge{
				Weight: e.Weight,
				A:      idxs[a],
				B:      idxs[b],
			}
		}
		clusterEdges[c] = remapped
	}

	return clusterEdges, time.Since(start)
}

// completionCandidate is one inter-cluster candidate edge: the cluster
// pair it approximates the connection for (clusterA, clusterB), and the
// ambient-index endpoints of the cheapest edge found by the representative
// scan (repA, repB).
type completionCandidate struct {
	clusterA, clusterB int
	repA, repB         metricspace.PointIndex
	weight             float32
}

// selectCompletionCandidates picks one candidate edge per pair of
// non-empty clusters (clusterA < clusterB), using the representative-scan
// approximation from SPEC_FULL.md §4.E: fix local index 0 in each cluster
// as its representative, scan the other cluster's full member list against
// that single representative in both directions, and keep the cheapest
// edge seen. This avoids an O(|cluster_i|*|cluster_j|) scan at the cost of
// only approximating the true minimum inter-cluster edge.
//
// Unlike the reference's i in [0,k-1), j in [1,k) loop (which both omits
// and double-visits some pairs — see SPEC_FULL.md §9), this iterates every
// unordered pair (i,j), i<j, exactly once.
func selectCompletionCandidates[P any](points []P, members [][]metricspace.PointIndex, metric metricspace.Metric[P]) ([]completionCandidate, time.Duration) {
	start := time.Now()

	k := len(members)
	candidates := make([]completionCandidate, 0, k*(k-1)/2)

	for i := 0; i < k; i++ {
		if len(members[i]) == 0 {
			continue
		}
		for j := i + 1; j < k; j++ {
			if len(members[j]) == 0 {
				continue
			}

			iRep := members[i][0]
			jRep := members[j][0]

			var (
				bestWeight    float32
				bestA, bestB  metricspace.PointIndex
				haveCandidate bool
			)

			for _, b := range members[j] {
				d := metric(points[iRep], points[b])
				if !haveCandidate || d < bestWeight {
					bestWeight, bestA, bestB, haveCandidate = d, iRep, b, true
				}
			}
			for _, a := range members[i] {
				d := metric(points[a], points[jRep])
				if d < bestWeight {
					bestWeight, bestA, bestB = d, a, jRep
				}
			}

			candidates = append(candidates, completionCandidate{
				clusterA: i,
				clusterB: j,
				repA:     bestA,
				repB:     bestB,
				weight:   bestWeight,
			})
		}
	}

	return candidates, time.Since(start)
}

// completeClusterGraph treats candidates as edges of a graph on k
// meta-nodes (one per cluster) and runs the exact MST over that graph. The
// result's edges keep their candidates' ambient PointIndex endpoints, so
// stitching them into the final forest needs no further remapping.
func completeClusterGraph(k int, candidates []completionCandidate) ([]metricspace.WeightedEdge, time.Duration) {
	start := time.Now()

	metaEdges := make([]metricspace.WeightedEdge, len(candidates))
	lookup := make(map[[2]int]completionCandidate, len(candidates))
	for i, c := range candidates {
		metaEdges[i] = metricspace.WeightedEdge{
			Weight: c.weight,
			A:      metricspace.PointIndex(c.clusterA),
			B:      metricspace.PointIndex(c.clusterB),
		}
		lookup[[2]int{c.clusterA, c.clusterB}] = c
	}

	metaMST := metricspace.ArrayColoredMST(k, metaEdges)

	completionEdges := make([]metricspace.WeightedEdge, len(metaMST))
	for i, e := range metaMST {
		c := lookup[[2]int{int(e.A), int(e.B)}]
		completionEdges[i] = metricspace.WeightedEdge{
			Weight: e.Weight,
			A:      c.repA,
			B:      c.repB,
		}
	}

	return completionEdges, time.Since(start)
}
