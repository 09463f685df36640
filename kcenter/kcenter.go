package kcenter

import (
	"time"

	"github.com/katalvlaran/metricforest/metricspace"
)

// Cluster performs farthest-point traversal k-centering over points using
// metric, selecting the first center at seedIndex.
//
// Contract:
//   - Returns ErrTooFewPoints if len(points) < k.
//   - If k <= 1, every point is assigned to cluster 0 without any metric
//     calls.
//   - Otherwise selects k centers and assigns each point to
//     argmin_j metric(point, center_j), ties broken toward the lowest j.
//
// Center selection:
//  1. center[0] = points[seedIndex].
//  2. dist[i] = metric(points[i], center[0]) for all i; center[1] =
//     argmax_i dist[i], ties toward the lowest index.
//  3. While fewer than k centers have been chosen: update
//     dist[i] = min(dist[i], metric(points[i], lastCenter)) for every i,
//     then pick argmax_i dist[i] (ties toward the lowest index) as the
//     next center.
//
// Index-0 asymmetry (intentional, see SPEC_FULL.md §9): the scan for each
// new center after the second re-derives its running maximum from
// metric(points[0], lastCenter) rather than from the pre-existing
// dist[0], then immediately folds dist[0] into that value. This matches
// the reference implementation's behaviour exactly; it is benign because
// the fold happens before index 0 is ever compared against another index,
// but it means index 0 is not treated symmetrically with the uniform
// "update then compare" loop body used for every other index.
//
// Complexity: O(n*k) metric calls for center selection, O(n*k) for the
// final assignment scan.
func Cluster[P any](points []P, k int, seedIndex int, metric metricspace.Metric[P]) (Clustering, error) {
	start := time.Now()
	n := len(points)

	if n < k {
		return Clustering{}, ErrTooFewPoints
	}

	if k <= 1 {
		assignments := make([]int, n)
		return Clustering{Assignments: assignments, K: k, Runtime: time.Since(start)}, nil
	}

	centers := make([]P, 0, k)
	centers = append(centers, points[seedIndex])

	dist := make([]float32, n)
	secondIndex := 0
	maxDist := metric(points[0], centers[0])
	for i := 0; i < n; i++ {
		d := metric(points[i], centers[0])
		if d > maxDist {
			secondIndex = i
			maxDist = d
		}
		dist[i] = d
	}
	centers = append(centers, points[secondIndex])

	for len(centers) < k {
		last := centers[len(centers)-1]

		newIndex := 0
		runningMax := metric(points[0], last)
		if dist[0] < runningMax {
			runningMax = dist[0]
		}
		dist[0] = runningMax

		for i := 1; i < n; i++ {
			d := metric(points[i], last)
			if d < dist[i] {
				dist[i] = d
			}
			if dist[i] > runningMax {
				runningMax = dist[i]
				newIndex = i
			}
		}

		centers = append(centers, points[newIndex])
	}

	assignments := make([]int, n)
	for i := 0; i < n; i++ {
		best := 0
		bestDist := metric(points[i], centers[0])
		for j := 1; j < len(centers); j++ {
			d := metric(points[i], centers[j])
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		assignments[i] = best
	}

	return Clustering{Assignments: assignments, K: k, Runtime: time.Since(start)}, nil
}

// DefaultSeedIndex returns the reference's default seed index, n/2, for a
// point slice of the given length.
func DefaultSeedIndex(n int) int {
	return n / 2
}
