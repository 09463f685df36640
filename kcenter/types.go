package kcenter

import "time"

// LocalIndex identifies a point by its position within a single cluster's
// member slice, as distinct from metricspace.PointIndex which indexes the
// full ambient point slice. Package forest is the only place the two are
// converted between each other (the remap step after each per-cluster MST).
type LocalIndex int

// Clustering is the result of clustering n points into k groups.
type Clustering struct {
	// Assignments holds one cluster id in [0, K) per point, in point order.
	Assignments []int
	// K is the number of clusters requested (not necessarily the number of
	// non-empty clusters: empty clusters are permitted).
	K int
	// Runtime is the wall-clock time spent computing Assignments.
	Runtime time.Duration
}
