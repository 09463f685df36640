// Package forest implements Metric Forest Completion (MFC): given a point
// set, a cluster count k, and a cluster assignment (typically produced by
// package kcenter), it computes an exact MST inside each cluster and
// stitches the per-cluster forests together with a small set of
// "completion" edges approximating the cross-cluster connections of the
// true global MST.
package forest
