// Package kcenter implements farthest-point traversal k-centering: a
// 2-approximation of the metric k-center problem. Given n points and a
// target cluster count k, it produces k centers and assigns every point to
// its nearest center.
package kcenter
