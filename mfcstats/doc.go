// Package mfcstats computes mean and population standard deviation over a
// sample, the aggregation primitive package harness uses to turn a batch
// of replicate measurements into one summary row.
package mfcstats
