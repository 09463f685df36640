package mfcstats_test

import (
	"testing"

	"github.com/katalvlaran/metricforest/mfcstats"
	"github.com/stretchr/testify/assert"
)

func TestStats_Idempotent(t *testing.T) {
	mean, stddev := mfcstats.Stats([]float64{42})
	assert.Equal(t, 42.0, mean)
	assert.Equal(t, 0.0, stddev)
}

func TestStats_Empty(t *testing.T) {
	mean, stddev := mfcstats.Stats(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, stddev)
}

func TestStats_PopulationNotSample(t *testing.T) {
	// {1,2,3,4}: mean=2.5, population variance=1.25, population stddev≈1.118
	// (sample stddev with Bessel's correction would be ≈1.291).
	mean, stddev := mfcstats.Stats([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, mean, 1e-9)
	assert.InDelta(t, 1.1180339887, stddev, 1e-9)
}
