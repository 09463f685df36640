package kcenter_test

import (
	"testing"

	"github.com/katalvlaran/metricforest/kcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point2 struct{ x, y float32 }

func euclidean2(a, b point2) float32 {
	dx := a.x - b.x
	dy := a.y - b.y
	return float32(dx*dx + dy*dy)
}

func TestCluster_TrivialSingleCluster(t *testing.T) {
	points := []point2{{0, 0}, {0, 0}, {0, 0}}
	c, err := kcenter.Cluster(points, 1, kcenter.DefaultSeedIndex(len(points)), euclidean2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, c.Assignments)
}

func TestCluster_TooFewPoints(t *testing.T) {
	points := []point2{{0, 0}, {1, 1}}
	_, err := kcenter.Cluster(points, 5, 0, euclidean2)
	assert.ErrorIs(t, err, kcenter.ErrTooFewPoints)
}

func TestCluster_Square(t *testing.T) {
	// Corners of a square; seed at index 0 so center[0] = (0,0). The
	// farthest point from (0,0) is (10,10), so center[1] = (10,10).
	points := []point2{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	c, err := kcenter.Cluster(points, 2, 0, euclidean2)
	require.NoError(t, err)

	// (0,0) and (10,10) are unambiguously nearest to their own centers.
	assert.Equal(t, 0, c.Assignments[0])
	assert.Equal(t, 1, c.Assignments[3])
	// (10,0) and (0,10) are equidistant from both centers; implementation
	// breaks ties toward the lowest center index, so both land in cluster 0.
	assert.Equal(t, 0, c.Assignments[1])
	assert.Equal(t, 0, c.Assignments[2])
}

func TestCluster_AssignmentsWithinRange(t *testing.T) {
	points := []point2{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {10, 10}, {11, 11}}
	c, err := kcenter.Cluster(points, 3, kcenter.DefaultSeedIndex(len(points)), euclidean2)
	require.NoError(t, err)
	require.Len(t, c.Assignments, len(points))
	for _, a := range c.Assignments {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 3)
	}
}
