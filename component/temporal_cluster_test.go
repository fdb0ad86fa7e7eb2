package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/component"
	"github.com/katalvlaran/chronet/edge"
)

type dyadicTemporal = edge.DirectedInstantTemporal[int, int]

func TestTemporalClusterLimitedWaitingTime(t *testing.T) {
	adj := adjacency.NewLimitedWaitingTime[int, int, dyadicTemporal](3)
	c := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.LimitedWaitingTime[int, int, dyadicTemporal]](adj)

	e := edge.NewDirectedInstantTemporal(1, 2, 10)
	c.Insert(e)

	require.True(t, c.Contains(e))
	assert.True(t, c.Covers(2, 10))
	assert.True(t, c.Covers(2, 13))
	assert.False(t, c.Covers(2, 14))
	assert.False(t, c.Covers(1, 10), "linger is recorded at mutated vertices, not mutator vertices")
}

func TestTemporalClusterLifetime(t *testing.T) {
	adj := adjacency.NewLimitedWaitingTime[int, int, dyadicTemporal](2)
	c := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.LimitedWaitingTime[int, int, dyadicTemporal]](adj)

	c.Insert(edge.NewDirectedInstantTemporal(1, 2, 10))
	c.Insert(edge.NewDirectedInstantTemporal(2, 3, 20))

	minCause, maxEnd := c.Lifetime()
	assert.Equal(t, 10, minCause)
	assert.Equal(t, 22, maxEnd)
}

func TestTemporalClusterVolumeAndMass(t *testing.T) {
	adj := adjacency.NewLimitedWaitingTime[int, int, dyadicTemporal](2)
	c := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.LimitedWaitingTime[int, int, dyadicTemporal]](adj)
	c.Insert(edge.NewDirectedInstantTemporal(1, 2, 10))

	// [10,12] closed integer interval covers 3 instants.
	assert.Equal(t, 3, c.Volume())
	assert.InDelta(t, 2.0, c.Mass(), 1e-9)
}

func TestTemporalClusterInfiniteLingerCapsVolume(t *testing.T) {
	adj := adjacency.NewSimple[int, int, dyadicTemporal]()
	c := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.Simple[int, int, dyadicTemporal]](adj)
	c.Insert(edge.NewDirectedInstantTemporal(1, 2, 10))

	assert.Equal(t, 1, c.Volume(), "infinite linger should contribute one representative instant")
}

func TestTemporalClusterMerge(t *testing.T) {
	adj := adjacency.NewLimitedWaitingTime[int, int, dyadicTemporal](2)
	a := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.LimitedWaitingTime[int, int, dyadicTemporal]](adj)
	b := component.NewTemporalCluster[int, int, dyadicTemporal, adjacency.LimitedWaitingTime[int, int, dyadicTemporal]](adj)

	a.Insert(edge.NewDirectedInstantTemporal(1, 2, 10))
	b.Insert(edge.NewDirectedInstantTemporal(2, 3, 20))
	a.Merge(b)

	assert.Equal(t, 2, a.Size())
	assert.True(t, a.Covers(3, 20))
}
