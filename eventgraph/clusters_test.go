package eventgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/eventgraph"
)

func selfLoop(v, t int) tev { return edge.NewDirectedInstantTemporal(v, v, t) }

func TestOutClusterPrunesByLinger(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewLimitedWaitingTime[int, int, tev](2)
	e1 := edge.NewDirectedInstantTemporal(1, 2, 1)

	c := eventgraph.OutCluster[int, int, tev, edge.DirectedDyadic[int], adjacency.LimitedWaitingTime[int, int, tev]](n, adj, e1)
	require.Equal(t, 3, c.Size())
	assert.True(t, c.Contains(e1))
	assert.True(t, c.Contains(edge.NewDirectedInstantTemporal(2, 3, 2)))
	assert.True(t, c.Contains(edge.NewDirectedInstantTemporal(3, 4, 3)))
	assert.False(t, c.Contains(edge.NewDirectedInstantTemporal(2, 3, 5)))
}

func TestOutClusterReachesEverythingUnderSimplePolicy(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewSimple[int, int, tev]()
	e1 := edge.NewDirectedInstantTemporal(1, 2, 1)

	c := eventgraph.OutCluster[int, int, tev, edge.DirectedDyadic[int], adjacency.Simple[int, int, tev]](n, adj, e1)
	assert.Equal(t, 4, c.Size())
}

func TestInClusterIsReversedDual(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewLimitedWaitingTime[int, int, tev](2)
	e4 := edge.NewDirectedInstantTemporal(3, 4, 3)

	c := eventgraph.InCluster[int, int, tev, edge.DirectedDyadic[int], adjacency.LimitedWaitingTime[int, int, tev]](n, adj, e4)
	require.Equal(t, 3, c.Size())
	assert.True(t, c.Contains(e4))
	assert.True(t, c.Contains(edge.NewDirectedInstantTemporal(2, 3, 2)))
	assert.True(t, c.Contains(edge.NewDirectedInstantTemporal(1, 2, 1)))
}

func TestOutClusterFromVertexReducesToSelfLoop(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewLimitedWaitingTime[int, int, tev](2)

	c := eventgraph.OutClusterFromVertex[int, int, tev, edge.DirectedDyadic[int], adjacency.LimitedWaitingTime[int, int, tev]](n, adj, selfLoop, 1, 0)
	assert.True(t, c.Covers(1, 0))
	assert.True(t, c.Covers(2, 2))
	assert.True(t, c.Covers(3, 4))
}

func TestOutClustersMatchesPerEventOutCluster(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewLimitedWaitingTime[int, int, tev](2)

	all := eventgraph.OutClusters[int, int, tev, edge.DirectedDyadic[int], adjacency.LimitedWaitingTime[int, int, tev]](n, adj)
	events := n.EdgesCause()
	require.Len(t, all, len(events))

	for i, e := range events {
		single := eventgraph.OutCluster[int, int, tev, edge.DirectedDyadic[int], adjacency.LimitedWaitingTime[int, int, tev]](n, adj, e)
		assert.Equal(t, single.Size(), all[i].Size(), "event %v", e)
		for _, other := range single.Events() {
			assert.True(t, all[i].Contains(other))
		}
	}
}

func TestTemporalWeakComponentsJoinsAllFourEvents(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewSimple[int, int, tev]()

	comps := eventgraph.TemporalWeakComponents[int, int, tev, edge.DirectedDyadic[int], adjacency.Simple[int, int, tev]](n, adj)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4)
}

func TestOutClusterOnVisitStopsTraversal(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewSimple[int, int, tev]()
	e1 := edge.NewDirectedInstantTemporal(1, 2, 1)

	var seen []tev
	c := eventgraph.OutCluster[int, int, tev, edge.DirectedDyadic[int], adjacency.Simple[int, int, tev]](n, adj, e1,
		eventgraph.WithOnVisit[tev](func(e tev, _ int) bool {
			seen = append(seen, e)
			return !e.Equal(edge.NewDirectedInstantTemporal(2, 3, 2))
		}),
	)
	assert.Equal(t, []tev{e1, edge.NewDirectedInstantTemporal(2, 3, 2)}, seen)
	assert.Equal(t, 2, c.Size())
}

func TestOutClusterSketchEstimatesCloseToExact(t *testing.T) {
	n := chainEvents(t)
	adj := adjacency.NewSimple[int, int, tev]()
	e1 := edge.NewDirectedInstantTemporal(1, 2, 1)

	s := eventgraph.OutClusterSketch[int, int, tev, edge.DirectedDyadic[int], adjacency.Simple[int, int, tev]](n, adj, e1, 1)
	assert.InDelta(t, 4, s.SizeEstimate(), 1)
}
