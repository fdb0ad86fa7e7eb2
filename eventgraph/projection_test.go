package eventgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/eventgraph"
	"github.com/katalvlaran/chronet/network"
)

// timelineNet reuses the 1->2, 2->3, 2->3, 3->4 events but adds a second
// 1->2 event so the 1->2 static link has two events in its timeline.
func timelineNet(t *testing.T) *network.Network[int, tev] {
	t.Helper()
	return network.New([]tev{
		edge.NewDirectedInstantTemporal(1, 2, 1),
		edge.NewDirectedInstantTemporal(1, 2, 4),
		edge.NewDirectedInstantTemporal(2, 3, 2),
		edge.NewDirectedInstantTemporal(3, 4, 3),
	})
}

func TestStaticProjectionKeepsVertexSet(t *testing.T) {
	n := timelineNet(t)
	proj := eventgraph.StaticProjection[int, int, tev, edge.DirectedDyadic[int]](n)

	assert.Equal(t, n.Vertices(), proj.Vertices())
	assert.True(t, proj.HasEdge(edge.NewDirectedDyadic(1, 2)))
	assert.True(t, proj.HasEdge(edge.NewDirectedDyadic(2, 3)))
	assert.True(t, proj.HasEdge(edge.NewDirectedDyadic(3, 4)))
}

func TestLinkTimelineIsCauseOrdered(t *testing.T) {
	n := timelineNet(t)
	link := edge.NewDirectedDyadic(1, 2)

	timeline := eventgraph.LinkTimeline[int, int, tev, edge.DirectedDyadic[int]](n, link)
	require.Equal(t, []tev{
		edge.NewDirectedInstantTemporal(1, 2, 1),
		edge.NewDirectedInstantTemporal(1, 2, 4),
	}, timeline)
}

func TestLinkTimelinesGroupsEveryStaticEdge(t *testing.T) {
	n := timelineNet(t)
	timelines := eventgraph.LinkTimelines[int, int, tev, edge.DirectedDyadic[int]](n)

	byLink := make(map[edge.DirectedDyadic[int]][]tev, len(timelines))
	for _, tl := range timelines {
		byLink[tl.Link] = tl.Events
	}

	require.Len(t, timelines, 3)
	assert.Len(t, byLink[edge.NewDirectedDyadic(1, 2)], 2)
	assert.Len(t, byLink[edge.NewDirectedDyadic(2, 3)], 1)
	assert.Len(t, byLink[edge.NewDirectedDyadic(3, 4)], 1)
}

func TestTimeWindowSpansMinCauseToMaxEffect(t *testing.T) {
	events := []tev{
		edge.NewDirectedInstantTemporal(1, 2, 4),
		edge.NewDirectedInstantTemporal(1, 2, 1),
		edge.NewDirectedInstantTemporal(2, 3, 2),
	}
	lo, hi := eventgraph.TimeWindow[int, int, tev, edge.DirectedDyadic[int]](events)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 4, hi)
}

func TestTimeWindowEmptyIsZeroValue(t *testing.T) {
	lo, hi := eventgraph.TimeWindow[int, int, tev, edge.DirectedDyadic[int]](nil)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}
