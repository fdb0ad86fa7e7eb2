package eventgraph

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/network"
)

// StaticProjection emits the network of StaticProjection(e) over every
// event in net, keeping net's vertex set.
func StaticProjection[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S edge.Edge[V, S]](net *network.Network[V, E]) *network.Network[V, S] {
	events := net.EdgesCause()
	projected := make([]S, len(events))
	for i, e := range events {
		projected[i] = e.StaticProjection()
	}
	return network.New(projected, net.Vertices()...)
}

// Timeline is one static edge's cause-ordered sequence of events.
type Timeline[S, E any] struct {
	Link   S
	Events []E
}

// LinkTimeline returns the cause-ordered events whose static projection
// equals link, without materialising every link's timeline. It scans the
// out-edges of whichever of link's mutator vertices has the smallest
// out-degree in net, since every matching event must appear there.
func LinkTimeline[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S edge.Edge[V, S]](net *network.Network[V, E], link S) []E {
	mutators := link.MutatorVerts()
	if len(mutators) == 0 {
		return nil
	}

	anchor := mutators[0]
	best := net.OutDegree(anchor)
	for _, v := range mutators[1:] {
		if d := net.OutDegree(v); d < best {
			anchor, best = v, d
		}
	}

	var out []E
	for _, e := range net.OutEdges(anchor) {
		if e.StaticProjection().Equal(link) {
			out = append(out, e)
		}
	}
	return out
}

// LinkTimelines groups every event in net by its static projection,
// producing one Timeline per distinct static edge, each holding its
// events in cause order.
func LinkTimelines[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S edge.Edge[V, S]](net *network.Network[V, E]) []Timeline[S, E] {
	type bucket struct {
		link   S
		events []E
	}

	index := make(map[uint64][]int)
	var order []bucket

	for _, e := range net.EdgesCause() {
		link := e.StaticProjection()
		h := link.Hash()

		found := -1
		for _, bi := range index[h] {
			if order[bi].link.Equal(link) {
				found = bi
				break
			}
		}
		if found == -1 {
			index[h] = append(index[h], len(order))
			order = append(order, bucket{link: link, events: []E{e}})
		} else {
			order[found].events = append(order[found].events, e)
		}
	}

	result := make([]Timeline[S, E], len(order))
	for i, b := range order {
		result[i] = Timeline[S, E]{Link: b.link, Events: b.events}
	}
	return result
}

// TimeWindow returns (min cause_time, max effect_time) across events. The
// zero value pair is returned for an empty slice.
func TimeWindow[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any](events []E) (T, T) {
	var minCause, maxEffect T
	if len(events) == 0 {
		return minCause, maxEffect
	}

	minCause = events[0].CauseTime()
	maxEffect = events[0].EffectTime()
	for _, e := range events[1:] {
		if e.CauseTime() < minCause {
			minCause = e.CauseTime()
		}
		if e.EffectTime() > maxEffect {
			maxEffect = e.EffectTime()
		}
	}
	return minCause, maxEffect
}
