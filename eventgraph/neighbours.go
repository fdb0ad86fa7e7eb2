package eventgraph

import (
	"cmp"
	"slices"
	"sort"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/network"
)

// Successors returns the events that can causally follow e in the implicit
// event graph: for every vertex e mutates, the cause-ordered run of that
// vertex's out-edges starting just past e, kept only while each
// candidate's cause time is within e's linger bound at that vertex and
// accepted only when adj's structural/temporal adjacency holds. If
// justFirst, at most one successor per mutated vertex is kept — the
// earliest.
func Successors[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, e E, justFirst bool) []E {
	seen := newEventSet[E]()
	var out []E

	for _, v := range e.MutatedVerts() {
		cand := net.OutEdges(v)
		endTime := e.EffectTime()
		start := sort.Search(len(cand), func(i int) bool { return cand[i].CauseTime() > endTime })

		infinite := adj.InfiniteLinger(e, v)
		bound := adj.Linger(e, v)
		for i := start; i < len(cand); i++ {
			c := cand[i]
			if !infinite && c.CauseTime()-endTime > bound {
				break
			}
			if !e.AdjacentTo(c) {
				continue
			}
			if seen.contains(c) {
				continue
			}
			seen.insert(c)
			out = append(out, c)
			if justFirst {
				break
			}
		}
	}

	slices.SortFunc(out, func(a, b E) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Predecessors returns the events that can causally precede e: the
// reversed-direction dual of Successors, walking each mutator vertex's
// effect-ordered in-edges backward from just before e and testing the
// candidate's own linger bound at that vertex. Each vertex's walk stops
// once the gap exceeds adj.MaximumLinger at that vertex.
func Predecessors[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, e E, justFirst bool) []E {
	seen := newEventSet[E]()
	var out []E

	for _, v := range e.MutatorVerts() {
		cand := net.InEdges(v)
		startTime := e.CauseTime()
		hi := sort.Search(len(cand), func(i int) bool { return cand[i].EffectTime() >= startTime })
		maxBound := adj.MaximumLinger(v)

		for i := hi - 1; i >= 0; i-- {
			c := cand[i]
			gap := startTime - c.EffectTime()
			if gap > maxBound {
				break
			}
			if !adj.InfiniteLinger(c, v) && gap > adj.Linger(c, v) {
				continue
			}
			if !c.AdjacentTo(e) {
				continue
			}
			if seen.contains(c) {
				continue
			}
			seen.insert(c)
			out = append(out, c)
			if justFirst {
				break
			}
		}
	}

	slices.SortFunc(out, func(a, b E) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Neighbours returns the union of Successors(e, false) and
// Predecessors(e, false).
func Neighbours[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, e E) []E {
	seen := newEventSet[E]()
	var out []E
	for _, c := range Successors[V, T, E, S, Adj](net, adj, e, false) {
		seen.insert(c)
		out = append(out, c)
	}
	for _, c := range Predecessors[V, T, E, S, Adj](net, adj, e, false) {
		if seen.contains(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
