package component

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/interval"
)

// temporalEvent is the constraint TemporalCluster and TemporalClusterSketch
// need on E: the common Edge operations plus the two time accessors every
// concrete temporal edge type carries. It is deliberately narrower than
// edge.Temporal — no AdjacentTo or StaticProjection — since neither cluster
// shape needs to walk or project the implicit event graph itself.
type temporalEvent[V cmp.Ordered, T tnum.Real, E any] interface {
	edge.Edge[V, E]

	CauseTime() T
	EffectTime() T
}

// TemporalCluster is an exact set of events together with, for each vertex
// an event mutates, the union of intervals during which that vertex is
// "active" under a temporal-adjacency policy — the result of an out/in
// cluster computation over the implicit event graph.
type TemporalCluster[V cmp.Ordered, T tnum.Real, E temporalEvent[V, T, E], Adj adjacency.Policy[V, T, E]] struct {
	adj       Adj
	events    []E
	perVertex map[V]*interval.Set[T]

	hasEvents bool
	minCause  T
	maxEnd    T
}

// NewTemporalCluster returns an empty TemporalCluster under policy adj.
func NewTemporalCluster[V cmp.Ordered, T tnum.Real, E temporalEvent[V, T, E], Adj adjacency.Policy[V, T, E]](adj Adj) *TemporalCluster[V, T, E, Adj] {
	return &TemporalCluster[V, T, E, Adj]{
		adj:       adj,
		perVertex: make(map[V]*interval.Set[T]),
	}
}

// Insert adds event e, recording its effect's lingering interval at every
// vertex it mutates.
func (c *TemporalCluster[V, T, E, Adj]) Insert(e E) {
	idx, ok := slices.BinarySearchFunc(c.events, e, func(a, b E) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	if !ok {
		c.events = slices.Insert(c.events, idx, e)
	}

	start := e.EffectTime()
	for i, v := range e.MutatedVerts() {
		end := start
		if c.adj.InfiniteLinger(e, v) {
			end = tnum.MaxValue[T]()
		} else {
			end = start + c.adj.Linger(e, v)
		}

		set, ok := c.perVertex[v]
		if !ok {
			set = interval.New[T]()
			c.perVertex[v] = set
		}
		set.Insert(start, end)

		if (!c.hasEvents && i == 0) || end > c.maxEnd {
			c.maxEnd = end
		}
	}

	if !c.hasEvents || e.CauseTime() < c.minCause {
		c.minCause = e.CauseTime()
	}
	c.hasEvents = true
}

// Merge folds other's events into c, recomputing coverage under c's own
// policy (c.adj) for each.
func (c *TemporalCluster[V, T, E, Adj]) Merge(other *TemporalCluster[V, T, E, Adj]) {
	if other == nil {
		return
	}
	for _, e := range other.events {
		c.Insert(e)
	}
}

// Contains reports whether e (compared by Equal) is in the cluster.
func (c *TemporalCluster[V, T, E, Adj]) Contains(e E) bool {
	idx, ok := slices.BinarySearchFunc(c.events, e, func(a, b E) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return false
	}
	return c.events[idx].Equal(e)
}

// Covers reports whether v is active at time t.
func (c *TemporalCluster[V, T, E, Adj]) Covers(v V, t T) bool {
	set, ok := c.perVertex[v]
	if !ok {
		return false
	}
	return set.Covers(t)
}

// Size returns the number of distinct events in the cluster.
func (c *TemporalCluster[V, T, E, Adj]) Size() int { return len(c.events) }

// Events returns the cluster's events in cause order.
func (c *TemporalCluster[V, T, E, Adj]) Events() []E { return slices.Clone(c.events) }

// Lifetime returns (min cause_time, max effect_time + linger) across the
// cluster's events. The zero value is returned for an empty cluster.
func (c *TemporalCluster[V, T, E, Adj]) Lifetime() (T, T) {
	return c.minCause, c.maxEnd
}

// Volume returns the number of distinct (vertex, time-instant) pairs
// covered, at integer resolution. A vertex whose linger is infinite
// contributes exactly one instant (its effect time) rather than an
// unbounded count, matching the convention TemporalClusterSketch uses for
// the same situation.
func (c *TemporalCluster[V, T, E, Adj]) Volume() int {
	total := 0.0
	maxT := tnum.MaxValue[T]()
	for _, set := range c.perVertex {
		for _, iv := range set.Intervals() {
			if iv.End == maxT {
				total++
				continue
			}
			total += tnum.ToFloat64(iv.End) - tnum.ToFloat64(iv.Start) + 1
		}
	}
	return int(total)
}

// Mass returns the total interval measure summed over every vertex's
// coverage. As with Volume, an infinite-linger interval contributes a
// single representative unit rather than an unbounded measure.
func (c *TemporalCluster[V, T, E, Adj]) Mass() float64 {
	total := 0.0
	maxT := tnum.MaxValue[T]()
	for _, set := range c.perVertex {
		for _, iv := range set.Intervals() {
			if iv.End == maxT {
				total++
				continue
			}
			total += tnum.ToFloat64(iv.End) - tnum.ToFloat64(iv.Start)
		}
	}
	return total
}
