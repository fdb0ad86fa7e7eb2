package component

import (
	"cmp"
	"math"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/internal/hll"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/internal/xhash"
)

// TemporalClusterSketch is the HyperLogLog-estimated mirror of
// TemporalCluster: an event sketch, a vertex sketch, and a sketch of
// quantised (vertex, time) pairs, the last resolved at a tunable temporal
// resolution Dt.
type TemporalClusterSketch[V cmp.Ordered, T tnum.Real, E temporalEvent[V, T, E], Adj adjacency.Policy[V, T, E]] struct {
	adj Adj
	dt  T

	events   hll.Sketch
	verts    hll.Sketch
	instants hll.Sketch

	hasEvents bool
	minCause  T
	maxEnd    T
}

// NewTemporalClusterSketch returns an empty TemporalClusterSketch under
// policy adj, quantising time at resolution dt.
func NewTemporalClusterSketch[V cmp.Ordered, T tnum.Real, E temporalEvent[V, T, E], Adj adjacency.Policy[V, T, E]](adj Adj, dt T) *TemporalClusterSketch[V, T, E, Adj] {
	return &TemporalClusterSketch[V, T, E, Adj]{adj: adj, dt: dt}
}

// quantize maps t to its resolution-dt bucket index.
func (c *TemporalClusterSketch[V, T, E, Adj]) quantize(t T) int64 {
	return int64(math.Floor(tnum.ToFloat64(t) / tnum.ToFloat64(c.dt)))
}

func (c *TemporalClusterSketch[V, T, E, Adj]) instantHash(v V, q int64) uint64 {
	return xhash.Combine(xhash.Of(v), xhash.Uint64(uint64(q)))
}

// Insert records event e: its own identity, every vertex it mutates, and
// the quantised time points its lingering effect covers at each of those
// vertices. An infinite-linger vertex contributes exactly one quantised
// point — at effect_time(e) — rather than an unbounded run, so the
// estimate stays finite.
func (c *TemporalClusterSketch[V, T, E, Adj]) Insert(e E) {
	c.events.Insert(e.Hash())

	start := e.EffectTime()
	for i, v := range e.MutatedVerts() {
		c.verts.Insert(xhash.Of(v))

		qs := c.quantize(start)
		if c.adj.InfiniteLinger(e, v) {
			c.instants.Insert(c.instantHash(v, qs))
			c.maxEnd = tnum.MaxValue[T]()
			continue
		}

		end := start + c.adj.Linger(e, v)
		qe := c.quantize(end)
		for q := qs; q <= qe; q++ {
			c.instants.Insert(c.instantHash(v, q))
		}
		if (!c.hasEvents && i == 0) || end > c.maxEnd {
			c.maxEnd = end
		}
	}

	if !c.hasEvents || e.CauseTime() < c.minCause {
		c.minCause = e.CauseTime()
	}
	c.hasEvents = true
}

// Merge folds other's sketches into c. Lifetime tracking is approximate:
// it takes the union of the two recorded (min cause, max end) ranges,
// which is exact whenever both sketches were built under compatible
// policies and resolution.
func (c *TemporalClusterSketch[V, T, E, Adj]) Merge(other *TemporalClusterSketch[V, T, E, Adj]) {
	if other == nil {
		return
	}
	c.events.Merge(&other.events)
	c.verts.Merge(&other.verts)
	c.instants.Merge(&other.instants)

	if other.hasEvents {
		if !c.hasEvents || other.minCause < c.minCause {
			c.minCause = other.minCause
		}
		if !c.hasEvents || other.maxEnd > c.maxEnd {
			c.maxEnd = other.maxEnd
		}
		c.hasEvents = true
	}
}

// SizeEstimate returns the estimated number of distinct events.
func (c *TemporalClusterSketch[V, T, E, Adj]) SizeEstimate() float64 {
	return c.events.Estimate()
}

// VertexCountEstimate returns the estimated number of distinct mutated
// vertices.
func (c *TemporalClusterSketch[V, T, E, Adj]) VertexCountEstimate() float64 {
	return c.verts.Estimate()
}

// VolumeEstimate returns the estimated number of distinct
// (vertex, quantised-time) pairs covered.
func (c *TemporalClusterSketch[V, T, E, Adj]) VolumeEstimate() float64 {
	return c.instants.Estimate()
}

// MassEstimate returns VolumeEstimate scaled by the quantisation
// resolution Dt, per spec.md §9's documented convention for deriving a
// mass estimate from the time sketch's register count.
func (c *TemporalClusterSketch[V, T, E, Adj]) MassEstimate() float64 {
	return c.VolumeEstimate() * tnum.ToFloat64(c.dt)
}

// Lifetime returns (min cause_time, max effect_time + linger) across the
// cluster's events.
func (c *TemporalClusterSketch[V, T, E, Adj]) Lifetime() (T, T) {
	return c.minCause, c.maxEnd
}
