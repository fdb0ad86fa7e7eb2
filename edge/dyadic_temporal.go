package edge

import (
	"cmp"

	"github.com/katalvlaran/chronet/internal/tnum"
)

// UndirectedInstantTemporal is an undirected dyadic edge tagged with a
// single instant in time. Cause time and effect time coincide.
type UndirectedInstantTemporal[V cmp.Ordered, T tnum.Real] struct {
	a, b V
	time T
}

// NewUndirectedInstantTemporal builds an undirected instantaneous-temporal
// edge between u and v at time t, canonical regardless of argument order.
func NewUndirectedInstantTemporal[V cmp.Ordered, T tnum.Real](u, v V, t T) UndirectedInstantTemporal[V, T] {
	if u > v {
		u, v = v, u
	}
	return UndirectedInstantTemporal[V, T]{a: u, b: v, time: t}
}

// Endpoints returns the edge's two (canonically ordered) endpoints.
func (e UndirectedInstantTemporal[V, T]) Endpoints() (V, V) { return e.a, e.b }

func (e UndirectedInstantTemporal[V, T]) CauseTime() T  { return e.time }
func (e UndirectedInstantTemporal[V, T]) EffectTime() T { return e.time }

func (e UndirectedInstantTemporal[V, T]) StaticProjection() UndirectedDyadic[V] {
	return UndirectedDyadic[V]{a: e.a, b: e.b}
}

func (e UndirectedInstantTemporal[V, T]) AdjacentTo(o UndirectedInstantTemporal[V, T]) bool {
	return adjacentStaticUndirectedDyadic(e.StaticProjection(), o.StaticProjection()) && o.time > e.time
}

func (e UndirectedInstantTemporal[V, T]) Hash() uint64 {
	return hashTime(hashUndirectedPair(e.a, e.b), e.time)
}

func (e UndirectedInstantTemporal[V, T]) Equal(o UndirectedInstantTemporal[V, T]) bool {
	return e.a == o.a && e.b == o.b && e.time == o.time
}

func (e UndirectedInstantTemporal[V, T]) Less(o UndirectedInstantTemporal[V, T]) bool {
	if e.time != o.time {
		return e.time < o.time
	}
	if e.a != o.a {
		return e.a < o.a
	}
	return e.b < o.b
}

// EffectLess equals Less: cause_time == effect_time and mutator == mutated
// for this undirected edge, so neither swap changes the comparison.
func (e UndirectedInstantTemporal[V, T]) EffectLess(o UndirectedInstantTemporal[V, T]) bool {
	return e.Less(o)
}

func (e UndirectedInstantTemporal[V, T]) MutatorVerts() []V  { return []V{e.a, e.b} }
func (e UndirectedInstantTemporal[V, T]) MutatedVerts() []V  { return []V{e.a, e.b} }
func (e UndirectedInstantTemporal[V, T]) IncidentVerts() []V { return []V{e.a, e.b} }

func (e UndirectedInstantTemporal[V, T]) IsMutator(v V) bool  { return v == e.a || v == e.b }
func (e UndirectedInstantTemporal[V, T]) IsMutated(v V) bool  { return v == e.a || v == e.b }
func (e UndirectedInstantTemporal[V, T]) IsIncident(v V) bool { return v == e.a || v == e.b }

// DirectedInstantTemporal is a directed dyadic edge tagged with a single
// instant in time.
type DirectedInstantTemporal[V cmp.Ordered, T tnum.Real] struct {
	Tail, Head V
	Time       T
}

// NewDirectedInstantTemporal builds a directed instantaneous-temporal edge
// from tail to head at time t.
func NewDirectedInstantTemporal[V cmp.Ordered, T tnum.Real](tail, head V, t T) DirectedInstantTemporal[V, T] {
	return DirectedInstantTemporal[V, T]{Tail: tail, Head: head, Time: t}
}

func (e DirectedInstantTemporal[V, T]) CauseTime() T  { return e.Time }
func (e DirectedInstantTemporal[V, T]) EffectTime() T { return e.Time }

func (e DirectedInstantTemporal[V, T]) StaticProjection() DirectedDyadic[V] {
	return DirectedDyadic[V]{Tail: e.Tail, Head: e.Head}
}

func (e DirectedInstantTemporal[V, T]) AdjacentTo(o DirectedInstantTemporal[V, T]) bool {
	return adjacentStaticDirectedDyadic(e.StaticProjection(), o.StaticProjection()) && o.Time > e.Time
}

func (e DirectedInstantTemporal[V, T]) Hash() uint64 {
	return hashTime(hashDirectedPair(e.Tail, e.Head), e.Time)
}

func (e DirectedInstantTemporal[V, T]) Equal(o DirectedInstantTemporal[V, T]) bool {
	return e.Tail == o.Tail && e.Head == o.Head && e.Time == o.Time
}

func (e DirectedInstantTemporal[V, T]) Less(o DirectedInstantTemporal[V, T]) bool {
	if e.Time != o.Time {
		return e.Time < o.Time
	}
	if e.Tail != o.Tail {
		return e.Tail < o.Tail
	}
	return e.Head < o.Head
}

// EffectLess swaps mutated/mutator after the (tied, since instantaneous)
// time prefix. See DESIGN.md's Open Question decisions.
func (e DirectedInstantTemporal[V, T]) EffectLess(o DirectedInstantTemporal[V, T]) bool {
	if e.Time != o.Time {
		return e.Time < o.Time
	}
	if e.Head != o.Head {
		return e.Head < o.Head
	}
	return e.Tail < o.Tail
}

func (e DirectedInstantTemporal[V, T]) MutatorVerts() []V { return []V{e.Tail} }
func (e DirectedInstantTemporal[V, T]) MutatedVerts() []V { return []V{e.Head} }

func (e DirectedInstantTemporal[V, T]) IncidentVerts() []V {
	return e.StaticProjection().IncidentVerts()
}

func (e DirectedInstantTemporal[V, T]) IsMutator(v V) bool  { return v == e.Tail }
func (e DirectedInstantTemporal[V, T]) IsMutated(v V) bool  { return v == e.Head }
func (e DirectedInstantTemporal[V, T]) IsIncident(v V) bool { return v == e.Tail || v == e.Head }

// DirectedDelayedTemporal is a directed dyadic edge whose effect trails its
// cause: it begins acting at Cause and finishes at Effect, Effect >= Cause.
// There is no undirected counterpart (spec's edge algebra excludes
// undirected-delayed: a delay only makes sense when mutator and mutated are
// distinguishable roles).
type DirectedDelayedTemporal[V cmp.Ordered, T tnum.Real] struct {
	Tail, Head    V
	Cause, Effect T
}

// NewDirectedDelayedTemporal builds a directed delayed-temporal edge. It
// returns ErrDelayedEdgeBackwards if effect precedes cause.
func NewDirectedDelayedTemporal[V cmp.Ordered, T tnum.Real](tail, head V, cause, effect T) (DirectedDelayedTemporal[V, T], error) {
	if effect < cause {
		return DirectedDelayedTemporal[V, T]{}, ErrDelayedEdgeBackwards
	}
	return DirectedDelayedTemporal[V, T]{Tail: tail, Head: head, Cause: cause, Effect: effect}, nil
}

func (e DirectedDelayedTemporal[V, T]) CauseTime() T  { return e.Cause }
func (e DirectedDelayedTemporal[V, T]) EffectTime() T { return e.Effect }

func (e DirectedDelayedTemporal[V, T]) StaticProjection() DirectedDyadic[V] {
	return DirectedDyadic[V]{Tail: e.Tail, Head: e.Head}
}

// AdjacentTo reports whether an event o can causally follow this one: o's
// tail must be this edge's head, and o must begin strictly after this edge
// finishes acting.
func (e DirectedDelayedTemporal[V, T]) AdjacentTo(o DirectedDelayedTemporal[V, T]) bool {
	return adjacentStaticDirectedDyadic(e.StaticProjection(), o.StaticProjection()) && o.Cause > e.Effect
}

func (e DirectedDelayedTemporal[V, T]) Hash() uint64 {
	h := hashDirectedPair(e.Tail, e.Head)
	h = hashTime(h, e.Cause)
	return hashTime(h, e.Effect)
}

func (e DirectedDelayedTemporal[V, T]) Equal(o DirectedDelayedTemporal[V, T]) bool {
	return e.Tail == o.Tail && e.Head == o.Head && e.Cause == o.Cause && e.Effect == o.Effect
}

func (e DirectedDelayedTemporal[V, T]) Less(o DirectedDelayedTemporal[V, T]) bool {
	if e.Cause != o.Cause {
		return e.Cause < o.Cause
	}
	if e.Effect != o.Effect {
		return e.Effect < o.Effect
	}
	if e.Tail != o.Tail {
		return e.Tail < o.Tail
	}
	return e.Head < o.Head
}

func (e DirectedDelayedTemporal[V, T]) EffectLess(o DirectedDelayedTemporal[V, T]) bool {
	if e.Effect != o.Effect {
		return e.Effect < o.Effect
	}
	if e.Cause != o.Cause {
		return e.Cause < o.Cause
	}
	if e.Head != o.Head {
		return e.Head < o.Head
	}
	return e.Tail < o.Tail
}

func (e DirectedDelayedTemporal[V, T]) MutatorVerts() []V { return []V{e.Tail} }
func (e DirectedDelayedTemporal[V, T]) MutatedVerts() []V { return []V{e.Head} }

func (e DirectedDelayedTemporal[V, T]) IncidentVerts() []V {
	return e.StaticProjection().IncidentVerts()
}

func (e DirectedDelayedTemporal[V, T]) IsMutator(v V) bool  { return v == e.Tail }
func (e DirectedDelayedTemporal[V, T]) IsMutated(v V) bool  { return v == e.Head }
func (e DirectedDelayedTemporal[V, T]) IsIncident(v V) bool { return v == e.Tail || v == e.Head }
