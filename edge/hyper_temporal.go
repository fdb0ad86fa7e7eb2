package edge

import (
	"cmp"

	"github.com/katalvlaran/chronet/internal/tnum"
)

// UndirectedHyperInstantTemporal is an undirected hyperedge tagged with a
// single instant in time.
type UndirectedHyperInstantTemporal[V cmp.Ordered, T tnum.Real] struct {
	verts []V
	time  T
}

// NewUndirectedHyperInstantTemporal builds an undirected
// instantaneous-temporal hyperedge over verts at time t.
func NewUndirectedHyperInstantTemporal[V cmp.Ordered, T tnum.Real](t T, verts ...V) UndirectedHyperInstantTemporal[V, T] {
	return UndirectedHyperInstantTemporal[V, T]{verts: canonSlice(verts), time: t}
}

// Verts returns the edge's sorted, deduplicated endpoint set.
func (e UndirectedHyperInstantTemporal[V, T]) Verts() []V { return e.verts }

func (e UndirectedHyperInstantTemporal[V, T]) CauseTime() T  { return e.time }
func (e UndirectedHyperInstantTemporal[V, T]) EffectTime() T { return e.time }

func (e UndirectedHyperInstantTemporal[V, T]) StaticProjection() UndirectedHyper[V] {
	return UndirectedHyper[V]{verts: e.verts}
}

func (e UndirectedHyperInstantTemporal[V, T]) AdjacentTo(o UndirectedHyperInstantTemporal[V, T]) bool {
	return adjacentStaticUndirectedHyper(e.StaticProjection(), o.StaticProjection()) && o.time > e.time
}

func (e UndirectedHyperInstantTemporal[V, T]) Hash() uint64 {
	return hashTime(hashUndirectedHyper(e.verts), e.time)
}

func (e UndirectedHyperInstantTemporal[V, T]) Equal(o UndirectedHyperInstantTemporal[V, T]) bool {
	return e.time == o.time && compareSlices(e.verts, o.verts) == 0
}

func (e UndirectedHyperInstantTemporal[V, T]) Less(o UndirectedHyperInstantTemporal[V, T]) bool {
	if e.time != o.time {
		return e.time < o.time
	}
	return compareSlices(e.verts, o.verts) < 0
}

func (e UndirectedHyperInstantTemporal[V, T]) EffectLess(o UndirectedHyperInstantTemporal[V, T]) bool {
	return e.Less(o)
}

func (e UndirectedHyperInstantTemporal[V, T]) MutatorVerts() []V  { return e.verts }
func (e UndirectedHyperInstantTemporal[V, T]) MutatedVerts() []V  { return e.verts }
func (e UndirectedHyperInstantTemporal[V, T]) IncidentVerts() []V { return e.verts }

func (e UndirectedHyperInstantTemporal[V, T]) IsMutator(v V) bool {
	return containsSorted(e.verts, v)
}
func (e UndirectedHyperInstantTemporal[V, T]) IsMutated(v V) bool {
	return containsSorted(e.verts, v)
}
func (e UndirectedHyperInstantTemporal[V, T]) IsIncident(v V) bool {
	return containsSorted(e.verts, v)
}

// DirectedHyperInstantTemporal is a directed hyperedge tagged with a single
// instant in time.
type DirectedHyperInstantTemporal[V cmp.Ordered, T tnum.Real] struct {
	tails, heads []V
	time         T
}

// NewDirectedHyperInstantTemporal builds a directed
// instantaneous-temporal hyperedge from tails to heads at time t.
func NewDirectedHyperInstantTemporal[V cmp.Ordered, T tnum.Real](tails, heads []V, t T) DirectedHyperInstantTemporal[V, T] {
	return DirectedHyperInstantTemporal[V, T]{tails: canonSlice(tails), heads: canonSlice(heads), time: t}
}

// Tails returns the edge's sorted, deduplicated tail set.
func (e DirectedHyperInstantTemporal[V, T]) Tails() []V { return e.tails }

// Heads returns the edge's sorted, deduplicated head set.
func (e DirectedHyperInstantTemporal[V, T]) Heads() []V { return e.heads }

func (e DirectedHyperInstantTemporal[V, T]) CauseTime() T  { return e.time }
func (e DirectedHyperInstantTemporal[V, T]) EffectTime() T { return e.time }

func (e DirectedHyperInstantTemporal[V, T]) StaticProjection() DirectedHyper[V] {
	return DirectedHyper[V]{tails: e.tails, heads: e.heads}
}

func (e DirectedHyperInstantTemporal[V, T]) AdjacentTo(o DirectedHyperInstantTemporal[V, T]) bool {
	return adjacentStaticDirectedHyper(e.StaticProjection(), o.StaticProjection()) && o.time > e.time
}

func (e DirectedHyperInstantTemporal[V, T]) Hash() uint64 {
	return hashTime(hashDirectedHyper(e.tails, e.heads), e.time)
}

func (e DirectedHyperInstantTemporal[V, T]) Equal(o DirectedHyperInstantTemporal[V, T]) bool {
	return e.time == o.time &&
		compareSlices(e.tails, o.tails) == 0 &&
		compareSlices(e.heads, o.heads) == 0
}

func (e DirectedHyperInstantTemporal[V, T]) Less(o DirectedHyperInstantTemporal[V, T]) bool {
	if e.time != o.time {
		return e.time < o.time
	}
	if c := compareSlices(e.tails, o.tails); c != 0 {
		return c < 0
	}
	return compareSlices(e.heads, o.heads) < 0
}

func (e DirectedHyperInstantTemporal[V, T]) EffectLess(o DirectedHyperInstantTemporal[V, T]) bool {
	if e.time != o.time {
		return e.time < o.time
	}
	if c := compareSlices(e.heads, o.heads); c != 0 {
		return c < 0
	}
	return compareSlices(e.tails, o.tails) < 0
}

func (e DirectedHyperInstantTemporal[V, T]) MutatorVerts() []V { return e.tails }
func (e DirectedHyperInstantTemporal[V, T]) MutatedVerts() []V { return e.heads }
func (e DirectedHyperInstantTemporal[V, T]) IncidentVerts() []V {
	return unionSorted(e.tails, e.heads)
}

func (e DirectedHyperInstantTemporal[V, T]) IsMutator(v V) bool {
	return containsSorted(e.tails, v)
}
func (e DirectedHyperInstantTemporal[V, T]) IsMutated(v V) bool {
	return containsSorted(e.heads, v)
}
func (e DirectedHyperInstantTemporal[V, T]) IsIncident(v V) bool {
	return containsSorted(e.tails, v) || containsSorted(e.heads, v)
}

// DirectedHyperDelayedTemporal is a directed hyperedge whose effect trails
// its cause.
type DirectedHyperDelayedTemporal[V cmp.Ordered, T tnum.Real] struct {
	tails, heads  []V
	cause, effect T
}

// NewDirectedHyperDelayedTemporal builds a directed delayed-temporal
// hyperedge. It returns ErrDelayedEdgeBackwards if effect precedes cause.
func NewDirectedHyperDelayedTemporal[V cmp.Ordered, T tnum.Real](tails, heads []V, cause, effect T) (DirectedHyperDelayedTemporal[V, T], error) {
	if effect < cause {
		return DirectedHyperDelayedTemporal[V, T]{}, ErrDelayedEdgeBackwards
	}
	return DirectedHyperDelayedTemporal[V, T]{
		tails: canonSlice(tails), heads: canonSlice(heads), cause: cause, effect: effect,
	}, nil
}

// Tails returns the edge's sorted, deduplicated tail set.
func (e DirectedHyperDelayedTemporal[V, T]) Tails() []V { return e.tails }

// Heads returns the edge's sorted, deduplicated head set.
func (e DirectedHyperDelayedTemporal[V, T]) Heads() []V { return e.heads }

func (e DirectedHyperDelayedTemporal[V, T]) CauseTime() T  { return e.cause }
func (e DirectedHyperDelayedTemporal[V, T]) EffectTime() T { return e.effect }

func (e DirectedHyperDelayedTemporal[V, T]) StaticProjection() DirectedHyper[V] {
	return DirectedHyper[V]{tails: e.tails, heads: e.heads}
}

func (e DirectedHyperDelayedTemporal[V, T]) AdjacentTo(o DirectedHyperDelayedTemporal[V, T]) bool {
	return adjacentStaticDirectedHyper(e.StaticProjection(), o.StaticProjection()) && o.cause > e.effect
}

func (e DirectedHyperDelayedTemporal[V, T]) Hash() uint64 {
	h := hashDirectedHyper(e.tails, e.heads)
	h = hashTime(h, e.cause)
	return hashTime(h, e.effect)
}

func (e DirectedHyperDelayedTemporal[V, T]) Equal(o DirectedHyperDelayedTemporal[V, T]) bool {
	return e.cause == o.cause && e.effect == o.effect &&
		compareSlices(e.tails, o.tails) == 0 &&
		compareSlices(e.heads, o.heads) == 0
}

func (e DirectedHyperDelayedTemporal[V, T]) Less(o DirectedHyperDelayedTemporal[V, T]) bool {
	if e.cause != o.cause {
		return e.cause < o.cause
	}
	if e.effect != o.effect {
		return e.effect < o.effect
	}
	if c := compareSlices(e.tails, o.tails); c != 0 {
		return c < 0
	}
	return compareSlices(e.heads, o.heads) < 0
}

func (e DirectedHyperDelayedTemporal[V, T]) EffectLess(o DirectedHyperDelayedTemporal[V, T]) bool {
	if e.effect != o.effect {
		return e.effect < o.effect
	}
	if e.cause != o.cause {
		return e.cause < o.cause
	}
	if c := compareSlices(e.heads, o.heads); c != 0 {
		return c < 0
	}
	return compareSlices(e.tails, o.tails) < 0
}

func (e DirectedHyperDelayedTemporal[V, T]) MutatorVerts() []V { return e.tails }
func (e DirectedHyperDelayedTemporal[V, T]) MutatedVerts() []V { return e.heads }
func (e DirectedHyperDelayedTemporal[V, T]) IncidentVerts() []V {
	return unionSorted(e.tails, e.heads)
}

func (e DirectedHyperDelayedTemporal[V, T]) IsMutator(v V) bool {
	return containsSorted(e.tails, v)
}
func (e DirectedHyperDelayedTemporal[V, T]) IsMutated(v V) bool {
	return containsSorted(e.heads, v)
}
func (e DirectedHyperDelayedTemporal[V, T]) IsIncident(v V) bool {
	return containsSorted(e.tails, v) || containsSorted(e.heads, v)
}
