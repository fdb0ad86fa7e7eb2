package edge

import "cmp"

// UndirectedDyadic is an unordered pair of vertices {A, B}, canonicalised so
// A <= B. Both endpoints are simultaneously mutator and mutated: an
// undirected edge has no notion of "acting on" one side more than the
// other.
type UndirectedDyadic[V cmp.Ordered] struct {
	a, b V
}

// NewUndirectedDyadic builds an undirected edge between u and v, canonical
// regardless of argument order.
func NewUndirectedDyadic[V cmp.Ordered](u, v V) UndirectedDyadic[V] {
	if u > v {
		u, v = v, u
	}
	return UndirectedDyadic[V]{a: u, b: v}
}

// Endpoints returns the edge's two (canonically ordered) endpoints.
func (e UndirectedDyadic[V]) Endpoints() (V, V) { return e.a, e.b }

func (e UndirectedDyadic[V]) Hash() uint64 {
	return hashUndirectedPair(e.a, e.b)
}

func (e UndirectedDyadic[V]) Equal(o UndirectedDyadic[V]) bool {
	return e.a == o.a && e.b == o.b
}

func (e UndirectedDyadic[V]) Less(o UndirectedDyadic[V]) bool {
	if e.a != o.a {
		return e.a < o.a
	}
	return e.b < o.b
}

// EffectLess equals Less: mutator and mutated are the same pair for an
// undirected edge, so swapping their roles changes nothing.
func (e UndirectedDyadic[V]) EffectLess(o UndirectedDyadic[V]) bool {
	return e.Less(o)
}

func (e UndirectedDyadic[V]) MutatorVerts() []V  { return []V{e.a, e.b} }
func (e UndirectedDyadic[V]) MutatedVerts() []V  { return []V{e.a, e.b} }
func (e UndirectedDyadic[V]) IncidentVerts() []V { return []V{e.a, e.b} }

func (e UndirectedDyadic[V]) IsMutator(v V) bool  { return v == e.a || v == e.b }
func (e UndirectedDyadic[V]) IsMutated(v V) bool  { return v == e.a || v == e.b }
func (e UndirectedDyadic[V]) IsIncident(v V) bool { return v == e.a || v == e.b }

// DirectedDyadic is an ordered pair: Tail acts on Head.
type DirectedDyadic[V cmp.Ordered] struct {
	Tail, Head V
}

// NewDirectedDyadic builds a directed edge from tail to head.
func NewDirectedDyadic[V cmp.Ordered](tail, head V) DirectedDyadic[V] {
	return DirectedDyadic[V]{Tail: tail, Head: head}
}

func (e DirectedDyadic[V]) Hash() uint64 {
	return hashDirectedPair(e.Tail, e.Head)
}

func (e DirectedDyadic[V]) Equal(o DirectedDyadic[V]) bool {
	return e.Tail == o.Tail && e.Head == o.Head
}

func (e DirectedDyadic[V]) Less(o DirectedDyadic[V]) bool {
	if e.Tail != o.Tail {
		return e.Tail < o.Tail
	}
	return e.Head < o.Head
}

// EffectLess swaps the roles: mutated (Head) sorts before mutator (Tail).
// See DESIGN.md's Open Question decisions for why this is not aliased to
// Less the way the undirected type's is.
func (e DirectedDyadic[V]) EffectLess(o DirectedDyadic[V]) bool {
	if e.Head != o.Head {
		return e.Head < o.Head
	}
	return e.Tail < o.Tail
}

func (e DirectedDyadic[V]) MutatorVerts() []V { return []V{e.Tail} }
func (e DirectedDyadic[V]) MutatedVerts() []V { return []V{e.Head} }

func (e DirectedDyadic[V]) IncidentVerts() []V {
	if e.Tail == e.Head {
		return []V{e.Tail}
	}
	if e.Tail < e.Head {
		return []V{e.Tail, e.Head}
	}
	return []V{e.Head, e.Tail}
}

func (e DirectedDyadic[V]) IsMutator(v V) bool  { return v == e.Tail }
func (e DirectedDyadic[V]) IsMutated(v V) bool  { return v == e.Head }
func (e DirectedDyadic[V]) IsIncident(v V) bool { return v == e.Tail || v == e.Head }

// adjacentStaticDirectedDyadic reports whether a directed dyadic edge a is
// structurally adjacent to directed dyadic edge b: a's head is one of b's
// tails. Shared by the directed instantaneous- and delayed-temporal edge
// types' AdjacentTo, which gate this on a time condition.
func adjacentStaticDirectedDyadic[V cmp.Ordered](a, b DirectedDyadic[V]) bool {
	return a.Head == b.Tail
}

// adjacentStaticUndirectedDyadic reports whether two undirected dyadic
// edges share an endpoint.
func adjacentStaticUndirectedDyadic[V cmp.Ordered](a, b UndirectedDyadic[V]) bool {
	return a.a == b.a || a.a == b.b || a.b == b.a || a.b == b.b
}
