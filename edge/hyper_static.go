package edge

import "cmp"

// UndirectedHyper is a hyperedge over an unordered set of vertices, all of
// them simultaneously mutator and mutated, mirroring UndirectedDyadic's
// role symmetry at arbitrary arity. Verts is always kept sorted and
// deduplicated.
type UndirectedHyper[V cmp.Ordered] struct {
	verts []V
}

// NewUndirectedHyper builds a hyperedge over verts, canonicalising
// duplicate endpoints away and sorting them.
func NewUndirectedHyper[V cmp.Ordered](verts ...V) UndirectedHyper[V] {
	return UndirectedHyper[V]{verts: canonSlice(verts)}
}

// Verts returns the edge's sorted, deduplicated endpoint set.
func (e UndirectedHyper[V]) Verts() []V { return e.verts }

func (e UndirectedHyper[V]) Hash() uint64 {
	return hashUndirectedHyper(e.verts)
}

func (e UndirectedHyper[V]) Equal(o UndirectedHyper[V]) bool {
	return compareSlices(e.verts, o.verts) == 0
}

func (e UndirectedHyper[V]) Less(o UndirectedHyper[V]) bool {
	return compareSlices(e.verts, o.verts) < 0
}

func (e UndirectedHyper[V]) EffectLess(o UndirectedHyper[V]) bool {
	return e.Less(o)
}

func (e UndirectedHyper[V]) MutatorVerts() []V  { return e.verts }
func (e UndirectedHyper[V]) MutatedVerts() []V  { return e.verts }
func (e UndirectedHyper[V]) IncidentVerts() []V { return e.verts }

func (e UndirectedHyper[V]) IsMutator(v V) bool  { return containsSorted(e.verts, v) }
func (e UndirectedHyper[V]) IsMutated(v V) bool  { return containsSorted(e.verts, v) }
func (e UndirectedHyper[V]) IsIncident(v V) bool { return containsSorted(e.verts, v) }

// DirectedHyper is a hyperedge with a tail set acting on a head set.
// Tails and Heads are each kept sorted and deduplicated independently; a
// vertex may appear in both (a self-loop at the hyperedge level).
type DirectedHyper[V cmp.Ordered] struct {
	tails, heads []V
}

// NewDirectedHyper builds a hyperedge from tails to heads, canonicalising
// each endpoint set.
func NewDirectedHyper[V cmp.Ordered](tails, heads []V) DirectedHyper[V] {
	return DirectedHyper[V]{tails: canonSlice(tails), heads: canonSlice(heads)}
}

// Tails returns the edge's sorted, deduplicated tail set.
func (e DirectedHyper[V]) Tails() []V { return e.tails }

// Heads returns the edge's sorted, deduplicated head set.
func (e DirectedHyper[V]) Heads() []V { return e.heads }

func (e DirectedHyper[V]) Hash() uint64 {
	return hashDirectedHyper(e.tails, e.heads)
}

func (e DirectedHyper[V]) Equal(o DirectedHyper[V]) bool {
	return compareSlices(e.tails, o.tails) == 0 && compareSlices(e.heads, o.heads) == 0
}

func (e DirectedHyper[V]) Less(o DirectedHyper[V]) bool {
	if c := compareSlices(e.tails, o.tails); c != 0 {
		return c < 0
	}
	return compareSlices(e.heads, o.heads) < 0
}

func (e DirectedHyper[V]) EffectLess(o DirectedHyper[V]) bool {
	if c := compareSlices(e.heads, o.heads); c != 0 {
		return c < 0
	}
	return compareSlices(e.tails, o.tails) < 0
}

func (e DirectedHyper[V]) MutatorVerts() []V  { return e.tails }
func (e DirectedHyper[V]) MutatedVerts() []V  { return e.heads }
func (e DirectedHyper[V]) IncidentVerts() []V { return unionSorted(e.tails, e.heads) }

func (e DirectedHyper[V]) IsMutator(v V) bool  { return containsSorted(e.tails, v) }
func (e DirectedHyper[V]) IsMutated(v V) bool  { return containsSorted(e.heads, v) }
func (e DirectedHyper[V]) IsIncident(v V) bool {
	return containsSorted(e.tails, v) || containsSorted(e.heads, v)
}

// adjacentStaticDirectedHyper reports whether a's head set intersects b's
// tail set.
func adjacentStaticDirectedHyper[V cmp.Ordered](a, b DirectedHyper[V]) bool {
	for _, v := range a.heads {
		if containsSorted(b.tails, v) {
			return true
		}
	}
	return false
}

// adjacentStaticUndirectedHyper reports whether two undirected hyperedges
// share any endpoint.
func adjacentStaticUndirectedHyper[V cmp.Ordered](a, b UndirectedHyper[V]) bool {
	for _, v := range a.verts {
		if containsSorted(b.verts, v) {
			return true
		}
	}
	return false
}
