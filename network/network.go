package network

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/chronet/edge"
)

// Network is an immutable, indexed collection of edges of a single variant
// E over vertices of type V. The zero value is not usable; construct one
// with New.
type Network[V cmp.Ordered, E edge.Edge[V, E]] struct {
	edgesCause  []E
	edgesEffect []E
	verts       []V
	outEdges    map[V][]E
	inEdges     map[V][]E
}

// New builds a Network from edges, deduplicating and sorting them in both
// cause and effect order, and folding in extraVerts as an isolated
// supplementary vertex set (per spec.md §3.3's construction contract: the
// final vertex set is the union of extraVerts and every edge's incident
// vertices).
func New[V cmp.Ordered, E edge.Edge[V, E]](edges []E, extraVerts ...V) *Network[V, E] {
	cause := sortDedup(edges, func(a, b E) bool { return a.Less(b) })
	effect := sortDedup(edges, func(a, b E) bool { return a.EffectLess(b) })

	verts := make([]V, 0, len(extraVerts))
	verts = append(verts, extraVerts...)
	for _, e := range cause {
		verts = append(verts, e.IncidentVerts()...)
	}
	slices.Sort(verts)
	verts = slices.Compact(verts)

	out := make(map[V][]E, len(verts))
	for _, e := range cause {
		for _, v := range e.MutatorVerts() {
			out[v] = append(out[v], e)
		}
	}
	in := make(map[V][]E, len(verts))
	for _, e := range effect {
		for _, v := range e.MutatedVerts() {
			in[v] = append(in[v], e)
		}
	}

	return &Network[V, E]{
		edgesCause:  cause,
		edgesEffect: effect,
		verts:       verts,
		outEdges:    out,
		inEdges:     in,
	}
}

// sortDedup returns a sorted, deduplicated copy of es under the strict
// order less. Two edges are deduplicated when neither is less than the
// other, which for a total order means they are equal.
func sortDedup[E any](es []E, less func(a, b E) bool) []E {
	out := make([]E, len(es))
	copy(out, es)
	slices.SortFunc(out, func(a, b E) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return slices.CompactFunc(out, func(a, b E) bool {
		return !less(a, b) && !less(b, a)
	})
}

// Vertices returns the network's sorted, deduplicated vertex list.
func (n *Network[V, E]) Vertices() []V { return n.verts }

// EdgesCause returns the network's edges in cause order.
func (n *Network[V, E]) EdgesCause() []E { return n.edgesCause }

// EdgesEffect returns the network's edges in effect order.
func (n *Network[V, E]) EdgesEffect() []E { return n.edgesEffect }

// NumVertices returns the number of distinct vertices.
func (n *Network[V, E]) NumVertices() int { return len(n.verts) }

// NumEdges returns the number of distinct edges.
func (n *Network[V, E]) NumEdges() int { return len(n.edgesCause) }

// HasVertex reports whether v is one of the network's vertices.
func (n *Network[V, E]) HasVertex(v V) bool {
	_, ok := slices.BinarySearch(n.verts, v)
	return ok
}

// OutEdges returns v's out-adjacency list (mutator role), in cause order.
// The returned slice must not be mutated by the caller.
func (n *Network[V, E]) OutEdges(v V) []E { return n.outEdges[v] }

// InEdges returns v's in-adjacency list (mutated role), in effect order.
// The returned slice must not be mutated by the caller.
func (n *Network[V, E]) InEdges(v V) []E { return n.inEdges[v] }

// OutDegree returns len(OutEdges(v)).
func (n *Network[V, E]) OutDegree(v V) int { return len(n.outEdges[v]) }

// InDegree returns len(InEdges(v)).
func (n *Network[V, E]) InDegree(v V) int { return len(n.inEdges[v]) }

// Equal reports whether n and other have identical vertex and edge sets.
func (n *Network[V, E]) Equal(other *Network[V, E]) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(n.verts, other.verts) {
		return false
	}
	return slices.EqualFunc(n.edgesCause, other.edgesCause, func(a, b E) bool { return a.Equal(b) })
}
