package reachability

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

// buildEdgeIndex returns a lookup from Hash() to the indices of cause
// sharing that hash, so an edge value encountered elsewhere (e.g. via
// OutEdges) can be matched back to its position in cause without requiring
// E to be a comparable type (hyperedge variants carry slice fields and
// are not). A hash collision only costs an extra Equal check in the
// bucket; it never misidentifies an edge.
func buildEdgeIndex[V cmp.Ordered, E edge.Edge[V, E]](cause []E) map[uint64][]int {
	idx := make(map[uint64][]int, len(cause))
	for i, e := range cause {
		idx[e.Hash()] = append(idx[e.Hash()], i)
	}
	return idx
}

// indexOf finds e's position in cause using idx, built by buildEdgeIndex
// over the same cause slice.
func indexOf[V cmp.Ordered, E edge.Edge[V, E]](cause []E, idx map[uint64][]int, e E) int {
	for _, i := range idx[e.Hash()] {
		if cause[i].Equal(e) {
			return i
		}
	}
	panic("reachability: edge not found in its own network's edge index")
}

// TopologicalSort computes a linear ordering of net's vertices such that
// every edge's mutated vertices follow all of its mutator vertices. It
// generalises Kahn's algorithm to hyperedges: an edge only "fires" (and
// decrements the indegree of its mutated vertices) once every one of its
// mutator vertices has already been emitted, so an edge with k mutator
// vertices holds back its mutated vertices until all k have appeared.
//
// Returns ErrNotAcyclic if no such ordering exists.
func TopologicalSort[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) ([]V, error) {
	cause := net.EdgesCause()
	idx := buildEdgeIndex(cause)

	remaining := make([]int, len(cause))
	for i, e := range cause {
		remaining[i] = len(e.MutatorVerts())
	}

	indegree := make(map[V]int, net.NumVertices())
	for _, v := range net.Vertices() {
		indegree[v] = 0
	}
	for _, e := range cause {
		for _, v := range e.MutatedVerts() {
			indegree[v]++
		}
	}

	queue := make([]V, 0, net.NumVertices())
	for _, v := range net.Vertices() {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]V, 0, net.NumVertices())
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		for _, e := range net.OutEdges(v) {
			i := indexOf(cause, idx, e)
			remaining[i]--
			if remaining[i] != 0 {
				continue
			}
			for _, u := range e.MutatedVerts() {
				indegree[u]--
				if indegree[u] == 0 {
					queue = append(queue, u)
				}
			}
		}
	}

	if len(order) != net.NumVertices() {
		return nil, ErrNotAcyclic
	}
	return order, nil
}
