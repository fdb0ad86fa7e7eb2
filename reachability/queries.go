package reachability

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

// IsReachable reports whether to is reachable from from by following
// out-edges, stopping the underlying BFS as soon as to is found.
func IsReachable[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], from, to V) (bool, error) {
	found := false
	_, err := BFS(net, from, WithOnVisit[V](func(v V, _ int) bool {
		if v == to {
			found = true
			return false
		}
		return true
	}))
	if err != nil {
		return false, err
	}
	return found, nil
}

// ShortestPathLengthsFrom returns, for every vertex reachable from source by
// out-edges, its unweighted distance (in edges) from source.
func ShortestPathLengthsFrom[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], source V) (map[V]int, error) {
	dist := make(map[V]int)
	_, err := BFS(net, source, WithOnVisit[V](func(v V, depth int) bool {
		dist[v] = depth
		return true
	}))
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// ShortestPathLengthsTo returns, for every vertex that can reach target by
// out-edges, its unweighted distance (in edges) to target.
func ShortestPathLengthsTo[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], target V) (map[V]int, error) {
	dist := make(map[V]int)
	_, err := BFS(net, target, WithDirection[V](Reverse), WithOnVisit[V](func(v V, depth int) bool {
		dist[v] = depth
		return true
	}))
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// TwoColouring assigns every vertex of net a boolean colour such that every
// edge joins two differently-coloured vertices, treating net as undirected
// and handling disconnected networks by colouring each weak component
// independently. Returns ErrNotBipartite if no such colouring exists,
// including when some edge has fewer than two distinct incident vertices
// (a self-loop can never be properly two-coloured).
func TwoColouring[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) (map[V]bool, error) {
	colour := make(map[V]bool, net.NumVertices())
	for _, start := range net.Vertices() {
		if _, done := colour[start]; done {
			continue
		}
		_, err := BFS(net, start, WithDirection[V](Undirected), WithOnVisit[V](func(v V, depth int) bool {
			colour[v] = depth%2 == 1
			return true
		}))
		if err != nil {
			return nil, err
		}
	}

	for _, e := range net.EdgesCause() {
		verts := e.IncidentVerts()
		if len(verts) != 2 {
			return nil, ErrNotBipartite
		}
		if colour[verts[0]] == colour[verts[1]] {
			return nil, ErrNotBipartite
		}
	}
	return colour, nil
}
