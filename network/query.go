package network

import "slices"

// HasEdge reports whether e (compared by Equal) is present in the network.
func (n *Network[V, E]) HasEdge(e E) bool {
	idx, ok := slices.BinarySearchFunc(n.edgesCause, e, func(a, b E) int {
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
	return n.edgesCause[idx].Equal(e)
}

// IsIsolated reports whether v has neither out- nor in-edges.
func (n *Network[V, E]) IsIsolated(v V) bool {
	return n.OutDegree(v) == 0 && n.InDegree(v) == 0
}

// Degree returns OutDegree(v) + InDegree(v), double-counting edges where v
// is both mutator and mutated (undirected edges, or directed self-loops).
func (n *Network[V, E]) Degree(v V) int {
	return n.OutDegree(v) + n.InDegree(v)
}
