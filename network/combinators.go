package network

import "slices"

// WithEdges returns a new Network containing n's edges plus extra,
// deduplicated, with n's vertex set preserved as a supplementary set (so
// isolated vertices survive even if extra contributes no edge touching
// them).
func (n *Network[V, E]) WithEdges(extra ...E) *Network[V, E] {
	combined := make([]E, 0, len(n.edgesCause)+len(extra))
	combined = append(combined, n.edgesCause...)
	combined = append(combined, extra...)
	return New[V, E](combined, n.verts...)
}

// WithVertices returns a new Network containing n's edges and vertex set
// plus extra as additional isolated vertices.
func (n *Network[V, E]) WithVertices(extra ...V) *Network[V, E] {
	verts := make([]V, 0, len(n.verts)+len(extra))
	verts = append(verts, n.verts...)
	verts = append(verts, extra...)
	return New[V, E](n.edgesCause, verts...)
}

// WithoutEdges returns a new Network with every edge equal to one of
// remove dropped. Vertices are unaffected: n's full vertex set is kept as
// the supplementary set, so a vertex that loses all its edges stays
// present but isolated.
func (n *Network[V, E]) WithoutEdges(remove ...E) *Network[V, E] {
	kept := make([]E, 0, len(n.edgesCause))
	for _, e := range n.edgesCause {
		drop := false
		for _, r := range remove {
			if e.Equal(r) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, e)
		}
	}
	return New[V, E](kept, n.verts...)
}

// WithoutVertices returns a new Network with every vertex in remove, and
// every edge incident to any of them, dropped.
func (n *Network[V, E]) WithoutVertices(remove ...V) *Network[V, E] {
	removed := slices.Clone(remove)
	slices.Sort(removed)
	removed = slices.Compact(removed)

	kept := make([]E, 0, len(n.edgesCause))
	for _, e := range n.edgesCause {
		touches := false
		for _, v := range e.IncidentVerts() {
			if _, ok := slices.BinarySearch(removed, v); ok {
				touches = true
				break
			}
		}
		if !touches {
			kept = append(kept, e)
		}
	}

	remainingVerts := make([]V, 0, len(n.verts))
	for _, v := range n.verts {
		if _, ok := slices.BinarySearch(removed, v); !ok {
			remainingVerts = append(remainingVerts, v)
		}
	}
	return New[V, E](kept, remainingVerts...)
}

// GraphUnion returns a new Network whose edges and vertices are the union
// of n's and other's.
func (n *Network[V, E]) GraphUnion(other *Network[V, E]) *Network[V, E] {
	combined := make([]E, 0, len(n.edgesCause)+len(other.edgesCause))
	combined = append(combined, n.edgesCause...)
	combined = append(combined, other.edgesCause...)
	verts := make([]V, 0, len(n.verts)+len(other.verts))
	verts = append(verts, n.verts...)
	verts = append(verts, other.verts...)
	return New[V, E](combined, verts...)
}

// VertexInducedSubgraph returns a new Network keeping an edge iff every one
// of its incident vertices is in keep. Every vertex in keep survives in
// the result even if it ends up isolated.
func (n *Network[V, E]) VertexInducedSubgraph(keep ...V) *Network[V, E] {
	keepSorted := slices.Clone(keep)
	slices.Sort(keepSorted)
	keepSorted = slices.Compact(keepSorted)

	kept := make([]E, 0, len(n.edgesCause))
	for _, e := range n.edgesCause {
		all := true
		for _, v := range e.IncidentVerts() {
			if _, ok := slices.BinarySearch(keepSorted, v); !ok {
				all = false
				break
			}
		}
		if all {
			kept = append(kept, e)
		}
	}
	return New[V, E](kept, keepSorted...)
}

// EdgeInducedSubgraph returns a new Network containing exactly the given
// edges and the union of their incident vertices.
func (n *Network[V, E]) EdgeInducedSubgraph(edges ...E) *Network[V, E] {
	return New[V, E](edges)
}
