package network

import (
	"testing"

	"github.com/katalvlaran/chronet/edge"
)

func TestWithEdgesAddsAndKeepsVertices(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	n2 := n.WithEdges(edge.NewDirectedDyadic(3, 4))
	if n2.NumEdges() != 4 {
		t.Fatalf("NumEdges() = %d; want 4", n2.NumEdges())
	}
	if n.NumEdges() != 3 {
		t.Fatalf("original network mutated: NumEdges() = %d; want 3", n.NumEdges())
	}
}

func TestWithoutEdgesKeepsIsolatedVertex(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	n2 := n.WithoutEdges(edge.NewDirectedDyadic(1, 2))
	if n2.NumEdges() != 2 {
		t.Fatalf("NumEdges() = %d; want 2", n2.NumEdges())
	}
	if !n2.HasVertex(1) || !n2.HasVertex(2) {
		t.Fatalf("removing an edge must not remove its endpoints")
	}
}

func TestWithoutVerticesDropsIncidentEdges(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	n2 := n.WithoutVertices(2)
	if n2.HasVertex(2) {
		t.Fatalf("vertex 2 should be removed")
	}
	if n2.NumEdges() != 1 {
		t.Fatalf("NumEdges() = %d; want 1 ((3,1) is the only edge untouched by vertex 2)", n2.NumEdges())
	}
}

func TestGraphUnion(t *testing.T) {
	a := New[int, edge.DirectedDyadic[int]]([]edge.DirectedDyadic[int]{edge.NewDirectedDyadic(1, 2)})
	b := New[int, edge.DirectedDyadic[int]]([]edge.DirectedDyadic[int]{edge.NewDirectedDyadic(2, 3)})
	u := a.GraphUnion(b)
	if u.NumEdges() != 2 || u.NumVertices() != 3 {
		t.Fatalf("GraphUnion() edges=%d verts=%d; want 2, 3", u.NumEdges(), u.NumVertices())
	}
}

func TestVertexInducedSubgraph(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	sub := n.VertexInducedSubgraph(1, 2)
	if sub.NumEdges() != 1 {
		t.Fatalf("NumEdges() = %d; want 1 (only (1,2) has both endpoints in {1,2})", sub.NumEdges())
	}
	if !sub.HasVertex(1) || !sub.HasVertex(2) {
		t.Fatalf("kept vertices should be present")
	}
}

func TestVertexInducedSubgraphKeepsIsolatedSelection(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	sub := n.VertexInducedSubgraph(1, 2, 100)
	if !sub.HasVertex(100) {
		t.Fatalf("explicitly selected vertex 100 should survive even with no edges")
	}
}

func TestEdgeInducedSubgraph(t *testing.T) {
	n := New[int, edge.DirectedDyadic[int]](directedChain())
	sub := n.EdgeInducedSubgraph(edge.NewDirectedDyadic(1, 2))
	if sub.NumVertices() != 2 {
		t.Fatalf("NumVertices() = %d; want 2", sub.NumVertices())
	}
	if sub.HasVertex(3) {
		t.Fatalf("vertex 3 should not appear: not incident to the selected edge")
	}
}
