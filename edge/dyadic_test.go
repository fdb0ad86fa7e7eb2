package edge

import "testing"

func TestUndirectedDyadicCanonical(t *testing.T) {
	a := NewUndirectedDyadic(3, 1)
	b := NewUndirectedDyadic(1, 3)
	if !a.Equal(b) {
		t.Fatalf("NewUndirectedDyadic(3,1) != NewUndirectedDyadic(1,3): %+v vs %+v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("hash not order-independent: %d vs %d", a.Hash(), b.Hash())
	}
	x, y := a.Endpoints()
	if x != 1 || y != 3 {
		t.Fatalf("Endpoints() = %d, %d; want 1, 3", x, y)
	}
}

func TestUndirectedDyadicRoles(t *testing.T) {
	e := NewUndirectedDyadic(1, 2)
	for _, v := range []int{1, 2} {
		if !e.IsMutator(v) || !e.IsMutated(v) || !e.IsIncident(v) {
			t.Fatalf("vertex %d should be mutator, mutated, and incident", v)
		}
	}
	if e.IsIncident(3) {
		t.Fatalf("vertex 3 should not be incident")
	}
}

func TestDirectedDyadicRoles(t *testing.T) {
	e := NewDirectedDyadic(1, 2)
	if !e.IsMutator(1) || e.IsMutator(2) {
		t.Fatalf("tail should be mutator only")
	}
	if !e.IsMutated(2) || e.IsMutated(1) {
		t.Fatalf("head should be mutated only")
	}
	if !e.IsIncident(1) || !e.IsIncident(2) {
		t.Fatalf("both endpoints should be incident")
	}
}

func TestDirectedDyadicCauseVsEffectOrder(t *testing.T) {
	// Two edges that tie on Tail<Head direction but disagree when the
	// mutator/mutated roles are swapped.
	e1 := NewDirectedDyadic(1, 5)
	e2 := NewDirectedDyadic(2, 3)

	if !e1.Less(e2) {
		t.Fatalf("cause order: want e1 < e2 (tail 1 < tail 2)")
	}
	// Effect order compares heads first: 3 < 5, so e2 sorts before e1 —
	// the opposite of cause order.
	if !e2.EffectLess(e1) {
		t.Fatalf("effect order: want e2 < e1 (head 3 < head 5)")
	}
	if e1.EffectLess(e2) {
		t.Fatalf("effect order should not also put e1 before e2")
	}
}

func TestUndirectedDyadicEffectOrderAliasesCause(t *testing.T) {
	e1 := NewUndirectedDyadic(1, 5)
	e2 := NewUndirectedDyadic(2, 3)
	if e1.Less(e2) != e1.EffectLess(e2) {
		t.Fatalf("undirected EffectLess must alias Less")
	}
}

func TestDirectedDyadicSelfLoopIncidence(t *testing.T) {
	e := NewDirectedDyadic(7, 7)
	if got := e.IncidentVerts(); len(got) != 1 || got[0] != 7 {
		t.Fatalf("self-loop IncidentVerts() = %v; want [7]", got)
	}
}

func TestStaticAdjacency(t *testing.T) {
	a := NewDirectedDyadic(1, 2)
	b := NewDirectedDyadic(2, 3)
	c := NewDirectedDyadic(3, 1)
	if !adjacentStaticDirectedDyadic(a, b) {
		t.Fatalf("a->b should be adjacent: head(a)==tail(b)")
	}
	if adjacentStaticDirectedDyadic(a, c) {
		t.Fatalf("a->c should not be adjacent: head(a)=2 != tail(c)=3")
	}
}
