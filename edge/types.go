package edge

import (
	"cmp"

	"github.com/katalvlaran/chronet/internal/tnum"
)

// Edge is the F-bounded constraint every concrete edge type satisfies: E is
// the concrete type itself (e.g. DirectedDyadic[V]), so methods like Equal
// and Less take another E rather than a boxed interface value. Every
// algorithm elsewhere in this module — BFS, topological sort, component
// detection, event-graph construction — is written generically over
// [V cmp.Ordered, E Edge[V, E]] and never needs to know whether E is static
// or temporal, directed or undirected, dyadic or hyper.
type Edge[V cmp.Ordered, E any] interface {
	// Hash returns a deterministic, order-independent-where-required digest
	// of the edge's identity (its endpoints and, for temporal edges, its
	// time fields). Equal edges always hash equal.
	Hash() uint64

	// Equal reports whether e and other have identical endpoints and (for
	// temporal edges) identical time fields.
	Equal(other E) bool

	// Less is the cause order: a total order over E that sorts by
	// cause_time, then effect_time (temporal edges only), then mutator
	// vertices, then mutated vertices.
	Less(other E) bool

	// EffectLess is the effect order: cause order with effect_time compared
	// before cause_time (temporal edges) and with mutator and mutated roles
	// swapped. Equal to Less whenever the two times and mutator_verts() and
	// mutated_verts() coincide, which is always true for undirected edges.
	EffectLess(other E) bool

	// MutatorVerts returns the sorted, deduplicated vertices that cause the
	// edge's effect: both endpoints for an undirected edge, the tail(s) for
	// a directed one.
	MutatorVerts() []V

	// MutatedVerts returns the sorted, deduplicated vertices the edge acts
	// upon: both endpoints for an undirected edge, the head(s) for a
	// directed one.
	MutatedVerts() []V

	// IncidentVerts returns the sorted, deduplicated union of
	// MutatorVerts and MutatedVerts.
	IncidentVerts() []V

	// IsMutator reports whether v is one of MutatorVerts.
	IsMutator(v V) bool

	// IsMutated reports whether v is one of MutatedVerts.
	IsMutated(v V) bool

	// IsIncident reports whether v is one of IncidentVerts.
	IsIncident(v V) bool
}

// Static marks an edge type as carrying no time component. It adds nothing
// to Edge; it exists so call sites that only make sense for static edges
// (building a plain adjacency structure, for instance) can name their
// constraint precisely instead of silently accepting a temporal edge too.
type Static[V cmp.Ordered, E any] interface {
	Edge[V, E]
}

// Temporal is the constraint satisfied by every temporal edge type. T is the
// time type (spec'd as "arithmetic, totally ordered" — tnum.Real). S is the
// static edge type this temporal edge projects down to via StaticProjection
// (e.g. DirectedInstantTemporal[V, T]'s S is DirectedDyadic[V]).
type Temporal[V cmp.Ordered, T tnum.Real, E any, S any] interface {
	Edge[V, E]

	// CauseTime returns when the edge begins acting.
	CauseTime() T

	// EffectTime returns when the edge finishes acting. Equal to CauseTime
	// for instantaneous edges.
	EffectTime() T

	// AdjacentTo reports whether an event represented by other can follow
	// this event in a causal chain: structural adjacency of the static
	// projections, gated by the appropriate strict time ordering for the
	// edge's temporal kind (instantaneous: other's cause time strictly
	// after this edge's cause time; delayed: other's cause time strictly
	// after this edge's effect time).
	AdjacentTo(other E) bool

	// StaticProjection returns the static edge obtained by dropping this
	// edge's time component.
	StaticProjection() S
}
