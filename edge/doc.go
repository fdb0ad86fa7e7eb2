// Package edge defines the edge algebra: the ten concrete edge kinds
// (directed/undirected × dyadic/hyper × static/instantaneous-temporal/
// delayed-temporal, with the undirected-delayed combination excluded) that
// every other package in this module is polymorphic over.
//
// Every concrete type satisfies Edge[V, Self] (an F-bounded constraint: a
// directed dyadic edge's neighbours and comparisons are expressed in terms
// of DirectedDyadic[V] itself, not a separate interface type, so that
// network.Network[V, E] can store a flat, unboxed []E rather than a slice of
// interface values). Static types additionally satisfy Static[V]; temporal
// types satisfy Temporal[V, T] and carry a StaticProjection back to their
// static counterpart.
//
// Two total orders are defined on every edge: Less, the *cause* order
// (earliest-acting-first, lexicographic over cause_time, effect_time, then
// mutator vertices, then mutated vertices — static edges drop the time
// prefix), and EffectLess, the *effect* order (same idea with effect_time
// ahead of cause_time, and mutator and mutated swapped). For undirected edges mutator_verts() and mutated_verts()
// are identical by construction, so EffectLess is always equal to Less;
// directed edges get a genuinely distinct effect order (see DESIGN.md's
// Open Question decisions for why directed instantaneous edges are not
// special-cased to alias it too).
package edge
