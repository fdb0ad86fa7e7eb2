package adjacency

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/internal/xhash"
)

// Policy is the temporal-adjacency rule threaded through every temporal
// reachability operation: it decides how long an event's effect persists
// at each vertex it mutates.
type Policy[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]] interface {
	// Linger returns how long e's effect persists at v after e's effect
	// time.
	Linger(e E, v V) T

	// InfiniteLinger reports whether Linger(e, v) is conceptually +∞
	// (represented by tnum.MaxValue[T]()).
	InfiniteLinger(e E, v V) bool

	// MaximumLinger is an upper bound on Linger over every possible event
	// at v, used to stop the implicit event graph's predecessor walk without
	// enumerating every earlier candidate.
	MaximumLinger(v V) T
}

// seedDraw combines a policy seed with an event's hash and a vertex into a
// single deterministic 64-bit value, the entropy source for every
// Exponential/Geometric draw. Calling this twice with the same (seed, e, v)
// always yields the same result — no mutable generator state is retained
// between calls.
func seedDraw[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]](seed uint64, e E, v V) uint64 {
	h := xhash.Combine(seed, e.Hash())
	return xhash.Combine(h, xhash.Of(v))
}
