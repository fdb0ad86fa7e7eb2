package adjacency

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
)

// Simple is the unconstrained temporal-adjacency policy: every effect
// lingers forever.
type Simple[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]] struct{}

// NewSimple returns a Simple policy.
func NewSimple[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]]() Simple[V, T, E] {
	return Simple[V, T, E]{}
}

func (Simple[V, T, E]) Linger(_ E, _ V) T { return tnum.MaxValue[T]() }

func (Simple[V, T, E]) InfiniteLinger(_ E, _ V) bool { return true }

func (Simple[V, T, E]) MaximumLinger(_ V) T { return tnum.MaxValue[T]() }
