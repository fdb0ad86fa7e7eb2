package adjacency

import (
	"cmp"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
)

// LimitedWaitingTime lingers for exactly Delta after an event's effect
// time, at every mutated vertex.
type LimitedWaitingTime[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]] struct {
	Delta T
}

// NewLimitedWaitingTime returns a LimitedWaitingTime policy with window
// delta.
func NewLimitedWaitingTime[V cmp.Ordered, T tnum.Real, E edge.Edge[V, E]](delta T) LimitedWaitingTime[V, T, E] {
	return LimitedWaitingTime[V, T, E]{Delta: delta}
}

func (p LimitedWaitingTime[V, T, E]) Linger(_ E, _ V) T { return p.Delta }

// InfiniteLinger reports true only when Delta is itself the type's
// representable maximum, i.e. Delta was configured to mean +∞.
func (p LimitedWaitingTime[V, T, E]) InfiniteLinger(_ E, _ V) bool {
	return p.Delta == tnum.MaxValue[T]()
}

func (p LimitedWaitingTime[V, T, E]) MaximumLinger(_ V) T { return p.Delta }
