package adjacency

import (
	"cmp"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
)

// Exponential draws a continuously-distributed linger from Exp(Rate),
// deterministically seeded from (Seed, e, v). T is restricted to the
// floating-point kinds: an exponential distribution has no integer
// support.
type Exponential[V cmp.Ordered, T tnum.Float, E edge.Edge[V, E]] struct {
	Rate float64
	Seed uint64
}

// NewExponential returns an Exponential policy with the given rate
// parameter and seed.
func NewExponential[V cmp.Ordered, T tnum.Float, E edge.Edge[V, E]](rate float64, seed uint64) Exponential[V, T, E] {
	return Exponential[V, T, E]{Rate: rate, Seed: seed}
}

// Linger draws a sample from Exp(Rate) using a random source freshly
// seeded from (p.Seed, e, v) — not a retained generator — so the result is
// a pure function of its inputs.
func (p Exponential[V, T, E]) Linger(e E, v V) T {
	h := seedDraw[V, T, E](p.Seed, e, v)
	src := rand.NewSource(h)
	dist := distuv.Exponential{Rate: p.Rate, Src: src}
	return T(dist.Rand())
}

func (Exponential[V, T, E]) InfiniteLinger(_ E, _ V) bool { return false }

func (Exponential[V, T, E]) MaximumLinger(_ V) T { return tnum.MaxValue[T]() }
