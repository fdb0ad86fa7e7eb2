package adjacency

import (
	"cmp"
	"math"
	"math/rand"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
)

// Geometric draws a discretely-distributed linger from Geometric(P) (the
// number of failures before the first success), deterministically seeded
// from (Seed, e, v). T is restricted to the integer kinds.
type Geometric[V cmp.Ordered, T tnum.Integer, E edge.Edge[V, E]] struct {
	P    float64
	Seed uint64
}

// NewGeometric returns a Geometric policy with success probability p and
// seed.
func NewGeometric[V cmp.Ordered, T tnum.Integer, E edge.Edge[V, E]](p float64, seed uint64) Geometric[V, T, E] {
	return Geometric[V, T, E]{P: p, Seed: seed}
}

// Linger samples k ~ Geometric(P) by inverse CDF against a single uniform
// draw from a random source freshly seeded from (p.Seed, e, v). gonum's
// stat/distuv has no Geometric distribution, so this follows the standard
// construction directly: k = floor(ln(1-u) / ln(1-P)).
func (p Geometric[V, T, E]) Linger(e E, v V) T {
	h := seedDraw[V, T, E](p.Seed, e, v)
	u := rand.New(rand.NewSource(int64(h))).Float64()
	if p.P <= 0 {
		return tnum.MaxValue[T]()
	}
	if p.P >= 1 {
		return 0
	}
	k := math.Floor(math.Log1p(-u) / math.Log1p(-p.P))
	return T(k)
}

func (Geometric[V, T, E]) InfiniteLinger(_ E, _ V) bool { return false }

func (Geometric[V, T, E]) MaximumLinger(_ V) T { return tnum.MaxValue[T]() }
