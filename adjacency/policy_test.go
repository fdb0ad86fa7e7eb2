package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
)

type dyadic = edge.DirectedDyadic[int]

func TestSimpleIsInfinite(t *testing.T) {
	p := adjacency.NewSimple[int, int, dyadic]()
	e := edge.NewDirectedDyadic(1, 2)

	assert.True(t, p.InfiniteLinger(e, 2))
	assert.Equal(t, p.MaximumLinger(2), p.Linger(e, 2))
}

func TestLimitedWaitingTimeFiniteDelta(t *testing.T) {
	p := adjacency.NewLimitedWaitingTime[int, int, dyadic](5)
	e := edge.NewDirectedDyadic(1, 2)

	require.Equal(t, 5, p.Linger(e, 2))
	assert.False(t, p.InfiniteLinger(e, 2))
	assert.Equal(t, 5, p.MaximumLinger(2))
}

func TestLimitedWaitingTimeMaxDeltaIsInfinite(t *testing.T) {
	p := adjacency.NewLimitedWaitingTime[int, int, dyadic](tnumMaxInt())
	e := edge.NewDirectedDyadic(1, 2)
	assert.True(t, p.InfiniteLinger(e, 2))
}

func TestExponentialDeterministic(t *testing.T) {
	p := adjacency.NewExponential[int, float64, dyadic](2.0, 42)
	e := edge.NewDirectedDyadic(1, 2)

	first := p.Linger(e, 2)
	second := p.Linger(e, 2)
	assert.Equal(t, first, second, "same (seed, e, v) must yield the same linger every call")
	assert.False(t, p.InfiniteLinger(e, 2))
	assert.GreaterOrEqual(t, first, 0.0)
}

func TestExponentialDiffersAcrossVertices(t *testing.T) {
	p := adjacency.NewExponential[int, float64, dyadic](2.0, 42)
	e := edge.NewDirectedDyadic(1, 2)

	a := p.Linger(e, 2)
	b := p.Linger(e, 3)
	assert.NotEqual(t, a, b, "distinct vertices should (almost surely) draw distinct lingers")
}

func TestGeometricDeterministic(t *testing.T) {
	p := adjacency.NewGeometric[int, int, dyadic](0.3, 7)
	e := edge.NewDirectedDyadic(1, 2)

	first := p.Linger(e, 2)
	second := p.Linger(e, 2)
	assert.Equal(t, first, second)
	assert.False(t, p.InfiniteLinger(e, 2))
	assert.GreaterOrEqual(t, first, 0)
}

func TestGeometricBoundaryProbabilities(t *testing.T) {
	e := edge.NewDirectedDyadic(1, 2)

	zero := adjacency.NewGeometric[int, int, dyadic](0, 1)
	assert.Equal(t, zero.MaximumLinger(2), zero.Linger(e, 2))

	one := adjacency.NewGeometric[int, int, dyadic](1, 1)
	assert.Equal(t, 0, one.Linger(e, 2))
}

func tnumMaxInt() int {
	const maxInt = int(^uint(0) >> 1)
	return maxInt
}
