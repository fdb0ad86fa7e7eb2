package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
	"github.com/katalvlaran/chronet/reachability"
)

func TestWeakComponentsSplitsDisjointPieces(t *testing.T) {
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(3, 4),
	})

	comps := reachability.WeakComponents(n)
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2}, comps[0].Slice())
	assert.Equal(t, []int{3, 4}, comps[1].Slice())
}

func TestWeakComponentsIgnoresDirection(t *testing.T) {
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(2, 1),
		edge.NewDirectedDyadic(3, 2),
	})

	comps := reachability.WeakComponents(n)
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1, 2, 3}, comps[0].Slice())
}

func TestWeakComponentOf(t *testing.T) {
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(3, 4),
	})

	c, err := reachability.WeakComponentOf(n, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, c.Slice())
}
