package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
	"github.com/katalvlaran/chronet/reachability"
)

func TestTopologicalSortAcyclic(t *testing.T) {
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(1, 3),
		edge.NewDirectedDyadic(2, 4),
		edge.NewDirectedDyadic(3, 4),
	})

	order, err := reachability.TopologicalSort(n)
	require.NoError(t, err)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos[1], pos[2])
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[4])
	assert.Less(t, pos[3], pos[4])
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(2, 3),
		edge.NewDirectedDyadic(3, 1),
	})

	_, err := reachability.TopologicalSort(n)
	assert.ErrorIs(t, err, reachability.ErrNotAcyclic)
}

func TestTopologicalSortWaitsForAllHyperedgeMutators(t *testing.T) {
	n := network.New([]edge.DirectedHyper[int]{
		edge.NewDirectedHyper([]int{1, 2}, []int{3}),
	})

	order, err := reachability.TopologicalSort(n)
	require.NoError(t, err)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[3])
}
