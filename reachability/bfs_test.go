package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
	"github.com/katalvlaran/chronet/reachability"
)

func chain(t *testing.T) *network.Network[int, edge.DirectedDyadic[int]] {
	t.Helper()
	return network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(2, 3),
		edge.NewDirectedDyadic(3, 4),
	})
}

func TestBFSForwardVisitsDescendants(t *testing.T) {
	c, err := reachability.BFS(chain(t), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, c.Slice())
}

func TestBFSReverseVisitsAncestors(t *testing.T) {
	c, err := reachability.BFS(chain(t), 4, reachability.WithDirection[int](reachability.Reverse))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, c.Slice())
}

func TestBFSMaxDepthLimitsExpansion(t *testing.T) {
	c, err := reachability.BFS(chain(t), 1, reachability.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, c.Slice())
}

func TestBFSOnVisitStopsTraversal(t *testing.T) {
	var seen []int
	c, err := reachability.BFS(chain(t), 1, reachability.WithOnVisit[int](func(v int, _ int) bool {
		seen = append(seen, v)
		return v != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []int{1, 2}, c.Slice())
}

func TestBFSUnknownSourceReturnsError(t *testing.T) {
	_, err := reachability.BFS(chain(t), 99)
	assert.ErrorIs(t, err, reachability.ErrVertexNotFound)
}

func TestBFSNegativeMaxDepthReturnsError(t *testing.T) {
	_, err := reachability.BFS(chain(t), 1, reachability.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, reachability.ErrOptionViolation)
}

func TestBFSUndirectedTraversal(t *testing.T) {
	n := network.New([]edge.UndirectedDyadic[int]{
		edge.NewUndirectedDyadic(1, 2),
		edge.NewUndirectedDyadic(2, 3),
	})
	c, err := reachability.BFS(n, 3, reachability.WithDirection[int](reachability.Undirected))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.Slice())
}
