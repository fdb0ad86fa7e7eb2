package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
	"github.com/katalvlaran/chronet/reachability"
)

func dagNet(t *testing.T) *network.Network[int, edge.DirectedDyadic[int]] {
	t.Helper()
	return network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(2, 3),
		edge.NewDirectedDyadic(1, 4),
	})
}

func TestOutComponentsDAG(t *testing.T) {
	n := dagNet(t)
	out := reachability.OutComponents(n)
	assert.Equal(t, []int{1, 2, 3, 4}, out[1].Slice())
	assert.Equal(t, []int{2, 3}, out[2].Slice())
	assert.Equal(t, []int{3}, out[3].Slice())
	assert.Equal(t, []int{4}, out[4].Slice())
}

func TestInComponentsDAG(t *testing.T) {
	n := dagNet(t)
	in := reachability.InComponents(n)
	assert.Equal(t, []int{1}, in[1].Slice())
	assert.Equal(t, []int{1, 2}, in[2].Slice())
	assert.Equal(t, []int{1, 2, 3}, in[3].Slice())
	assert.Equal(t, []int{1, 4}, in[4].Slice())
}

func TestOutComponentsCyclic(t *testing.T) {
	// 1 -> 2 -> 3 -> 1 (a cycle), plus 3 -> 4 leaving it.
	n := network.New([]edge.DirectedDyadic[int]{
		edge.NewDirectedDyadic(1, 2),
		edge.NewDirectedDyadic(2, 3),
		edge.NewDirectedDyadic(3, 1),
		edge.NewDirectedDyadic(3, 4),
	})

	out := reachability.OutComponents(n)
	assert.Equal(t, []int{1, 2, 3, 4}, out[1].Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, out[2].Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, out[3].Slice())
	assert.Equal(t, []int{4}, out[4].Slice())
}

func TestOutComponentAndInComponentSingleVertex(t *testing.T) {
	n := dagNet(t)

	out, err := reachability.OutComponent(n, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Slice())

	in, err := reachability.InComponent(n, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in.Slice())
}
