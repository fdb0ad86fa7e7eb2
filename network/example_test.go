package network_test

import (
	"fmt"

	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

func ExampleNew() {
	net := network.New[string, edge.DirectedDyadic[string]](
		[]edge.DirectedDyadic[string]{
			edge.NewDirectedDyadic("alice", "bob"),
			edge.NewDirectedDyadic("alice", "carol"),
		},
	)
	fmt.Println(net.NumVertices(), net.OutDegree("alice"), net.InDegree("bob"))
	// Output:
	// 3 2 1
}
