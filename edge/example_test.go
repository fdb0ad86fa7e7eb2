package edge_test

import (
	"fmt"

	"github.com/katalvlaran/chronet/edge"
)

func ExampleNewDirectedDyadic() {
	tailToHead := edge.NewDirectedDyadic(1, 2)
	fmt.Println(tailToHead.IsMutator(1), tailToHead.IsMutated(2))
	// Output:
	// true true
}

func ExampleDirectedInstantTemporal_AdjacentTo() {
	first := edge.NewDirectedInstantTemporal("alice", "bob", 10)
	second := edge.NewDirectedInstantTemporal("bob", "carol", 15)
	fmt.Println(first.AdjacentTo(second))
	// Output:
	// true
}
