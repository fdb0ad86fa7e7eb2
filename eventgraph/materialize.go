package eventgraph

import (
	"cmp"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/network"
)

// materialize builds the explicit event graph: net's events, cause-ordered,
// alongside an int-indexed directed network whose vertex i stands for
// events[i] and whose edges are exactly the Successors relation. Every
// event is included as a vertex even if isolated.
func materialize[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj) ([]E, *network.Network[int, edge.DirectedDyadic[int]]) {
	events := net.EdgesCause()
	idx := buildEventIndex[E](events)

	verts := make([]int, len(events))
	var edges []edge.DirectedDyadic[int]
	for i, e := range events {
		verts[i] = i
		for _, s := range Successors[V, T, E, S, Adj](net, adj, e, false) {
			j := eventIndexOf[E](events, idx, s)
			edges = append(edges, edge.NewDirectedDyadic(i, j))
		}
	}

	return events, network.New(edges, verts...)
}

// EventGraph materialises the implicit event graph of net under adj as an
// explicit Network<DirectedEdge<Event>>, represented as events (net's
// cause-ordered edges) alongside a directed network over their indices.
// Only worth calling when the event graph itself is small enough to hold;
// every other operation in this package works against the implicit form.
func EventGraph[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj) ([]E, *network.Network[int, edge.DirectedDyadic[int]]) {
	return materialize[V, T, E, S, Adj](net, adj)
}
