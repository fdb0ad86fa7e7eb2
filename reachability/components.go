package reachability

import (
	"slices"

	"cmp"

	"github.com/katalvlaran/chronet/component"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

// OutComponent returns v together with every vertex reachable from v by
// following out-edges.
func OutComponent[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], v V) (*component.Component[V], error) {
	return BFS(net, v, WithDirection[V](Forward))
}

// InComponent returns v together with every vertex that can reach v by
// following out-edges (equivalently: v's BFS over in-edges).
func InComponent[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], v V) (*component.Component[V], error) {
	return BFS(net, v, WithDirection[V](Reverse))
}

// OutComponents computes OutComponent for every vertex in net at once. On
// an acyclic network this runs a single dynamic-programming pass over a
// topological order; otherwise it condenses net's strongly connected
// components with a non-recursive Tarjan pass first.
func OutComponents[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) map[V]*component.Component[V] {
	if order, err := TopologicalSort(net); err == nil {
		return dagComponents(net, order, Forward)
	}
	sccs, sccOf := tarjanSCC(net)
	return sccComponents(net, sccs, sccOf, Forward)
}

// InComponents computes InComponent for every vertex in net at once, using
// the same DAG-fast-path/SCC-condensation dispatch as OutComponents.
func InComponents[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) map[V]*component.Component[V] {
	if order, err := TopologicalSort(net); err == nil {
		return dagComponents(net, order, Reverse)
	}
	sccs, sccOf := tarjanSCC(net)
	return sccComponents(net, sccs, sccOf, Reverse)
}

// dagComponents computes {Out,In}Components on an acyclic network by a
// single dynamic-programming pass: process vertices so that, for the
// requested direction, every immediate neighbor's component is already
// finished, then union it in.
func dagComponents[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], topoOrder []V, dir Direction) map[V]*component.Component[V] {
	order := topoOrder
	if dir == Forward {
		order = slices.Clone(topoOrder)
		slices.Reverse(order)
	}

	result := make(map[V]*component.Component[V], len(order))
	for _, v := range order {
		c := component.NewComponent(v)
		for _, n := range neighborsOf(net, v, dir) {
			c.Merge(result[n])
		}
		result[v] = c
	}
	return result
}

// sccComponents computes {Out,In}Components on a cyclic network: every
// vertex in an SCC shares that SCC's component (all mutually reachable),
// extended with the components of the SCCs it points to (Forward) or is
// pointed to by (Reverse) in the condensation graph.
func sccComponents[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], sccs [][]V, sccOf map[V]int, dir Direction) map[V]*component.Component[V] {
	per := make([]*component.Component[V], len(sccs))
	for i, members := range sccs {
		per[i] = component.NewComponent(members...)
	}

	// sccs is in Tarjan completion order: sinks first. That is exactly the
	// order Forward needs (a scc's out-neighbor sccs are always completed
	// earlier). Reverse needs the opposite: an scc's in-neighbor sccs are
	// always completed later, so walk the list back to front.
	order := make([]int, len(sccs))
	for i := range order {
		order[i] = i
	}
	if dir == Reverse {
		slices.Reverse(order)
	}

	for _, i := range order {
		for _, v := range sccs[i] {
			for _, n := range neighborsOf(net, v, dir) {
				j := sccOf[n]
				if j == i {
					continue
				}
				per[i].Merge(per[j])
			}
		}
	}

	result := make(map[V]*component.Component[V], len(sccOf))
	for v, i := range sccOf {
		result[v] = per[i]
	}
	return result
}

// tarjanFrame is one level of the explicit call stack tarjanSCC uses in
// place of recursion.
type tarjanFrame[V any] struct {
	v         V
	neighbors []V
	pos       int
}

// tarjanSCC computes net's strongly connected components via Tarjan's
// algorithm, using Forward adjacency and an explicit stack so arbitrarily
// deep networks never overflow the goroutine stack. The returned slice is
// in completion order: sinks of the condensation graph first, sources
// last.
func tarjanSCC[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) ([][]V, map[V]int) {
	indexOf := make(map[V]int, net.NumVertices())
	lowlink := make(map[V]int, net.NumVertices())
	onStack := make(map[V]bool, net.NumVertices())
	var tstack []V
	var sccs [][]V
	sccOf := make(map[V]int, net.NumVertices())
	counter := 0

	for _, start := range net.Vertices() {
		if _, seen := indexOf[start]; seen {
			continue
		}

		work := []*tarjanFrame[V]{{v: start, neighbors: neighborsOf(net, start, Forward)}}
		indexOf[start] = counter
		lowlink[start] = counter
		counter++
		tstack = append(tstack, start)
		onStack[start] = true

		for len(work) > 0 {
			top := work[len(work)-1]
			if top.pos < len(top.neighbors) {
				w := top.neighbors[top.pos]
				top.pos++
				if _, seen := indexOf[w]; !seen {
					indexOf[w] = counter
					lowlink[w] = counter
					counter++
					tstack = append(tstack, w)
					onStack[w] = true
					work = append(work, &tarjanFrame[V]{v: w, neighbors: neighborsOf(net, w, Forward)})
				} else if onStack[w] && indexOf[w] < lowlink[top.v] {
					lowlink[top.v] = indexOf[w]
				}
				continue
			}

			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1]
				if lowlink[top.v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[top.v]
				}
			}
			if lowlink[top.v] == indexOf[top.v] {
				var scc []V
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					sccOf[w] = len(sccs)
					scc = append(scc, w)
					if w == top.v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}
	return sccs, sccOf
}
