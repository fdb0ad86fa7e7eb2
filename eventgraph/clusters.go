package eventgraph

import (
	"cmp"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/component"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/network"
	"github.com/katalvlaran/chronet/reachability"
)

// item is one entry in a cluster BFS's frontier: an event and its depth
// from the seed.
type item[E any] struct {
	e     E
	depth int
}

// OutCluster runs forward BFS over the implicit event graph starting from
// seed, aggregating every visited event (seed included) into a
// TemporalCluster. opts wires the same OnEnqueue/OnDequeue/OnVisit
// instrumentation hooks reachability.BFS exposes over vertices; OnVisit
// returning false stops the traversal immediately.
func OutCluster[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, seed E, opts ...Option[E]) *component.TemporalCluster[V, T, E, Adj] {
	o := resolveOptions(opts)
	cluster := component.NewTemporalCluster[V, T, E, Adj](adj)
	visited := newEventSet[E]()
	queue := []item[E]{{e: seed, depth: 0}}
	visited.insert(seed)
	if o.OnEnqueue != nil {
		o.OnEnqueue(seed, 0)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if o.OnDequeue != nil {
			o.OnDequeue(cur.e, cur.depth)
		}
		if o.OnVisit != nil && !o.OnVisit(cur.e, cur.depth) {
			cluster.Insert(cur.e)
			break
		}
		cluster.Insert(cur.e)

		for _, s := range Successors[V, T, E, S, Adj](net, adj, cur.e, false) {
			if visited.contains(s) {
				continue
			}
			visited.insert(s)
			queue = append(queue, item[E]{e: s, depth: cur.depth + 1})
			if o.OnEnqueue != nil {
				o.OnEnqueue(s, cur.depth+1)
			}
		}
	}
	return cluster
}

// InCluster is OutCluster's reversed-direction dual: backward BFS over
// Predecessors.
func InCluster[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, seed E, opts ...Option[E]) *component.TemporalCluster[V, T, E, Adj] {
	o := resolveOptions(opts)
	cluster := component.NewTemporalCluster[V, T, E, Adj](adj)
	visited := newEventSet[E]()
	queue := []item[E]{{e: seed, depth: 0}}
	visited.insert(seed)
	if o.OnEnqueue != nil {
		o.OnEnqueue(seed, 0)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if o.OnDequeue != nil {
			o.OnDequeue(cur.e, cur.depth)
		}
		if o.OnVisit != nil && !o.OnVisit(cur.e, cur.depth) {
			cluster.Insert(cur.e)
			break
		}
		cluster.Insert(cur.e)

		for _, p := range Predecessors[V, T, E, S, Adj](net, adj, cur.e, false) {
			if visited.contains(p) {
				continue
			}
			visited.insert(p)
			queue = append(queue, item[E]{e: p, depth: cur.depth + 1})
			if o.OnEnqueue != nil {
				o.OnEnqueue(p, cur.depth+1)
			}
		}
	}
	return cluster
}

// OutClusterFromVertex reduces the vertex-time seed (v, t) to the
// event-seeded form by representing it as a self-loop event (v, v, t, t),
// built by selfLoop since eventgraph is abstract over which concrete
// temporal edge type is in use.
func OutClusterFromVertex[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, selfLoop func(V, T) E, v V, t T, opts ...Option[E]) *component.TemporalCluster[V, T, E, Adj] {
	return OutCluster[V, T, E, S, Adj](net, adj, selfLoop(v, t), opts...)
}

// InClusterFromVertex is OutClusterFromVertex's reversed dual.
func InClusterFromVertex[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, selfLoop func(V, T) E, v V, t T, opts ...Option[E]) *component.TemporalCluster[V, T, E, Adj] {
	return InCluster[V, T, E, S, Adj](net, adj, selfLoop(v, t), opts...)
}

// OutClusters computes OutCluster for every event in net at once,
// positionally aligned with net.EdgesCause(). It materialises the
// implicit event graph once and delegates the SCC-aware DAG/Tarjan
// dispatch to reachability.OutComponents rather than re-deriving it over
// events. Unlike OutCluster, it runs a dynamic-programming pass rather
// than a per-seed BFS, so it takes no visitor hooks.
func OutClusters[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj) []*component.TemporalCluster[V, T, E, Adj] {
	events, graph := materialize[V, T, E, S, Adj](net, adj)
	comps := reachability.OutComponents(graph)
	return clustersFromComponents[V, T, E, S, Adj](adj, events, comps)
}

// InClusters is OutClusters's reversed-direction dual.
func InClusters[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj) []*component.TemporalCluster[V, T, E, Adj] {
	events, graph := materialize[V, T, E, S, Adj](net, adj)
	comps := reachability.InComponents(graph)
	return clustersFromComponents[V, T, E, S, Adj](adj, events, comps)
}

func clustersFromComponents[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](adj Adj, events []E, comps map[int]*component.Component[int]) []*component.TemporalCluster[V, T, E, Adj] {
	result := make([]*component.TemporalCluster[V, T, E, Adj], len(events))
	for i := range events {
		c := component.NewTemporalCluster[V, T, E, Adj](adj)
		for _, j := range comps[i].Slice() {
			c.Insert(events[j])
		}
		result[i] = c
	}
	return result
}

// OutClusterSketch is OutCluster's HyperLogLog-estimated counterpart,
// quantising vertex-time coverage at resolution dt.
func OutClusterSketch[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, seed E, dt T, opts ...Option[E]) *component.TemporalClusterSketch[V, T, E, Adj] {
	o := resolveOptions(opts)
	sketch := component.NewTemporalClusterSketch[V, T, E, Adj](adj, dt)
	visited := newEventSet[E]()
	queue := []item[E]{{e: seed, depth: 0}}
	visited.insert(seed)
	if o.OnEnqueue != nil {
		o.OnEnqueue(seed, 0)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if o.OnDequeue != nil {
			o.OnDequeue(cur.e, cur.depth)
		}
		if o.OnVisit != nil && !o.OnVisit(cur.e, cur.depth) {
			sketch.Insert(cur.e)
			break
		}
		sketch.Insert(cur.e)

		for _, s := range Successors[V, T, E, S, Adj](net, adj, cur.e, false) {
			if visited.contains(s) {
				continue
			}
			visited.insert(s)
			queue = append(queue, item[E]{e: s, depth: cur.depth + 1})
			if o.OnEnqueue != nil {
				o.OnEnqueue(s, cur.depth+1)
			}
		}
	}
	return sketch
}

// InClusterSketch is OutClusterSketch's reversed-direction dual.
func InClusterSketch[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, seed E, dt T, opts ...Option[E]) *component.TemporalClusterSketch[V, T, E, Adj] {
	o := resolveOptions(opts)
	sketch := component.NewTemporalClusterSketch[V, T, E, Adj](adj, dt)
	visited := newEventSet[E]()
	queue := []item[E]{{e: seed, depth: 0}}
	visited.insert(seed)
	if o.OnEnqueue != nil {
		o.OnEnqueue(seed, 0)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if o.OnDequeue != nil {
			o.OnDequeue(cur.e, cur.depth)
		}
		if o.OnVisit != nil && !o.OnVisit(cur.e, cur.depth) {
			sketch.Insert(cur.e)
			break
		}
		sketch.Insert(cur.e)

		for _, p := range Predecessors[V, T, E, S, Adj](net, adj, cur.e, false) {
			if visited.contains(p) {
				continue
			}
			visited.insert(p)
			queue = append(queue, item[E]{e: p, depth: cur.depth + 1})
			if o.OnEnqueue != nil {
				o.OnEnqueue(p, cur.depth+1)
			}
		}
	}
	return sketch
}

// OutClusterSketches computes OutClusterSketch for every event in net at
// once, positionally aligned with net.EdgesCause().
func OutClusterSketches[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, dt T) []*component.TemporalClusterSketch[V, T, E, Adj] {
	events, graph := materialize[V, T, E, S, Adj](net, adj)
	comps := reachability.OutComponents(graph)
	return sketchesFromComponents[V, T, E, S, Adj](adj, dt, events, comps)
}

// InClusterSketches is OutClusterSketches's reversed-direction dual.
func InClusterSketches[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, dt T) []*component.TemporalClusterSketch[V, T, E, Adj] {
	events, graph := materialize[V, T, E, S, Adj](net, adj)
	comps := reachability.InComponents(graph)
	return sketchesFromComponents[V, T, E, S, Adj](adj, dt, events, comps)
}

func sketchesFromComponents[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](adj Adj, dt T, events []E, comps map[int]*component.Component[int]) []*component.TemporalClusterSketch[V, T, E, Adj] {
	result := make([]*component.TemporalClusterSketch[V, T, E, Adj], len(events))
	for i := range events {
		c := component.NewTemporalClusterSketch[V, T, E, Adj](adj, dt)
		for _, j := range comps[i].Slice() {
			c.Insert(events[j])
		}
		result[i] = c
	}
	return result
}

// TemporalWeakComponents computes net's weakly connected components under
// adj by running DSU over the implicit event graph treated as undirected:
// materialise once and delegate to reachability.WeakComponents.
func TemporalWeakComponents[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj) [][]E {
	events, graph := materialize[V, T, E, S, Adj](net, adj)
	comps := reachability.WeakComponents(graph)

	result := make([][]E, len(comps))
	for i, c := range comps {
		es := make([]E, 0, c.Size())
		for _, j := range c.Slice() {
			es = append(es, events[j])
		}
		result[i] = es
	}
	return result
}
