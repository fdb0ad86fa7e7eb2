package reachability

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/chronet/component"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

// item pairs a vertex with its BFS depth.
type item[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V cmp.Ordered, E edge.Edge[V, E]] struct {
	net     *network.Network[V, E]
	opts    Options[V]
	queue   []item[V]
	visited map[V]bool
	result  *component.Component[V]
	stopped bool
}

// BFS walks net from source in the direction given by WithDirection
// (Forward by default), calling OnEnqueue/OnDequeue/OnVisit as configured,
// and returns the set of vertices visited. Returning false from OnVisit
// stops the traversal immediately; vertices visited before the stop are
// still included in the result.
//
// Returns ErrVertexNotFound if source is not one of net's vertices, or
// ErrOptionViolation if an Option was invalid.
func BFS[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], source V, opts ...Option[V]) (*component.Component[V], error) {
	o := defaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if net == nil || !net.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	w := &walker[V, E]{
		net:     net,
		opts:    o,
		visited: make(map[V]bool, net.NumVertices()),
		result:  component.NewComponent[V](),
	}
	w.enqueue(source, 0)
	w.loop()

	return w.result, nil
}

// enqueue marks v visited, calls OnEnqueue, and adds it to the queue.
func (w *walker[V, E]) enqueue(v V, depth int) {
	w.visited[v] = true
	w.opts.OnEnqueue(v, depth)
	w.queue = append(w.queue, item[V]{v: v, depth: depth})
}

// loop processes the queue until it is empty or a visitor stops it.
func (w *walker[V, E]) loop() {
	for len(w.queue) > 0 && !w.stopped {
		it := w.dequeue()
		if !w.visit(it) {
			return
		}
		w.enqueueNeighbors(it)
	}
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker[V, E]) dequeue() item[V] {
	it := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(it.v, it.depth)
	return it
}

// visit records the vertex in the result and calls OnVisit. A false return
// from OnVisit stops further expansion.
func (w *walker[V, E]) visit(it item[V]) bool {
	w.result.Insert(it.v)
	if !w.opts.OnVisit(it.v, it.depth) {
		w.stopped = true
		return false
	}
	return true
}

// enqueueNeighbors enumerates it.v's neighbors under the configured
// Direction and enqueues each unseen one, honoring MaxDepth.
func (w *walker[V, E]) enqueueNeighbors(it item[V]) {
	nextDepth := it.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, n := range neighborsOf(w.net, it.v, w.opts.Direction) {
		if !w.visited[n] {
			w.enqueue(n, nextDepth)
		}
	}
}

// neighborsOf returns it.v's sorted, deduplicated neighbor set under dir:
// Forward walks out-edges to mutated vertices, Reverse walks in-edges to
// mutator vertices, Undirected walks both to every other incident vertex.
func neighborsOf[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], v V, dir Direction) []V {
	var verts []V
	switch dir {
	case Forward:
		for _, e := range net.OutEdges(v) {
			verts = append(verts, without(e.MutatedVerts(), v)...)
		}
	case Reverse:
		for _, e := range net.InEdges(v) {
			verts = append(verts, without(e.MutatorVerts(), v)...)
		}
	case Undirected:
		for _, e := range net.OutEdges(v) {
			verts = append(verts, without(e.IncidentVerts(), v)...)
		}
		for _, e := range net.InEdges(v) {
			verts = append(verts, without(e.IncidentVerts(), v)...)
		}
	}
	slices.Sort(verts)
	return slices.Compact(verts)
}

// without returns vs (already sorted, deduplicated) with v removed.
func without[V cmp.Ordered](vs []V, v V) []V {
	out := make([]V, 0, len(vs))
	for _, x := range vs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
