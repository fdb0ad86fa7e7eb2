package reachability

import "fmt"

// Direction selects which adjacency BFS walks.
type Direction int

const (
	// Forward follows out-edges: from v, step to v's mutated vertices.
	Forward Direction = iota
	// Reverse follows in-edges: from v, step to v's mutator vertices.
	Reverse
	// Undirected follows both out- and in-edges, stepping to every other
	// incident vertex; each neighbor is enqueued at most once.
	Undirected
)

// Option configures BFS behavior via functional arguments. If an Option is
// invalid (a negative MaxDepth), it is recorded internally and surfaced as
// ErrOptionViolation when BFS runs.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize a BFS traversal.
type Options[V comparable] struct {
	// Direction selects the adjacency BFS walks. Defaults to Forward.
	Direction Direction

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v V, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v V, depth int)

	// OnVisit is called when visiting a vertex. Returning false stops the
	// traversal immediately, before that vertex's neighbors are enqueued.
	OnVisit func(v V, depth int) bool

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 disables any
	// depth limit.
	MaxDepth int

	err error
}

// defaultOptions returns an Options with no-op hooks, Forward direction,
// and no depth limit.
func defaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Direction: Forward,
		OnEnqueue: func(V, int) {},
		OnDequeue: func(V, int) {},
		OnVisit:   func(V, int) bool { return true },
		MaxDepth:  0,
	}
}

// WithDirection sets the adjacency BFS walks.
func WithDirection[V comparable](d Direction) Option[V] {
	return func(o *Options[V]) { o.Direction = d }
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit. Returning false from fn
// stops the BFS immediately.
func WithOnVisit[V comparable](fn func(v V, depth int) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option, surfaced as ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
