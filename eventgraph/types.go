package eventgraph

// Option configures an Options[E] value. Mirrors reachability.Option's
// functional-option shape, parameterized over the event type instead of
// a vertex type.
type Option[E any] func(*Options[E])

// Options holds the visitor hooks OutCluster/InCluster (and their sketch
// and vertex-seeded variants) call during traversal, so a caller can wire
// its own instrumentation without this package depending on a logging
// library.
type Options[E any] struct {
	// OnEnqueue is called when an event is added to the traversal frontier,
	// with its BFS depth from the seed.
	OnEnqueue func(e E, depth int)

	// OnDequeue is called when an event is taken off the frontier to be
	// inserted into the cluster.
	OnDequeue func(e E, depth int)

	// OnVisit is called just before an event is inserted into the cluster.
	// Returning false stops the traversal immediately, leaving every event
	// visited so far in the cluster.
	OnVisit func(e E, depth int) bool
}

func resolveOptions[E any](opts []Option[E]) *Options[E] {
	o := &Options[E]{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithOnEnqueue sets the OnEnqueue hook.
func WithOnEnqueue[E any](fn func(e E, depth int)) Option[E] {
	return func(o *Options[E]) { o.OnEnqueue = fn }
}

// WithOnDequeue sets the OnDequeue hook.
func WithOnDequeue[E any](fn func(e E, depth int)) Option[E] {
	return func(o *Options[E]) { o.OnDequeue = fn }
}

// WithOnVisit sets the OnVisit hook.
func WithOnVisit[E any](fn func(e E, depth int) bool) Option[E] {
	return func(o *Options[E]) { o.OnVisit = fn }
}
