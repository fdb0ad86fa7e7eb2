// Package adjacency defines the temporal-adjacency policy: the pluggable
// rule answering "how long does an event's effect linger at a mutated
// vertex" that every temporal-reachability operation in eventgraph and
// reachability is threaded through as a value.
//
// Four policies are provided, matching spec's table in spec.md §4.3: Simple
// (infinite linger), LimitedWaitingTime (a fixed window Δ), Exponential (a
// continuously-distributed linger drawn from gonum/stat/distuv), and
// Geometric (a discretely-distributed linger sampled by inverse CDF). The
// exponential and geometric draws are deterministic functions of
// (seed, event, vertex): every call reseeds its random source from a hash
// of those three values rather than holding any mutable generator state,
// so two independent queries about the same (event, vertex) always observe
// the same linger. That determinism is what makes temporal reachability
// (and the out-cluster/in-cluster duality built on top of it) well-defined.
package adjacency
