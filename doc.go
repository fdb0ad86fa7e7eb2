// Package chronet models temporal networks: collections of timestamped
// events between vertices, together with the adjacency policies, cluster
// computations, and event-graph operations needed to answer reachability
// questions over them.
//
// What is chronet?
//
//	A generic, immutable-by-construction library that brings together:
//
//	  - Edge algebra: directed/undirected, dyadic/hyper, static/temporal
//	    edge variants, all satisfying a common set of interfaces
//	  - Networks: an indexed, sorted collection of edges of one variant,
//	    built once and queried by vertex or by cause/effect order
//	  - Reachability: hookable BFS, SCC-aware out/in/weak components,
//	    topological sort, and bipartite/degree-sequence queries
//	  - Adjacency policies: how long an event keeps a vertex "reachable"
//	    after it happens — simple, bounded-waiting, or randomized linger
//	  - Event graphs: successor/predecessor enumeration, temporal
//	    clusters (exact and HyperLogLog-estimated), and static-projection
//	    timelines over the implicit graph of events
//
// Why chronet?
//
//   - Edge-variant polymorphic — every algorithm is written once against
//     the edge.Edge/edge.Temporal interfaces, not against one concrete type
//   - Iterative, not recursive — traversals use explicit stacks/queues so
//     they scale to event graphs with millions of nodes
//   - Extensible — attach OnVisit/OnEnqueue/OnDequeue hooks to any
//     traversal for your own instrumentation
//   - Pure Go generics — no reflection, no code generation
//
// Packages:
//
//	edge/         — edge variants and the Edge/Static/Temporal interfaces
//	interval/     — coalescing sets of [start, end] ranges over an ordered type
//	network/      — the immutable indexed edge collection
//	adjacency/    — temporal-adjacency policies (Simple, LimitedWaitingTime,
//	                Exponential, Geometric)
//	component/    — Component/ComponentSketch and their temporal counterparts
//	reachability/ — BFS, SCC/DAG components, topological sort, queries
//	eventgraph/   — successors/predecessors, temporal clusters, reachability,
//	                and static-projection views over the implicit event graph
//
// See each package's example_test.go for small runnable examples, and
// DESIGN.md for the design rationale.
package chronet
