// Package eventgraph layers the event-graph and temporal-reachability
// operations of spec.md §4.6 on top of a temporal network and its
// adjacency policy: successor/predecessor enumeration over the implicit
// event graph, its optional explicit materialisation, out/in clusters
// (exact and HyperLogLog-estimated), temporal weak components, temporal
// reachability, and the static-projection/timeline views.
//
// Nothing here has a teacher analogue — the teacher library is purely
// static — so the package is built fresh, but it leans on reachability
// for every "compute this for every event at once" operation: it
// materialises the implicit event graph as a small int-indexed
// network.Network and hands that straight to reachability's SCC-aware
// DAG/Tarjan dispatch rather than re-deriving it.
package eventgraph
