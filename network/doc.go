// Package network implements Network, the immutable indexed container
// every reachability and event-graph operation in this module queries.
//
// A Network is parameterised on exactly one edge variant from package edge
// and stores, per spec.md §3.3: a cause-ordered deduplicated edge list, an
// effect-ordered copy, a deduplicated vertex list, and per-vertex
// out/in-adjacency maps built from those two orderings. Networks are
// value-typed: every combinator (WithEdges, WithoutVertices, GraphUnion,
// the two induced-subgraph forms) returns a new Network rather than
// mutating the receiver, grounded on the construction contract the teacher
// library's adjacency list builder already follows (sort once at
// construction time, binary-search at query time).
package network
