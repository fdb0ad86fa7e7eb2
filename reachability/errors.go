package reachability

import "errors"

// ErrNotAcyclic is returned by TopologicalSort when the network contains a
// cycle (a hyperedge cycle counts: some vertex's indegree never reaches
// zero).
var ErrNotAcyclic = errors.New("reachability: network is not acyclic")

// ErrNotBipartite is returned by TwoColouring when some edge joins two
// vertices of the same colour, or has fewer than two distinct incident
// vertices.
var ErrNotBipartite = errors.New("reachability: network is not bipartite")

// ErrOptionViolation is returned by BFS when an invalid Option was supplied
// (currently: a negative MaxDepth).
var ErrOptionViolation = errors.New("reachability: invalid option supplied")

// ErrVertexNotFound is returned when a query's source or target vertex is
// absent from the network.
var ErrVertexNotFound = errors.New("reachability: vertex not found")
