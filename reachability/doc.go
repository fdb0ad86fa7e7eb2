// Package reachability implements the static-reachability engine: a
// generic, direction-aware BFS primitive; Kahn's-algorithm topological
// sort generalised to hyperedge indegree; SCC-aware in/out static
// components with a DAG fast path and a non-recursive Tarjan fallback;
// disjoint-set-union weak/connected components; reachability, shortest-path
// level, and bipartite queries built on BFS; and the Erdős–Gallai and
// Kleitman–Wang degree-sequence feasibility tests.
//
// The BFS primitive, its functional-option configuration, and the
// iterative, explicit-stack discipline used by the Tarjan implementation
// are grounded on the teacher library's bfs and dfs packages — the
// hookable-options shape and the "never recurse" stack discipline carry
// over directly; the graph algorithms themselves are new.
package reachability
