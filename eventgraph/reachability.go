package eventgraph

import (
	"cmp"

	"github.com/katalvlaran/chronet/adjacency"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/network"
)

// IsReachable reports whether dst is reachable at time t1 starting from src
// at time t0: it builds the self-loop event (src, src, t0, t0), computes
// its out-cluster, and checks coverage of (dst, t1). Always false when
// t1 < t0.
func IsReachable[V cmp.Ordered, T tnum.Real, E edge.Temporal[V, T, E, S], S any, Adj adjacency.Policy[V, T, E]](net *network.Network[V, E], adj Adj, selfLoop func(V, T) E, src V, t0 T, dst V, t1 T) bool {
	if t1 < t0 {
		return false
	}
	cluster := OutCluster[V, T, E, S, Adj](net, adj, selfLoop(src, t0))
	return cluster.Covers(dst, t1)
}
