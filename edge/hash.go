package edge

import (
	"cmp"
	"math"

	"github.com/katalvlaran/chronet/internal/tnum"
	"github.com/katalvlaran/chronet/internal/xhash"
)

func hashUndirectedPair[V cmp.Ordered](a, b V) uint64 {
	return xhash.CombineUnordered(xhash.Of(a), xhash.Of(b))
}

func hashDirectedPair[V cmp.Ordered](tail, head V) uint64 {
	return xhash.Combine(xhash.Of(tail), xhash.Of(head))
}

func hashSortedSlice[V cmp.Ordered](vs []V) uint64 {
	hs := make([]uint64, len(vs))
	for i, v := range vs {
		hs[i] = xhash.Of(v)
	}
	return xhash.Slice(0, hs)
}

func hashUndirectedHyper[V cmp.Ordered](verts []V) uint64 {
	// verts is already canonically sorted, so equal endpoint sets always
	// fold in the same order; no separate unordered combine step needed.
	return hashSortedSlice(verts)
}

func hashDirectedHyper[V cmp.Ordered](tails, heads []V) uint64 {
	return xhash.Combine(hashSortedSlice(tails), hashSortedSlice(heads))
}

// hashTime folds a time value into seed. T is widened to float64 for
// hashing purposes only; this loses no information that matters for a hash
// digest, even though it is not used for equality or ordering.
func hashTime[T tnum.Real](seed uint64, t T) uint64 {
	return xhash.Combine(seed, math.Float64bits(tnum.ToFloat64(t)))
}
