package reachability

import (
	"slices"
	"sort"
)

// IsGraphic reports whether seq is the degree sequence of some simple
// undirected graph, via the Erdős–Gallai theorem: seq is graphic iff its
// sum is even and, for every prefix length k of the sequence sorted
// descending,
//
//	sum(seq[:k]) <= k*(k-1) + sum(min(seq[i], k) for i >= k)
//
// Only prefixes up to the Durfee index (the largest k with seq[k-1] >= k)
// can ever violate the inequality — beyond it the right-hand side grows at
// least as fast as the left — so only those are checked.
func IsGraphic(seq []int) bool {
	n := len(seq)
	sum := 0
	for _, d := range seq {
		if d < 0 {
			return false
		}
		sum += d
	}
	if sum%2 != 0 {
		return false
	}

	sorted := slices.Clone(seq)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	durfee := 0
	for k := 1; k <= n; k++ {
		if sorted[k-1] < k {
			break
		}
		durfee = k
	}

	prefix := 0
	for k := 1; k <= durfee; k++ {
		prefix += sorted[k-1]
		rhs := k * (k - 1)
		for i := k; i < n; i++ {
			rhs += min(sorted[i], k)
		}
		if prefix > rhs {
			return false
		}
	}
	return true
}

// IsDigraphic reports whether pairs is the (out-degree, in-degree)
// sequence of some simple directed graph, via the Kleitman–Wang
// construction: repeatedly take the vertex with the largest remaining
// out-degree a and satisfy it by directing an edge to the a other
// vertices with the largest remaining in-degree (ties broken by larger
// remaining out-degree), failing if fewer than a
// candidates remain or any candidate's in-degree is already exhausted.
// The sequence is digraphic iff this process empties every pair.
func IsDigraphic(pairs [][2]int) bool {
	n := len(pairs)
	ps := make([][2]int, n)
	copy(ps, pairs)

	sumA, sumB := 0, 0
	for _, p := range ps {
		if p[0] < 0 || p[1] < 0 || p[0] > n-1 || p[1] > n-1 {
			return false
		}
		sumA += p[0]
		sumB += p[1]
	}
	if sumA != sumB {
		return false
	}

	for {
		active := false
		maxIdx := -1
		for i, p := range ps {
			if p[0] != 0 || p[1] != 0 {
				active = true
			}
			if maxIdx == -1 || p[0] > ps[maxIdx][0] {
				maxIdx = i
			}
		}
		if !active {
			return true
		}

		a := ps[maxIdx][0]
		if a == 0 {
			return false
		}
		ps[maxIdx][0] = 0

		type candidate struct {
			idx, b, a int
		}
		cands := make([]candidate, 0, n-1)
		for i, p := range ps {
			if i == maxIdx {
				continue
			}
			cands = append(cands, candidate{idx: i, b: p[1], a: p[0]})
		}
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].b != cands[j].b {
				return cands[i].b > cands[j].b
			}
			return cands[i].a > cands[j].a
		})
		if len(cands) < a {
			return false
		}
		for i := 0; i < a; i++ {
			if ps[cands[i].idx][1] == 0 {
				return false
			}
			ps[cands[i].idx][1]--
		}
	}
}
