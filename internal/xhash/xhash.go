// Package xhash provides the hash-combining primitives shared by edge,
// adjacency, and component. All edge and vertex hashing in this module
// ultimately bottoms out in Combine/CombineUnordered so that hyperedge
// hashes are order-independent (spec.md §3.1/§9: "hyperedge hashing... does
// not attempt order-independent hashing over unsorted inputs" — endpoints
// are already canonicalised sorted slices by the time they reach here, so a
// plain linear fold suffices).
package xhash

import "hash/fnv"

// goldenRatio64 is the odd 64-bit constant boost::hash_combine and the
// reference implementation's utils::combine_hash both mix in.
const goldenRatio64 = 0x9E3779B97F4A7C15

// String hashes s with FNV-1a.
func String(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Uint64 hashes a raw uint64, used for integer vertex/time types without
// allocating a string representation.
func Uint64(x uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(x >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Combine folds other into seed, order-dependent. Used for cause/effect
// vertices of directed edges and for the ordered tails/heads accumulation of
// hyperedges (each endpoint combined in sorted order, which makes the
// overall hash a deterministic function of the canonical endpoint sequence).
func Combine(seed, other uint64) uint64 {
	return seed ^ (other + goldenRatio64 + (seed << 6) + (seed >> 2))
}

// CombineUnordered folds a and b together regardless of argument order,
// used for undirected dyadic edges where {u, v} and {v, u} must hash
// identically.
func CombineUnordered(a, b uint64) uint64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return Combine(lo, hi)
}

// Slice folds a sequence of already-hashed endpoint values in order,
// seeded, for hyperedge tails/heads accumulation.
func Slice(seed uint64, hs []uint64) uint64 {
	acc := seed
	for _, h := range hs {
		acc = Combine(acc, h)
	}
	return acc
}
