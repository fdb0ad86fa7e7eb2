package edge

import (
	"cmp"
	"slices"
)

// canonSlice returns a sorted, deduplicated copy of vs. Hyperedges store
// their endpoint sets this way so that two hyperedges built from endpoint
// lists differing only in order or duplicates compare and hash identically.
func canonSlice[V cmp.Ordered](vs []V) []V {
	out := slices.Clone(vs)
	slices.Sort(out)
	return slices.Compact(out)
}

// unionSorted returns the sorted, deduplicated union of two already-sorted,
// already-deduplicated slices.
func unionSorted[V cmp.Ordered](a, b []V) []V {
	out := make([]V, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// containsSorted reports whether v is present in the sorted slice vs.
func containsSorted[V cmp.Ordered](vs []V, v V) bool {
	_, ok := slices.BinarySearch(vs, v)
	return ok
}

// compareSlices lexicographically compares two sorted vertex slices,
// shorter-is-less when one is a prefix of the other.
func compareSlices[V cmp.Ordered](a, b []V) int {
	return slices.Compare(a, b)
}
