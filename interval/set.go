package interval

import (
	"sort"

	"github.com/katalvlaran/chronet/internal/tnum"
)

// Pair is a closed interval [Start, End], Start <= End.
type Pair[T tnum.Real] struct {
	Start, End T
}

// Set is a sorted, maximally-merged union of closed intervals over T. The
// zero value is an empty set.
type Set[T tnum.Real] struct {
	ivs []Pair[T]
}

// New returns an empty Set.
func New[T tnum.Real]() *Set[T] {
	return &Set[T]{}
}

// Intervals returns the set's intervals, sorted by Start, with no two
// overlapping or (for integer T) touching.
func (s *Set[T]) Intervals() []Pair[T] {
	out := make([]Pair[T], len(s.ivs))
	copy(out, s.ivs)
	return out
}

// IsEmpty reports whether the set has no intervals.
func (s *Set[T]) IsEmpty() bool {
	return len(s.ivs) == 0
}

// touches reports whether an interval ending at a and one starting at b
// should merge: for integer time types a touching pair like [0,3],[4,7]
// counts as overlapping (there is no time strictly between 3 and 4); for
// floating time types only an actual point of intersection merges.
func touches[T tnum.Real](a, b T) bool {
	if tnum.IsFloatKind[T]() {
		return b <= a
	}
	return b <= a+1
}

// Insert adds [start, end], merging with any interval it overlaps or
// touches. If end < start the arguments are swapped rather than treated as
// an error — a single instant is the degenerate case start == end.
func (s *Set[T]) Insert(start, end T) {
	if end < start {
		start, end = end, start
	}

	// idx is the first interval whose End reaches far enough to touch or
	// overlap [start, end] from the left. Ends are non-decreasing across
	// the sorted slice, so this predicate is monotonic.
	idx := sort.Search(len(s.ivs), func(i int) bool {
		return touches(s.ivs[i].End, start)
	})

	j := idx
	for j < len(s.ivs) && touches(end, s.ivs[j].Start) {
		if s.ivs[j].Start < start {
			start = s.ivs[j].Start
		}
		if s.ivs[j].End > end {
			end = s.ivs[j].End
		}
		j++
	}

	merged := append([]Pair[T]{{Start: start, End: end}}, s.ivs[j:]...)
	s.ivs = append(s.ivs[:idx], merged...)
}

// Merge folds other's intervals into s with a single linear pass over both
// already-sorted sequences, then coalesces any newly-adjacent pairs.
func (s *Set[T]) Merge(other *Set[T]) {
	if other == nil || len(other.ivs) == 0 {
		return
	}
	out := make([]Pair[T], 0, len(s.ivs)+len(other.ivs))
	i, j := 0, 0
	for i < len(s.ivs) && j < len(other.ivs) {
		if s.ivs[i].Start <= other.ivs[j].Start {
			out = append(out, s.ivs[i])
			i++
		} else {
			out = append(out, other.ivs[j])
			j++
		}
	}
	out = append(out, s.ivs[i:]...)
	out = append(out, other.ivs[j:]...)
	s.ivs = coalesce(out)
}

// coalesce merges adjacent/overlapping pairs in a Start-sorted sequence.
func coalesce[T tnum.Real](ivs []Pair[T]) []Pair[T] {
	if len(ivs) == 0 {
		return ivs
	}
	out := make([]Pair[T], 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if touches(cur.End, iv.Start) {
			if iv.End > cur.End {
				cur.End = iv.End
			}
		} else {
			out = append(out, cur)
			cur = iv
		}
	}
	return append(out, cur)
}

// Covers reports whether t lies within some stored interval.
func (s *Set[T]) Covers(t T) bool {
	idx := sort.Search(len(s.ivs), func(i int) bool {
		return s.ivs[i].Start > t
	})
	if idx == 0 {
		return false
	}
	return s.ivs[idx-1].End >= t
}

// Cover returns the measure (total End-Start span) of the union of
// intervals.
func (s *Set[T]) Cover() T {
	var total T
	for _, iv := range s.ivs {
		total += iv.End - iv.Start
	}
	return total
}
