package eventgraph

// edgeLike is the minimal identity contract eventSet and the materialised
// event-graph index need: a deterministic hash plus an exact equality
// check to disambiguate collisions within a bucket.
type edgeLike[E any] interface {
	Hash() uint64
	Equal(E) bool
}

// eventSet is a hash-bucketed membership set over event values that, like
// every concrete edge type, are not necessarily comparable with ==.
// Mirrors the buildEdgeIndex/indexOf pattern reachability uses for the
// same reason.
type eventSet[E edgeLike[E]] struct {
	buckets map[uint64][]E
}

func newEventSet[E edgeLike[E]]() *eventSet[E] {
	return &eventSet[E]{buckets: make(map[uint64][]E)}
}

func (s *eventSet[E]) contains(e E) bool {
	for _, c := range s.buckets[e.Hash()] {
		if c.Equal(e) {
			return true
		}
	}
	return false
}

func (s *eventSet[E]) insert(e E) {
	s.buckets[e.Hash()] = append(s.buckets[e.Hash()], e)
}

// buildEventIndex maps each event's hash to the positions in events
// sharing it, so a later event value can be resolved back to its index
// in events without requiring E to be a map key type.
func buildEventIndex[E edgeLike[E]](events []E) map[uint64][]int {
	idx := make(map[uint64][]int, len(events))
	for i, e := range events {
		idx[e.Hash()] = append(idx[e.Hash()], i)
	}
	return idx
}

// eventIndexOf resolves e to its position in events using idx. e is
// always a value that originated from events itself, so a match always
// exists.
func eventIndexOf[E edgeLike[E]](events []E, idx map[uint64][]int, e E) int {
	for _, i := range idx[e.Hash()] {
		if events[i].Equal(e) {
			return i
		}
	}
	panic("eventgraph: event not found in index")
}
