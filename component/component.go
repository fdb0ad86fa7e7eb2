package component

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/chronet/internal/hll"
	"github.com/katalvlaran/chronet/internal/xhash"
)

// Component is an exact, sorted, deduplicated set of vertices — the result
// of a static reachability query (a weak component, an in/out component,
// a BFS visitation set).
type Component[V cmp.Ordered] struct {
	verts []V
}

// NewComponent returns a Component containing the given vertices.
func NewComponent[V cmp.Ordered](verts ...V) *Component[V] {
	c := &Component[V]{}
	for _, v := range verts {
		c.Insert(v)
	}
	return c
}

// Insert adds v to the component if not already present.
func (c *Component[V]) Insert(v V) {
	idx, ok := slices.BinarySearch(c.verts, v)
	if ok {
		return
	}
	c.verts = slices.Insert(c.verts, idx, v)
}

// Merge folds other's vertices into c.
func (c *Component[V]) Merge(other *Component[V]) {
	if other == nil {
		return
	}
	for _, v := range other.verts {
		c.Insert(v)
	}
}

// Contains reports whether v is in the component.
func (c *Component[V]) Contains(v V) bool {
	_, ok := slices.BinarySearch(c.verts, v)
	return ok
}

// Size returns the number of vertices in the component.
func (c *Component[V]) Size() int { return len(c.verts) }

// Slice returns the component's vertices, sorted.
func (c *Component[V]) Slice() []V { return slices.Clone(c.verts) }

// ForEach calls fn for every vertex in sorted order, stopping early if fn
// returns false.
func (c *Component[V]) ForEach(fn func(V) bool) {
	for _, v := range c.verts {
		if !fn(v) {
			return
		}
	}
}

// ComponentSketch is a HyperLogLog-estimated mirror of Component, used when
// materialising an exact vertex set would be too expensive.
type ComponentSketch[V cmp.Ordered] struct {
	sketch hll.Sketch
}

// NewComponentSketch returns an empty ComponentSketch.
func NewComponentSketch[V cmp.Ordered]() *ComponentSketch[V] {
	return &ComponentSketch[V]{}
}

// Insert records v's presence in the sketch.
func (c *ComponentSketch[V]) Insert(v V) {
	c.sketch.Insert(xhash.Of(v))
}

// Merge folds other's sketch into c.
func (c *ComponentSketch[V]) Merge(other *ComponentSketch[V]) {
	if other == nil {
		return
	}
	c.sketch.Merge(&other.sketch)
}

// SizeEstimate returns the estimated number of distinct vertices inserted.
func (c *ComponentSketch[V]) SizeEstimate() float64 {
	return c.sketch.Estimate()
}
