package reachability

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/chronet/component"
	"github.com/katalvlaran/chronet/edge"
	"github.com/katalvlaran/chronet/network"
)

// dsu is a union-find over a fixed vertex set, used to compute weak
// components in a single near-linear pass instead of one BFS per
// component.
type dsu[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newDSU[V comparable](verts []V) *dsu[V] {
	d := &dsu[V]{
		parent: make(map[V]V, len(verts)),
		rank:   make(map[V]int, len(verts)),
	}
	for _, v := range verts {
		d.parent[v] = v
	}
	return d
}

func (d *dsu[V]) find(v V) V {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}
	return root
}

func (d *dsu[V]) union(a, b V) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
}

// WeakComponents partitions net's vertices into maximal sets connected
// when every edge's direction is ignored, using a hyperedge union (all of
// an edge's incident vertices merge into one set). Components are
// returned sorted by their smallest member.
func WeakComponents[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E]) []*component.Component[V] {
	d := newDSU(net.Vertices())
	for _, e := range net.EdgesCause() {
		verts := e.IncidentVerts()
		for i := 1; i < len(verts); i++ {
			d.union(verts[0], verts[i])
		}
	}

	groups := make(map[V]*component.Component[V])
	for _, v := range net.Vertices() {
		root := d.find(v)
		c, ok := groups[root]
		if !ok {
			c = component.NewComponent[V]()
			groups[root] = c
		}
		c.Insert(v)
	}

	out := make([]*component.Component[V], 0, len(groups))
	for _, c := range groups {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *component.Component[V]) int {
		as, bs := a.Slice(), b.Slice()
		if len(as) == 0 || len(bs) == 0 {
			return len(as) - len(bs)
		}
		return cmp.Compare(as[0], bs[0])
	})
	return out
}

// WeakComponentOf returns the single weak component containing v, computed
// with an undirected BFS rather than materialising every component in the
// network.
func WeakComponentOf[V cmp.Ordered, E edge.Edge[V, E]](net *network.Network[V, E], v V) (*component.Component[V], error) {
	return BFS(net, v, WithDirection[V](Undirected))
}
