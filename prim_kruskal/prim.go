package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/ipq"
)

// PrimResult is the minimum spanning tree of the component containing Source.
// Per-vertex slices are indexed by vertex id, index 0 unused.
type PrimResult struct {
	// Source is the root of the tree.
	Source int

	// Parent is the tree predecessor of each vertex; core.NoVertex for the
	// source and for vertices outside its component.
	Parent []int

	// Dist is the weight of the edge connecting each vertex to its parent,
	// 0 for the source and core.Infinity for unreached vertices.
	Dist []int64

	// Order lists vertices in the order they were settled.
	Order []int

	// Weight is the total weight of the tree.
	Weight int64
}

// Prim grows a minimum spanning tree from source over g.
//
// dist doubles as the heap key and as the settled mark: when a vertex is
// extracted its dist is negated in place, so the relaxation test w < dist[u]
// can never admit it again (weights are non-negative). A zero dist stays
// zero, which is also never above a non-negative weight.
//
// Vertices in other components are left with Parent == core.NoVertex and
// Dist == core.Infinity; that is not an error (see PrimResult.Spanning).
//
// Errors: ErrGraphNil, ErrSourceNotFound.
// Complexity: O((V + E) log V) time, O(V) memory.
func Prim(g *core.Graph, source int, opts ...Option) (*PrimResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Order()
	dist := make([]int64, n+1)
	parent := make([]int, n+1)
	for v := range dist {
		dist[v] = core.Infinity
	}
	pq, err := ipq.New(n, ipq.Slice[int64](dist))
	if err != nil {
		return nil, err
	}

	res := &PrimResult{Source: source, Parent: parent, Dist: dist, Order: make([]int, 0, n)}
	dist[source] = 0
	if err = pq.Insert(source); err != nil {
		return nil, err
	}

	for !pq.IsEmpty() {
		v := pq.ExtractMin()
		res.Weight += dist[v]
		res.Order = append(res.Order, v)
		if o.OnSettle != nil {
			o.OnSettle(v, parent[v], dist[v])
		}
		dist[v] = -dist[v]

		for _, nb := range g.Neighbors(v) {
			u, w := nb.Vertex, nb.Weight
			if w >= dist[u] {
				continue
			}
			dist[u] = w
			parent[u] = v
			if pq.Contains(u) {
				err = pq.Decreased(u)
			} else {
				err = pq.Insert(u)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	// Undo the settled mark so Dist reads as edge weights.
	for _, v := range res.Order {
		dist[v] = -dist[v]
	}

	return res, nil
}

// Unreached returns the vertices outside the source's component, ascending.
func (r *PrimResult) Unreached() []int {
	var out []int
	for v := 1; v < len(r.Dist); v++ {
		if r.Dist[v] == core.Infinity {
			out = append(out, v)
		}
	}

	return out
}

// Spanning reports whether every vertex was reached.
func (r *PrimResult) Spanning() bool {
	return len(r.Order) == len(r.Dist)-1
}

// TreeEdges returns the tree as (parent, child, weight) edges in settle order.
func (r *PrimResult) TreeEdges() []core.Edge {
	out := make([]core.Edge, 0, len(r.Order))
	for _, v := range r.Order {
		if r.Parent[v] == core.NoVertex {
			continue
		}
		out = append(out, core.Edge{U: r.Parent[v], V: v, Weight: r.Dist[v]})
	}

	return out
}
