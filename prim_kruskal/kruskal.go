package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/ipq"
	"github.com/katalvlaran/spantree/unionfind"
)

// KruskalResult is a minimum spanning forest built by Kruskal.
type KruskalResult struct {
	// Edges are the accepted edges in acceptance order (non-decreasing weight).
	Edges []core.Edge

	// Weight is the total weight of Edges.
	Weight int64

	// Rejected counts extracted edges that would have closed a cycle.
	Rejected int

	// Components is the final partition of the vertices.
	Components unionfind.DisjointSet
}

// Kruskal computes a minimum spanning tree of g.
//
// Steps:
//  1. Heapify edge ids 1..E keyed by weight, bottom-up in O(E).
//  2. MakeSet every vertex.
//  3. Extract the lightest edge; if its endpoints have different roots,
//     accept it and Union the roots, otherwise reject it.
//  4. Stop at V-1 accepted edges or when the heap is empty.
//
// If the heap empties first the graph is disconnected: the partial forest
// is returned together with an error wrapping ErrDisconnected. With k
// components the forest has exactly V-k edges.
//
// Errors: ErrGraphNil, ErrDisconnected, and any error of the DisjointSet.
// Complexity: O(E log E) heap work plus the union-find cost, which is
// O(V) per FindSet for the default Forest.
func Kruskal(g *core.Graph, opts ...Option) (*KruskalResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Order()
	edges := g.Edges()
	pq, err := ipq.Heapify(len(edges), ipq.Func[int64](func(id int) int64 { return edges[id-1].Weight }))
	if err != nil {
		return nil, err
	}
	ds, err := o.NewDisjointSet(n)
	if err != nil {
		return nil, err
	}
	for v := 1; v <= n; v++ {
		if err = ds.MakeSet(v); err != nil {
			return nil, err
		}
	}

	res := &KruskalResult{Edges: make([]core.Edge, 0, n-1), Components: ds}
	for len(res.Edges) < n-1 && !pq.IsEmpty() {
		e := edges[pq.ExtractMin()-1]
		r1, r2 := ds.FindSet(e.U), ds.FindSet(e.V)
		if r1 == r2 {
			res.Rejected++
			if o.OnReject != nil {
				o.OnReject(e)
			}
			continue
		}
		if err = ds.Union(r1, r2); err != nil {
			return res, err
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
		if o.OnAccept != nil {
			o.OnAccept(e)
		}
	}

	if len(res.Edges) < n-1 {
		return res, fmt.Errorf("%w: found %d of %d edges", ErrDisconnected, len(res.Edges), n-1)
	}

	return res, nil
}

// Sets returns the vertex sets of the forest, ordered by smallest member.
func (r *KruskalResult) Sets() [][]int {
	return unionfind.Sets(r.Components)
}
