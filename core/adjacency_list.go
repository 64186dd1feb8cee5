package core

import "fmt"

// NewGraph builds a Graph with vertices 1..order from the given undirected edges.
//
// Steps:
//  1. Validate 1 ≤ order ≤ MaxVertices and every edge (endpoints in range, weight ≥ 0).
//  2. Count the degree of each vertex (a self-loop counts twice).
//  3. Prefix-sum the degrees into offsets.
//  4. Fill each vertex range from its end towards its start, walking the edges
//     in input order, so the last inserted neighbor ends up first.
//
// The edges slice is copied; the caller may reuse it.
// No partial graph is ever returned: on error the result is nil.
//
// Complexity: O(V + E) time, O(V + E) memory.
func NewGraph(order int, edges []Edge) (*Graph, error) {
	// 1. Validate input.
	if order < 1 || order > MaxVertices {
		return nil, fmt.Errorf("%w: got %d, want [1,%d]", ErrBadVertexCount, order, MaxVertices)
	}
	for i, e := range edges {
		if e.U < 1 || e.U > order || e.V < 1 || e.V > order {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with V=%d", ErrVertexOutOfRange, i+1, e.U, e.V, order)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) weight=%d", ErrNegativeWeight, i+1, e.U, e.V, e.Weight)
		}
	}

	// 2. Degree count.
	degree := make([]int, order+1)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}

	// 3. Offsets: offsets[v+1] - offsets[v] == degree[v].
	offsets := make([]int, order+2)
	for v := 1; v <= order; v++ {
		offsets[v+1] = offsets[v] + degree[v]
	}

	// 4. Fill from the back of each range so the order is reversed.
	cursor := make([]int, order+1)
	copy(cursor, offsets[1:order+2])
	adj := make([]Neighbor, 2*len(edges))
	for _, e := range edges {
		cursor[e.U]--
		adj[cursor[e.U]] = Neighbor{Vertex: e.V, Weight: e.Weight}
		cursor[e.V]--
		adj[cursor[e.V]] = Neighbor{Vertex: e.U, Weight: e.Weight}
	}

	own := make([]Edge, len(edges))
	copy(own, edges)

	return &Graph{
		order:   order,
		edges:   own,
		offsets: offsets,
		adj:     adj,
	}, nil
}
