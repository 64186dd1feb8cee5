// File: api.go
// Role: read-only queries over a constructed Graph.
// Policy:
//   - No method mutates the Graph.
//   - Out-of-range arguments yield zero values, never panics.

package core

// Order returns the number of vertices V.
// Complexity: O(1).
func (g *Graph) Order() int { return g.order }

// Size returns the number of input edges E.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// HasVertex reports whether v is a vertex of g, i.e. 1 ≤ v ≤ V.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 1 && v <= g.order }

// Neighbors returns the adjacency entries of v in reverse insertion order.
//
// The returned slice aliases the graph's arena and must be treated as
// read-only; its capacity is clipped so appending to it cannot overwrite
// another vertex's entries. For v outside [1, V] the result is nil.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []Neighbor {
	if !g.HasVertex(v) {
		return nil
	}
	lo, hi := g.offsets[v], g.offsets[v+1]

	return g.adj[lo:hi:hi]
}

// Degree returns the number of adjacency entries of v (a self-loop counts twice).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return g.offsets[v+1] - g.offsets[v]
}

// AdjacencyCount returns the total number of adjacency entries, always 2E.
// Complexity: O(1).
func (g *Graph) AdjacencyCount() int { return len(g.adj) }

// Edge returns input edge i (1-based, in input order).
// ok is false when i is outside [1, E].
// Complexity: O(1).
func (g *Graph) Edge(i int) (e Edge, ok bool) {
	if i < 1 || i > len(g.edges) {
		return Edge{}, false
	}

	return g.edges[i-1], true
}

// Edges returns a copy of the input edges in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Vertices returns the identifiers 1..V in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, g.order)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
