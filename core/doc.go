// Package core provides the immutable, integer-indexed weighted Graph that every
// algorithm in spantree reads from.
//
// The Graph G = (V,E) is built once from a vertex count and a list of
// undirected edges and never changes afterwards:
//
//   - Vertices are the integers 1..V. The value 0 (NoVertex) is reserved as
//     the "absent" marker used by parent arrays, heap positions and
//     disjoint-set slots.
//   - Each input edge (u, v, w) produces two adjacency entries, u→v and v→u,
//     both carrying w. The total number of entries is always 2E.
//   - Adjacency is stored as a flat arena (CSR layout): one []Neighbor of
//     length 2E plus an offsets array, so Neighbors(v) is a sub-slice and no
//     list terminator or nil check is involved.
//   - Within a vertex, neighbors are listed in reverse insertion order: the
//     entry produced by the last input edge comes first.
//
// Errors (returned by NewGraph, never recovered internally):
//
//	ErrBadVertexCount   – V < 1 or V > MaxVertices.
//	ErrVertexOutOfRange – an endpoint outside [1, V].
//	ErrNegativeWeight   – an edge weight below zero.
//
// Complexity:
//
//   - NewGraph: O(V + E) time and memory.
//   - Neighbors, Degree, Edge: O(1).
//
// Concurrency:
//
//	A Graph is read-only after NewGraph returns, so it may be shared freely
//	between algorithm runs (and goroutines) without locking.
package core
