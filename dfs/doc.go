// Package dfs implements depth-first search and undirected cycle detection
// on a core.Graph.
//
// DFS walks from a start vertex in adjacency order (reverse insertion order
// of edges, see core.Graph.Neighbors) and records:
//
//   - Order: pre-order discovery sequence
//   - PostOrder: finishing sequence
//   - Depth and Parent: the DFS tree, indexed by vertex id
//
// The walk is iterative. Each stack frame keeps its own scan position in the
// adjacency range of its vertex, so the discovery order is exactly that of
// the recursive formulation while depth is bounded only by memory.
//
// Options:
//
//   - WithContext: cancellation, checked once per step
//   - WithOnVisit / WithOnExit: pre- and post-order hooks; an error aborts
//   - WithMaxDepth: do not descend below a depth
//   - WithFilterNeighbor: skip adjacency entries, counted in SkippedNeighbors
//   - WithFullTraversal: restart from every undiscovered vertex (DFS forest)
//
// FindCycle reports one cycle of an undirected multigraph or nil for a forest.
// Self-loops and parallel edges count as cycles. The MST packages use it in
// tests to check that a result is acyclic.
//
// Complexity: O(V + E) time, O(V) memory for both DFS and FindCycle.
package dfs
