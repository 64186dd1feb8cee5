// Package spantree computes minimum spanning trees, shortest-path trees and
// traversals over weighted undirected graphs.
//
// What is in the box?
//
//   - core: immutable Graph in CSR form, vertices 1..V, 2E adjacency entries
//   - ipq: indexed binary min-heap with decrease-key over borrowed keys
//   - unionfind: naive disjoint-set forest, plus a compressed variant
//   - dfs, bfs: iterative depth-first search, cycle finding, breadth-first search
//   - prim_kruskal: Prim (dist-negation) and Kruskal (heapified edges)
//   - dijkstra: single-source shortest paths
//   - edgelist: "V E" + "u v w" text loader and writer
//   - format: letter-labelled text output of graphs and results
//   - builder: deterministic graph generators for tests and benchmarks
//
// The command cmd/spantree wires all of them into a CLI.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    D──1──C
//
// has the minimum spanning tree A-B, C-D, B-C of weight 4, and the
// shortest path A→D runs A, B, C, D with length 4.
//
//	go get github.com/katalvlaran/spantree
package spantree
