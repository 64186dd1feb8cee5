// Package dijkstra computes single-source shortest-path trees on an
// undirected, non-negatively weighted *core.Graph.
//
// Dijkstra(g, source, opts...) returns a Result holding per-vertex Dist and
// Parent arrays and the settle Order. Path reconstruction is available via
// Result.PathTo; Result.Unreached lists vertices in other components.
//
// The priority queue is an ipq.IndexedHeap that borrows the Dist slice as
// its keys, so relaxation writes dist[u] and then calls Decreased(u) instead
// of pushing duplicate entries. The heap never holds more than V ids.
//
// Loop shape: the source is processed directly, then each iteration relaxes
// the current vertex before extracting the next one. Every vertex that ever
// leaves the queue is relaxed, including the last.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Options:
//
//   - WithMaxDistance:      distance cap; farther vertices are reported unreached.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//   - WithOnRelax:          hook per improved distance.
//   - WithOnSettle:         hook per settled vertex.
//
// Negative weights cannot reach this package; core.NewGraph rejects them.
package dijkstra
