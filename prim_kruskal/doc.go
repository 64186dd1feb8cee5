// Package prim_kruskal computes minimum spanning trees of an undirected,
// non-negatively weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// Prim(g, source, opts...) (*PrimResult, error)
//
//   - Grows one tree from source with an ipq.IndexedHeap keyed on dist, the
//     weight of the cheapest known edge into the tree.
//   - A settled vertex is marked by negating its dist in place; no separate
//     visited array exists.
//   - Output is a parent array rooted at source plus the total weight.
//     Vertices in other components stay at Parent 0 and Dist core.Infinity;
//     PrimResult.Unreached and PrimResult.Spanning report them.
//   - Complexity: O((V + E) log V) time, O(V) memory.
//
// Kruskal(g, opts...) (*KruskalResult, error)
//
//   - Heapifies all edge ids bottom-up (O(E)) keyed by weight and extracts
//     them in ascending order.
//   - An edge is accepted when its endpoints have different roots in a
//     unionfind.DisjointSet, and the two roots are merged.
//   - Stops at V-1 edges. If the heap runs dry first the graph is
//     disconnected: the partial forest (V-k edges for k components) is
//     returned together with an error wrapping ErrDisconnected.
//   - The naive unionfind.Forest is the default; WithDisjointSet selects
//     another implementation such as unionfind.CompressedFactory.
//
// Compute(g, opts...) dispatches on WithMethod and returns edges and weight
// in one shape for both algorithms.
//
// Both algorithms accept self-loops and parallel edges. A self-loop never
// enters a tree; of parallel edges only the lightest can.
//
// Hooks (WithOnSettle, WithOnAccept, WithOnReject) expose each step for
// tracing; they must not retain the graph's adjacency slices.
package prim_kruskal
