// Package bfs provides breadth-first search over an immutable core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Neighbors are taken in adjacency order (core.Graph.Neighbors, reverse
//     edge-insertion order), so the visit sequence is fully reproducible.
//   - Vertices are marked when enqueued, never when dequeued, so each vertex
//     enters the queue at most once. The queue is a fixed ring of capacity V.
//   - Unreachable vertices are absent from Order and keep Depth == Unreached;
//     a disconnected graph is not an error.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes adjacency entries; WithMaxDepth bounds the layers.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [1, V].
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors, returned with the partial result.
package bfs
