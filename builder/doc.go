// Package builder provides deterministic edge-list generators for fixtures,
// benchmarks and the generate command.
//
// The package offers the following key components:
//
//   - Composition:
//     – Constructor:   a closure that appends a block of vertices and its edges.
//     – BuildGraph:    runs constructors in order and returns an immutable *core.Graph.
//     – BuildEdges:    same, but returns the raw vertex count and edge list.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, Fixed.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Every constructor allocates a fresh block of vertex ids following the ones
// already allocated, so BuildGraph(nil, Path(3), Path(2)) yields a graph with
// two components: 1-2-3 and 4-5. Edge order inside a block is documented per
// constructor and is stable, which fixes adjacency order in the resulting graph.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
//   - Same options, seed and constructor order ⇒ identical edge lists.
package builder
