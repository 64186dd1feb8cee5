package core

import (
	"errors"
	"math"
)

// NoVertex is the reserved "absent" vertex identifier.
// Parent arrays use it for roots and unreached vertices.
const NoVertex = 0

// MaxVertices is the largest vertex count NewGraph accepts.
const MaxVertices = 1 << 26

// Infinity is the distance assigned to vertices that have not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates a declared vertex count outside [1, MaxVertices].
	ErrBadVertexCount = errors.New("core: vertex count out of range")

	// ErrVertexOutOfRange indicates an edge endpoint outside [1, V].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one undirected input edge. U and V are vertex identifiers in [1, V].
type Edge struct {
	U      int
	V      int
	Weight int64
}

// Other returns the endpoint of e opposite to x.
// If x is not an endpoint the result is U.
func (e Edge) Other(x int) int {
	if x == e.U {
		return e.V
	}

	return e.U
}

// Neighbor is one adjacency entry: the vertex reached and the edge weight.
type Neighbor struct {
	Vertex int
	Weight int64
}

// Graph is an immutable undirected weighted graph over vertices 1..V.
//
// adj holds all 2E adjacency entries; the entries of vertex v occupy
// adj[offsets[v]:offsets[v+1]]. edges keeps the input edges in input order.
type Graph struct {
	order   int        // V
	edges   []Edge     // input edges, index i is edge i+1
	offsets []int      // len V+2; offsets[0] == offsets[1] == 0
	adj     []Neighbor // len 2E
}
