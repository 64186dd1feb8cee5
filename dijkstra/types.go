package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source or target outside [1, V].
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that PathTo was asked for a vertex the search never reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are reported unreached.
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
//
// OnRelax          – called when dist[u] improves while relaxing v's neighbors.
// OnSettle         – called for each vertex whose neighbors are relaxed, in settle order.
type Options struct {
	MaxDistance      int64                   // Maximum distance to explore
	InfEdgeThreshold int64                   // Weight threshold at or above which edges are non-traversable
	OnRelax          func(v, u int, d int64) // current vertex, improved neighbor, new dist[u]
	OnSettle         func(v int, d int64)    // settled vertex and its final distance
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// skipped entirely. Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnRelax installs a hook called for every successful relaxation.
func WithOnRelax(fn func(v, u int, d int64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithOnSettle installs a hook called once per settled vertex.
func WithOnSettle(fn func(v int, d int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns Options with no distance cap, no impassable
// edges and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
	}
}

// Result is a shortest-path tree rooted at Source.
// Per-vertex slices are indexed by vertex id, index 0 unused.
type Result struct {
	// Source is the root of the tree.
	Source int

	// Dist is the shortest distance from Source, core.Infinity if unreached.
	Dist []int64

	// Parent is the predecessor on a shortest path; core.NoVertex for the
	// source and for unreached vertices.
	Parent []int

	// Order lists vertices in settle order (non-decreasing Dist).
	Order []int
}

// PathTo returns the vertices of a shortest path from Source to dest, both included.
//
// Errors: ErrVertexNotFound if dest is outside [1, V], ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 1 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, dest)
	}
	if r.Dist[dest] == core.Infinity {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, dest, r.Source)
	}

	var path []int
	for v := dest; v != core.NoVertex; v = r.Parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Unreached returns the vertices with no path from Source, ascending.
func (r *Result) Unreached() []int {
	var out []int
	for v := 1; v < len(r.Dist); v++ {
		if r.Dist[v] == core.Infinity {
			out = append(out, v)
		}
	}

	return out
}

// Spanning reports whether every vertex was reached.
func (r *Result) Spanning() bool {
	return len(r.Order) == len(r.Dist)-1
}
