package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/unionfind"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrSourceNotFound indicates a Prim source outside [1, V].
	ErrSourceNotFound = errors.New("prim_kruskal: source vertex not found")

	// ErrDisconnected indicates that no spanning tree exists because the
	// graph has more than one component. Kruskal returns it together with
	// the partial forest it built.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for a Method other than
	// MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodPrim selects Prim's algorithm (grow one tree from Source).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (merge components by ascending edge weight).
const MethodKruskal = "kruskal"

// MSTOptions configures Prim, Kruskal and Compute.
// Use DefaultOptions() to get the defaults.
type MSTOptions struct {
	// Method is used by Compute only: MethodPrim or MethodKruskal.
	Method string

	// Source is the Prim root used by Compute. Prim itself takes the
	// source as an argument.
	Source int

	// OnSettle, if non-nil, is called by Prim each time a vertex leaves the
	// queue, with its tree parent and the weight of the connecting edge.
	OnSettle func(v, parent int, w int64)

	// OnAccept, if non-nil, is called by Kruskal for each edge added to the forest.
	OnAccept func(e core.Edge)

	// OnReject, if non-nil, is called by Kruskal for each extracted edge that
	// would close a cycle.
	OnReject func(e core.Edge)

	// NewDisjointSet allocates Kruskal's partition. Default: unionfind.ForestFactory.
	NewDisjointSet unionfind.Factory
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// DefaultOptions returns MSTOptions with:
//   - Method = MethodKruskal
//   - Source = 1
//   - no hooks
//   - the naive unionfind.Forest for Kruskal
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:         MethodKruskal,
		Source:         1,
		NewDisjointSet: unionfind.ForestFactory,
	}
}

// WithMethod sets the algorithm Compute dispatches to.
func WithMethod(m string) Option {
	return func(o *MSTOptions) {
		o.Method = m
	}
}

// WithSource sets the Prim root used by Compute.
func WithSource(v int) Option {
	return func(o *MSTOptions) {
		o.Source = v
	}
}

// WithOnSettle installs the Prim settle hook.
func WithOnSettle(fn func(v, parent int, w int64)) Option {
	return func(o *MSTOptions) {
		o.OnSettle = fn
	}
}

// WithOnAccept installs the Kruskal accept hook.
func WithOnAccept(fn func(e core.Edge)) Option {
	return func(o *MSTOptions) {
		o.OnAccept = fn
	}
}

// WithOnReject installs the Kruskal reject hook.
func WithOnReject(fn func(e core.Edge)) Option {
	return func(o *MSTOptions) {
		o.OnReject = fn
	}
}

// WithDisjointSet selects the union-find implementation used by Kruskal,
// e.g. unionfind.CompressedFactory. A nil factory keeps the default.
func WithDisjointSet(f unionfind.Factory) Option {
	return func(o *MSTOptions) {
		if f != nil {
			o.NewDisjointSet = f
		}
	}
}

// Compute runs the algorithm named by the Method option and returns the
// tree edges with their total weight.
//
//   - MethodKruskal: Kruskal(g, opts...).Edges.
//   - MethodPrim:    Prim(g, Source, opts...).TreeEdges().
//
// Both report ErrDisconnected when the result does not span g; the edges
// found so far are still returned.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		res, err := Kruskal(g, opts...)
		if res == nil {
			return nil, 0, err
		}

		return res.Edges, res.Weight, err
	case MethodPrim:
		res, err := Prim(g, o.Source, opts...)
		if err != nil {
			return nil, 0, err
		}
		if !res.Spanning() {
			return res.TreeEdges(), res.Weight, fmt.Errorf("%w: %d of %d vertices unreached from %d",
				ErrDisconnected, len(res.Unreached()), g.Order(), o.Source)
		}

		return res.TreeEdges(), res.Weight, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
