// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - BuildGraph is BuildEdges followed by core.NewGraph.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// sketch accumulates vertex blocks and edges before the graph is frozen.
type sketch struct {
	order int
	edges []core.Edge
}

// block reserves n fresh vertex ids and returns the offset to add to a
// 1-based local index.
func (s *sketch) block(n int) int {
	base := s.order
	s.order += n

	return base
}

// link appends the edge u-v with a weight drawn from cfg.
func (s *sketch) link(u, v int, cfg builderConfig) {
	s.edges = append(s.edges, core.Edge{U: u, V: v, Weight: cfg.weightFn(cfg.rng)})
}

// Constructor appends one block of vertices and edges using the resolved
// builderConfig. Constructors validate parameters before touching the sketch.
type Constructor func(s *sketch, cfg builderConfig) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order. It returns the total vertex count and the edge list
// in emission order.
//
// Errors: constructor errors wrapped with "BuildEdges: %w"; ErrConstructFailed
// for a nil constructor.
// Complexity: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []core.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return s.order, s.edges, nil
}

// BuildGraph runs BuildEdges and freezes the result into a *core.Graph.
// A build that allocates no vertices fails with core.ErrBadVertexCount.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	order, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(order, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
