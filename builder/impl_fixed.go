// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_fixed.go - Fixed(n, edges...) constructor for hand-written fixtures.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edge endpoints are local ids in [1, n] (else ErrConstructFailed).
//   - Edges keep their own weights and order; cfg.weightFn is not consulted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodFixed   = "Fixed"
	minFixedNodes = 1
)

// Fixed returns a Constructor that appends n vertices and the given edges verbatim.
func Fixed(n int, edges ...core.Edge) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minFixedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFixed, n, minFixedNodes, ErrTooFewVertices)
		}
		for i, e := range edges {
			if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
				return fmt.Errorf("%s: edge %d (%d,%d) outside [1,%d]: %w", methodFixed, i+1, e.U, e.V, n, ErrConstructFailed)
			}
		}
		base := s.block(n)
		for _, e := range edges {
			s.edges = append(s.edges, core.Edge{U: base + e.U, V: base + e.V, Weight: e.Weight})
		}

		return nil
	}
}
