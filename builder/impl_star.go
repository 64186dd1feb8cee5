// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2, hub is local id 1, spokes (1, i) for i = 2..n.
//   - Wheel: n ≥ 4, the Star spokes followed by the rim cycle over 2..n.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := s.block(n)
		for i := 2; i <= n; i++ {
			s.link(base+1, base+i, cfg)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a hub joined to every vertex
// of an (n-1)-cycle.
func Wheel(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := s.block(n)
		for i := 2; i <= n; i++ {
			s.link(base+1, base+i, cfg)
		}
		for i := 2; i < n; i++ {
			s.link(base+i, base+i+1, cfg)
		}
		s.link(base+n, base+2, cfg)

		return nil
	}
}
