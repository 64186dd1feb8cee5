// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, emits (i, i+1) for i = 1..n-1.
//   - Cycle: n ≥ 3, emits the path edges then the closing edge (n, 1).
//   - Ids are local to the block; the block offset is added on emission.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.block(n)
		for i := 1; i < n; i++ {
			s.link(base+i, base+i+1, cfg)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.block(n)
		for i := 1; i < n; i++ {
			s.link(base+i, base+i+1, cfg)
		}
		s.link(base+n, base+1, cfg)

		return nil
	}
}
