// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair (i, j), i < j, with i ascending then j ascending.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.block(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				s.link(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
