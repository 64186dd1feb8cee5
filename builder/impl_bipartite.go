// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side takes local ids 1..n1, right side n1+1..n1+n2.
//   • Emits every cross pair (i, n1+j): i ascending over the left side, then j
//     ascending over the right side.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		base := s.block(n1 + n2)
		for i := 1; i <= n1; i++ {
			for j := 1; j <= n2; j++ {
				s.link(base+i, base+n1+j, cfg)
			}
		}

		return nil
	}
}
