// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c), zero-based, has local id r*cols + c + 1 (row-major).
//   • For each cell in row-major order, emit Right then Bottom if present.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.block(rows * cols)
		id := func(r, c int) int { return base + r*cols + c + 1 }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.link(id(r, c), id(r, c+1), cfg)
				}
				if r+1 < rows {
					s.link(id(r, c), id(r+1, c), cfg)
				}
			}
		}

		return nil
	}
}
