// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Erdős–Rényi-like generator: each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i ascending, then j ascending. A trial draws from the RNG
//     before the weight does, so the edge set depends only on seed and p.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := s.block(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if keep(cfg, p) {
					s.link(base+i, base+j, cfg)
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial. p ∈ {0,1} never touches the RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
