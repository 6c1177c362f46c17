// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_random_sparse.go — RandomSparse(n, p) random DAG.
//
// Canonical model:
//   • Erdős–Rényi-like: each ordered pair (i, j) with i < j becomes an arc
//     id(i) → id(j) independently with probability p.
//   • source → id(0) and id(n-1) → sink are always present.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.
//
// Determinism: stable trial order (i asc, then j asc) for a fixed seed.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling a random DAG over n inner nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := d.addTerminal(cfg.source, cfg.idFn(0), cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := d.addInner(cfg.idFn(i), cfg.idFn(j), cfg); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
		if err := d.addTerminal(cfg.idFn(n-1), cfg.sink, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		return nil
	}
}
