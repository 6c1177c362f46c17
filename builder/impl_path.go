// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_path.go — Path(n): source → id(0) → … → id(n-1) → sink.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits n+1 arcs in chain order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for a single chain of n inner nodes.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		if err := d.addTerminal(cfg.source, cfg.idFn(0), cfg); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err := d.addInner(cfg.idFn(i), cfg.idFn(i+1), cfg); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		if err := d.addTerminal(cfg.idFn(n-1), cfg.sink, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}

		return nil
	}
}
