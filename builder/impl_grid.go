// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_grid.go — Grid(rows, cols) with right and down arcs.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell names use the fixed scheme "r,c" so coordinates stay explicit.
//   • source → "0,0"; each cell emits Right then Down where present;
//     "rows-1,cols-1" → sink.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor for a rows×cols grid draining from the top-left
// cell to the bottom-right cell.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cell := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		if err := d.addTerminal(cfg.source, cell(0, 0), cfg); err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := d.addInner(cell(r, c), cell(r, c+1), cfg); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := d.addInner(cell(r, c), cell(r+1, c), cfg); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}
		if err := d.addTerminal(cell(rows-1, cols-1), cfg.sink, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}

		return nil
	}
}
