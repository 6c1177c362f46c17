// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2) transportation network.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left names "{leftPrefix}{i}", right names "{rightPrefix}{j}".
//   • Emission order: source → L_i for i asc; L_i → R_j for i asc, j asc;
//     R_j → sink for j asc.
//
// Complexity: O(n1·n2) time, O(n1 + n2) extra space for names.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for a transportation network with
// n1 suppliers and n2 consumers, every supplier linked to every consumer.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
		}

		for _, u := range left {
			if err := d.addTerminal(cfg.source, u, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := d.addInner(u, v, cfg); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}
		for _, v := range right {
			if err := d.addTerminal(v, cfg.sink, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
			}
		}

		return nil
	}
}
