// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of the Complete constructor.
//
// Contract:
//   - Adds every directed edge (i,j), i≠j, in i asc / j asc order.
//   - Weight policy: cfg.weightFn(cfg.rng), must be ≥ 1.
//
// Complexity:
//   - Time O(n²); Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const methodComplete = "Complete"

// Complete returns a Constructor that connects every ordered pair of
// distinct vertices. Equivalent to RandomDense(1).
func Complete() Constructor {
	return func(d *matrix.Distance, cfg builderConfig) error {
		n := d.N()
		var (
			i, j int
			w    int64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				w = cfg.weightFn(cfg.rng)
				if w < 1 {
					return fmt.Errorf("%s: weight %d for (%d,%d): %w", methodComplete, w, i, j, ErrInvalidWeight)
				}
				if err := d.SetEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: %w: %w", methodComplete, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
