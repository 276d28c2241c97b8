// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of the Cycle constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits directed edges i → (i+1)%n for i=0..n-1 in increasing order.
//   • Weight policy: cfg.weightFn(cfg.rng), must be ≥ 1.
//
// Complexity:
//   • Time O(n) edges; Space O(1) extra.
//
// A directed cycle is strongly connected, so after APSP no cell is ∞.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that adds the directed ring 0→1→…→n-1→0.
func Cycle() Constructor {
	return func(d *matrix.Distance, cfg builderConfig) error {
		n := d.N()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		var (
			i, next int
			w       int64
		)
		for i = 0; i < n; i++ {
			next = (i + 1) % n
			w = cfg.weightFn(cfg.rng)
			if w < 1 {
				return fmt.Errorf("%s: weight %d for (%d,%d): %w", methodCycle, w, i, next, ErrInvalidWeight)
			}
			if err := d.SetEdge(i, next, w); err != nil {
				return fmt.Errorf("%s: %w: %w", methodCycle, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
