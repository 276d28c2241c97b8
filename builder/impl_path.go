// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of the Path constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits directed edges (i-1) → i for i=1..n-1 in increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng), must be ≥ 1.
//
// Complexity:
//   - Time O(n) edges; Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that adds the directed chain 0→1→…→n-1.
// Every vertex can reach every later vertex; nothing reaches backwards.
func Path() Constructor {
	return func(d *matrix.Distance, cfg builderConfig) error {
		n := d.N()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var w int64
		for i := 1; i < n; i++ {
			w = cfg.weightFn(cfg.rng)
			if w < 1 {
				return fmt.Errorf("%s: weight %d for (%d,%d): %w", methodPath, w, i-1, i, ErrInvalidWeight)
			}
			if err := d.SetEdge(i-1, i, w); err != nil {
				return fmt.Errorf("%s: %w: %w", methodPath, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
