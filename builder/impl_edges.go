// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_edges.go - explicit edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const methodFromEdges = "FromEdges"

// Edge is a directed weighted edge between vertex indices.
type Edge struct {
	From, To int
	Weight   int64
}

// FromEdges returns a Constructor that writes the given edges in order;
// a later edge on the same (From,To) overwrites an earlier one.
//
// Weights are taken verbatim (cfg.weightFn is ignored) but must be ≥ 1.
// Out-of-range endpoints and self-loops fail with ErrConstructFailed.
func FromEdges(edges ...Edge) Constructor {
	return func(d *matrix.Distance, _ builderConfig) error {
		for idx, e := range edges {
			if e.Weight < 1 {
				return fmt.Errorf("%s: edge #%d %d→%d weight %d: %w",
					methodFromEdges, idx, e.From, e.To, e.Weight, ErrInvalidWeight)
			}
			if err := d.SetEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: edge #%d: %w: %w", methodFromEdges, idx, err, ErrConstructFailed)
			}
		}

		return nil
	}
}
