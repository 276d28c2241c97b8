// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_dense.go - implementation of RandomDense(p) constructor.
//
// Canonical model:
//   - Directed Erdős–Rényi-like generator over ordered pairs (i,j), i≠j:
//     each pair independently carries an edge with probability p.
//   - Edge weight drawn from cfg.weightFn(cfg.rng); must be ≥ 1.
//   - Self-loops stay Finite(0).
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. For each pair the existence
//     trial is drawn first, then (if present) the weight.
//
// Complexity:
//   - Time O(n²) trials; Space O(1) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	methodRandomDense = "RandomDense"
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDense returns a Constructor that samples directed edges with
// independent probability p over every ordered pair of distinct vertices.
func RandomDense(p float64) Constructor {
	return func(d *matrix.Distance, cfg builderConfig) error {
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDense, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDense, ErrNeedRandSource)
		}

		n := d.N()
		rng := cfg.rng
		var (
			i, j int
			w    int64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				// Bernoulli trial; p ∈ {0,1} needs no RNG draw.
				switch {
				case p == probMin:
					continue
				case p < probMax && rng.Float64() >= p:
					continue
				}
				w = cfg.weightFn(rng)
				if w < 1 {
					return fmt.Errorf("%s: weight %d for (%d,%d): %w", methodRandomDense, w, i, j, ErrInvalidWeight)
				}
				if err := d.SetEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: %w: %w", methodRandomDense, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
