// SPDX-License-Identifier: MIT
// Package builder provides helper types for configuring edge-weight
// distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w < 1.
func ConstantWeightFn(w int64) WeightFn {
	if w < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be ≥ 1, got %d", w))
	}

	return func(_ *rand.Rand) int64 { return w }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 1 ≤ min < max. With a nil rng it yields min, which keeps
// p ∈ {0,1} builds deterministic without a seed.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max <= min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min < max, got min=%d, max=%d", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return min
		}

		return min + rng.Int63n(span)
	}
}
