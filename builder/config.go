// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil                         (pure/deterministic unless seeded)
//   • edgeProb = DefaultEdgeProbability (0.8)
//   • weightFn = UniformWeightFn(1, 10)       (weights in [1,10))

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers); the *rand.Rand
// it points to is shared and advances across calls.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Probability that an ordered pair (i,j), i≠j, carries an edge.
	edgeProb float64
	// Weight generator for edges.
	weightFn WeightFn
}

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultEdgeProbability is the chance that a directed edge exists.
	DefaultEdgeProbability = 0.8
	// DefaultMinWeight is the inclusive lower bound of generated weights.
	DefaultMinWeight int64 = 1
	// DefaultMaxWeight is the exclusive upper bound of generated weights.
	DefaultMaxWeight int64 = 10
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		edgeProb: DefaultEdgeProbability,
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
