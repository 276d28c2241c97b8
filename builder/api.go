// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(n, opts, cons...). Allocates the matrix,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no
//     global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	methodBuild    = "Build"
	minBuildOrder  = 1
	methodGenerate = "Generate"
)

// Constructor applies a deterministic mutation to an n×n distance matrix
// using the resolved builderConfig. Constructors MUST validate parameters
// early, return sentinel errors (no panics) and write cells in a stable order.
type Constructor func(d *matrix.Distance, cfg builderConfig) error

// Source produces the initial n×n matrix for one run (the graph source).
type Source interface {
	Generate(n int) (*matrix.Distance, error)
}

// Build allocates an n×n matrix with a zero diagonal and no edges, resolves
// the builder configuration from opts and applies all constructors in order.
//
// Errors:
//   - ErrTooFewVertices when n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "Build: %w".
func Build(n int, opts []BuilderOption, cons ...Constructor) (*matrix.Distance, error) {
	return build(n, newBuilderConfig(opts...), cons...)
}

// build is Build with an already resolved config. Random reuses it so that
// successive Generate calls keep advancing one RNG.
func build(n int, cfg builderConfig, cons ...Constructor) (*matrix.Distance, error) {
	if n < minBuildOrder {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBuild, n, minBuildOrder, ErrTooFewVertices)
	}
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, err, ErrConstructFailed)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err = fn(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return d, nil
}

// Random is the seeded random dense graph Source.
//
// Successive Generate calls draw from the same RNG, so a fixed seed yields a
// fixed sequence of matrices. A Random is not safe for concurrent use.
type Random struct {
	cfg builderConfig
}

// Compile-time assertion.
var _ Source = (*Random)(nil)

// NewRandom resolves opts once and returns a Random source.
func NewRandom(opts ...BuilderOption) *Random {
	return &Random{cfg: newBuilderConfig(opts...)}
}

// Generate returns a fresh n×n matrix built by RandomDense(edgeProbability).
func (r *Random) Generate(n int) (*matrix.Distance, error) {
	d, err := build(n, r.cfg, RandomDense(r.cfg.edgeProb))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return d, nil
}
