// SPDX-License-Identifier: MIT

// Package builder produces initial distance matrices (graph sources) for the
// shortest-path kernels.
//
// The package offers:
//
//   - Source / Random: the seeded random dense graph generator. Each ordered
//     pair (i,j), i≠j, independently gets an edge with probability p, with a
//     weight drawn from a positive range; self-loops are Finite(0).
//   - Constructor composition: Build(n, opts, cons...) allocates an n×n
//     matrix with no edges and applies constructors in order (RandomDense,
//     Path, Cycle, Complete, FromEdges), mirroring how fixtures are assembled in tests.
//   - Configuration primitives: BuilderOption mutates builderConfig (RNG,
//     edge probability, weight function) before use.
//   - Edge-weight distributions: ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: the same seed, options and constructor order yield the same
//     matrix. There is no process-wide RNG; randomness flows through an
//     explicit *rand.Rand.
//   - All weights are ≥ 1, so generated graphs never contain a negative cycle.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime build parameters return sentinel errors.
package builder
