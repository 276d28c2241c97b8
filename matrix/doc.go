// SPDX-License-Identifier: MIT

// Package matrix holds the dense distance-matrix model used by the
// all-pairs shortest-path kernels.
//
// The package provides:
//
//   - Weight, a tagged value that is either Finite(w) or Unreachable. "No path"
//     is never encoded as an extreme integer, so summing two unreachable cells
//     can not overflow.
//   - Distance, a square n×n row-major buffer of Weight with safe At/Set
//     accessors, a live Row(i) slice for kernels, Clone and Equal.
//   - Validators (ValidatePrecondition, ValidateSameShape) that kernels run
//     before mutating anything.
//
// A Distance is created once (by a graph source or Clone), mutated by one
// kernel run, and read-only afterwards.
package matrix
