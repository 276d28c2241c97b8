// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths on a dense directed graph
// with the Floyd–Warshall recurrence, in two interchangeable variants.
//
//   - Sequential: the reference k → i → j triple loop.
//   - Parallel: the same recurrence with the row dimension fanned out to a
//     pool of goroutines. Pivots run strictly in ascending order and every
//     pivot pass ends with a full barrier (errgroup.Wait) before the next
//     pivot starts.
//
// Both variants mutate a *matrix.Distance in place and produce bitwise
// identical output for the same input. Compare scans two matrices in
// row-major order and reports the first differing cell, and Verify runs the
// whole sequential-vs-parallel check on independent clones of one input.
//
// Concurrency model (Parallel):
//
//	for k in 0..n-1:            // strictly ordered
//	    errgroup per pivot       // one task per row (or row block)
//	        row i owner relaxes d[i][*] using d[i][k] and pivot row d[k][*]
//	    Wait()                   // barrier: all writes of pass k visible
//
// Rows are disjoint across tasks and the pivot row is never written during
// its own pass (it can not improve under a zero diagonal, so row k is
// skipped), hence no lock guards the matrix.
//
// Input contract: zero diagonal and non-negative weights
// (matrix.ValidatePrecondition). Negative cycles are out of scope.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonZeroDiagonal, matrix.ErrNegativeWeight
//     for precondition violations, reported before any mutation.
//   - matrix.ErrWeightOverflow when a finite path length does not fit int64.
//   - ErrWorkerPanic when a parallel task panics.
//   - ErrAborted when ctx is cancelled; the matrix is then left in an
//     undefined, partially relaxed state and must not be used.
package apsp
