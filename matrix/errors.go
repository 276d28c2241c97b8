// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No accessor panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context (method, coordinates) is attached with
// fmt.Errorf("ctx: %w", ErrX) at the detection site; callers use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> weight domain -> arithmetic.

var (
	// ErrNilMatrix indicates that a nil *Distance (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix order is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals ragged or rectangular input where n×n was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates two matrices of different order were
	// combined (e.g. compared cell by cell).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeWeight is returned when a finite weight below zero is stored
	// or found by the precondition check. Floyd–Warshall is only run on
	// non-negative graphs here, which rules out negative cycles.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrSelfLoop signals a non-zero self-loop; the diagonal is always Finite(0).
	ErrSelfLoop = errors.New("matrix: self-loop weight must be zero")

	// ErrNonZeroDiagonal signals a diagonal cell that is not Finite(0).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrWeightOverflow signals that the sum of two finite weights does not
	// fit into int64. It is reported before any wrapped value is stored.
	ErrWeightOverflow = errors.New("matrix: weight overflow")
)
