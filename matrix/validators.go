// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks kernels run
//    before touching a matrix.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(d *Distance) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and of equal order.
// Complexity: O(1).
func ValidateSameShape(a, b *Distance) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePrecondition checks the input contract of the shortest-path kernels.
//
// Fixed sequence:
//   - non-nil (ErrNilMatrix);
//   - every diagonal cell is Finite(0) (ErrNonZeroDiagonal);
//   - every finite off-diagonal cell is ≥ 0 (ErrNegativeWeight).
//
// The first violation in row-major order is reported with its coordinates.
// Complexity: O(n²).
func ValidatePrecondition(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return validatorErrorf("ValidatePrecondition", err)
	}

	var i, j int
	var w Weight
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			w = d.data[i*d.n+j]
			if i == j {
				if w != Finite(0) {
					return fmt.Errorf("ValidatePrecondition(%d,%d)=%s: %w", i, j, w, ErrNonZeroDiagonal)
				}
				continue
			}
			if w.finite && w.value < 0 {
				return fmt.Errorf("ValidatePrecondition(%d,%d)=%s: %w", i, j, w, ErrNegativeWeight)
			}
		}
	}

	return nil
}
