// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic distance-matrix fixtures for accessor and
//     validator tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/apsp/matrix"
)

// inf is shorthand for the Unreachable weight in table fixtures.
var inf = matrix.Unreachable()

// f is shorthand for a finite weight in table fixtures.
func f(w int64) matrix.Weight { return matrix.Finite(w) }

// MustDistance ALLOCATES an n×n *Distance or fails the test (fatal on error).
func MustDistance(t *testing.T, n int) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistance(n)
	if err != nil {
		t.Fatalf("NewDistance(%d): %v", n, err)
	}

	return d
}

// MustSetEdge WRITES a directed edge or fails the test.
func MustSetEdge(t *testing.T, d *matrix.Distance, from, to int, w int64) {
	t.Helper()
	if err := d.SetEdge(from, to, w); err != nil {
		t.Fatalf("SetEdge(%d,%d,%d): %v", from, to, w, err)
	}
}

// MustAt READS d[i,j] or fails the test.
func MustAt(t *testing.T, d *matrix.Distance, i, j int) matrix.Weight {
	t.Helper()
	w, err := d.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return w
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}
