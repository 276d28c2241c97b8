// SPDX-License-Identifier: MIT

// Package matrix - Distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major n×n buffer of Weight with the explicit
//     index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose Row(i) as a live slice so kernels can relax a whole row without
//     per-cell bound checks or error plumbing.
//
// Complexity quicksheet:
//   - NewDistance: O(n²); At/Set: O(1); Clone: O(n²); Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxSetEdge = "SetEdge"
	ctxRow     = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// distanceErrorf wraps an error with a uniform Distance context and callsite indices.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// Distance is a square row-major matrix of Weight.
//   - n is the order (rows == cols == n), fixed at construction.
//   - data is a flat buffer of length n*n (offset = i*n + j).
//
// A Distance is not safe for concurrent mutation through Set. Kernels that
// share one matrix across goroutines must write disjoint rows via Row(i).
type Distance struct {
	n    int
	data []Weight
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Distance)(nil)

// NewDistance creates an n×n distance matrix with no edges.
//
// Implementation:
//   - Stage 1: validate n ≥ 1; else ErrInvalidDimensions.
//   - Stage 2: allocate a zeroed buffer (zero Weight is Unreachable).
//   - Stage 3: write Finite(0) on the diagonal.
//
// Returns:
//   - *Distance satisfying the pre-algorithm invariant (diag 0, rest ∞).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDistance(n int) (*Distance, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDistance(%d): %w", n, ErrInvalidDimensions)
	}

	d := &Distance{n: n, data: make([]Weight, n*n)}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = Finite(0)
	}

	return d, nil
}

// NewDistanceFromRows copies rows into a new Distance.
//
// Errors:
//   - ErrInvalidDimensions for an empty input.
//   - ErrNonSquare when any row length differs from len(rows).
//   - ErrNegativeWeight for a negative finite cell.
//
// The diagonal is copied as given; use ValidatePrecondition before running
// a kernel on externally supplied data.
func NewDistanceFromRows(rows [][]Weight) (*Distance, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewDistanceFromRows: %w", ErrInvalidDimensions)
	}

	d := &Distance{n: n, data: make([]Weight, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewDistanceFromRows: row %d has %d cells, want %d: %w",
				i, len(row), n, ErrNonSquare)
		}
		for j, w := range row {
			if w.finite && w.value < 0 {
				return nil, distanceErrorf(ctxSet, i, j, ErrNegativeWeight)
			}
		}
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// N returns the matrix order.
func (d *Distance) N() int { return d.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *Distance) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.n {
		return 0, ErrOutOfRange
	}

	return row*d.n + col, nil
}

// At returns the weight at (row, col) or ErrOutOfRange.
func (d *Distance) At(row, col int) (Weight, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		return Unreachable(), distanceErrorf(ctxAt, row, col, err)
	}

	return d.data[off], nil
}

// Set stores w at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNegativeWeight when w is finite and below zero.
//
// Set does not enforce the zero diagonal; SetEdge does.
func (d *Distance) Set(row, col int, w Weight) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return distanceErrorf(ctxSet, row, col, err)
	}
	if w.finite && w.value < 0 {
		return distanceErrorf(ctxSet, row, col, ErrNegativeWeight)
	}
	d.data[off] = w

	return nil
}

// SetEdge stores a directed edge from → to with weight w.
//
// A self-loop is only accepted with w == 0 (ErrSelfLoop otherwise), which
// keeps the diagonal invariant intact.
func (d *Distance) SetEdge(from, to int, w int64) error {
	if from == to && w != 0 {
		return distanceErrorf(ctxSetEdge, from, to, ErrSelfLoop)
	}
	if err := d.Set(from, to, Finite(w)); err != nil {
		return fmt.Errorf("%s: %w", ctxSetEdge, err)
	}

	return nil
}

// Row returns the live backing slice of row i (length n).
//
// Writes through the slice mutate the matrix without validation. Kernels use
// it to give each worker exclusive ownership of whole rows.
func (d *Distance) Row(i int) ([]Weight, error) {
	if i < 0 || i >= d.n {
		return nil, distanceErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return d.data[i*d.n : (i+1)*d.n : (i+1)*d.n], nil
}

// Rows returns a copy of the matrix as a slice of rows.
func (d *Distance) Rows() [][]Weight {
	out := make([][]Weight, d.n)
	for i := range out {
		out[i] = append([]Weight(nil), d.data[i*d.n:(i+1)*d.n]...)
	}

	return out
}

// Clone returns a deep copy; mutations of either side are independent.
// Complexity: O(n²).
func (d *Distance) Clone() *Distance {
	cp := make([]Weight, len(d.data))
	copy(cp, d.data)

	return &Distance{n: d.n, data: cp}
}

// Equal reports whether d and o have the same order and identical cells.
// A nil matrix is only equal to another nil matrix.
func (d *Distance) Equal(o *Distance) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for i := range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line; Unreachable prints as "∞".
// Intended for logs and test failures on small matrices.
func (d *Distance) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * d.n
		for j = 0; j < d.n; j++ {
			b.WriteString(d.data[base+j].String())
			if j+1 < d.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
