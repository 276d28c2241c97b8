// SPDX-License-Identifier: MIT

package apsp

import "github.com/katalvlaran/apsp/matrix"

// WithRelaxFunc swaps the per-row relaxation so tests can inject failures
// (panics, errors, cancellations) into a chosen (k, i) step.
func WithRelaxFunc(fn func(row, pivot []matrix.Weight, i, k int) error) Option {
	return func(e *Engine) { e.relax = fn }
}

// RelaxRow exposes the production relaxation for wrapping in tests.
var RelaxRow = relaxRow
