// SPDX-License-Identifier: MIT
// Package: apsp
//
// Equivalence check between two distance matrices. A mismatch is the primary
// correctness signal of a sequential-vs-parallel run, so it carries exact
// coordinates and both values rather than a bare boolean.

package apsp

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/apsp/matrix"
)

const opCompare = "Compare"

// Mismatch is the first differing cell found by Compare.
type Mismatch struct {
	Row int           `yaml:"row"`
	Col int           `yaml:"col"`
	A   matrix.Weight `yaml:"a"`
	B   matrix.Weight `yaml:"b"`
}

// String renders "(row, col): a=<A> b=<B>".
func (m Mismatch) String() string {
	return fmt.Sprintf("(%d, %d): a=%s b=%s", m.Row, m.Col, m.A, m.B)
}

// Compare scans a and b cell by cell in row-major order.
//
// Returns:
//   - (nil, nil) when all n² cells are equal;
//   - (&Mismatch{...}, nil) for the first differing cell; scanning stops there;
//   - (nil, err) with matrix.ErrNilMatrix / matrix.ErrDimensionMismatch when
//     the operands can not be compared.
//
// Compare has no side effects. Complexity: O(n²) worst case.
func Compare(a, b *matrix.Distance) (*Mismatch, error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompare, err)
	}

	n := a.N()
	var (
		i, j   int
		ra, rb []matrix.Weight
		err    error
	)
	for i = 0; i < n; i++ {
		if ra, err = a.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompare, err)
		}
		if rb, err = b.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompare, err)
		}
		for j = 0; j < n; j++ {
			if ra[j] != rb[j] {
				return &Mismatch{Row: i, Col: j, A: ra[j], B: rb[j]}, nil
			}
		}
	}

	return nil, nil
}

// Compare is the traced, logged form of the package-level Compare.
func (e *Engine) Compare(ctx context.Context, a, b *matrix.Distance) (*Mismatch, error) {
	ctx, span := tracer.Start(ctx, "apsp.Compare")
	defer span.End()

	mm, err := Compare(a, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Bool("match", mm == nil))
	if mm != nil {
		recordMismatch(ctx)
		span.AddEvent("mismatch", trace.WithAttributes(
			attribute.Int("row", mm.Row),
			attribute.Int("col", mm.Col),
		))
		e.log.Warn("distance matrices differ",
			slog.Int("row", mm.Row),
			slog.Int("col", mm.Col),
			slog.String("a", mm.A.String()),
			slog.String("b", mm.B.String()),
		)
	}
	span.SetStatus(codes.Ok, "")

	return mm, nil
}
