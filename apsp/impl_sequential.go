// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Reference Floyd–Warshall kernel with a fixed k → i → j loop order.
//   - Shares the row relaxation (relaxRow) with the parallel kernel, so both
//     perform the exact same comparisons for every (k,i,j).
//
// Contract:
//   - Square matrix, zero diagonal, non-negative weights (checked up front).
//   - Unreachable cells never enter arithmetic.

package apsp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	opSequential = "Sequential"
	kernelSeq    = "sequential"
)

// relaxRow relaxes row i through pivot k:
//
//	row[j] = min(row[j], row[k] + pivot[j])   for every j
//
// Only strictly shorter candidates are written, and only when both row[k]
// and pivot[j] are finite. row[k] is read once; for j == k the candidate is
// row[k] + 0 and never improves, so the early read stays valid.
//
// Complexity: O(n) time, O(1) space.
func relaxRow(row, pivot []matrix.Weight, i, k int) error {
	ik := row[k]
	if !ik.IsFinite() {
		// i can not reach k: nothing routed through k can help row i.
		return nil
	}

	var (
		j    int
		kj   matrix.Weight
		cand matrix.Weight
		err  error
	)
	for j, kj = range pivot {
		if !kj.IsFinite() {
			continue
		}
		if cand, err = matrix.AddWeights(ik, kj); err != nil {
			return fmt.Errorf("relax(k=%d,i=%d,j=%d): %w", k, i, j, err)
		}
		if cand.Less(row[j]) {
			row[j] = cand
		}
	}

	return nil
}

// Sequential computes all-pairs shortest paths in place on d.
//
// Implementation:
//   - Stage 1: validate the precondition (no mutation on failure).
//   - Stage 2: for k asc, for i asc (i != k), relax row i through pivot k.
//     Pivot k is fully applied before k+1 begins.
//
// ctx is polled once per pivot; on cancellation the call returns
// ErrAborted joined with ctx.Err() and d is left partially relaxed.
//
// Complexity: Time O(n³), extra space O(1).
func (e *Engine) Sequential(ctx context.Context, d *matrix.Distance) (err error) {
	if err = matrix.ValidatePrecondition(d); err != nil {
		return fmt.Errorf("%s: %w", opSequential, err)
	}
	n := d.N()

	ctx, span := tracer.Start(ctx, "apsp.Sequential",
		trace.WithAttributes(attribute.Int("n", n)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		recordKernel(ctx, kernelSeq, time.Since(start), n, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.log.Error("sequential kernel failed", slog.Int("n", n), slog.String("error", err.Error()))
			return
		}
		span.SetStatus(codes.Ok, "")
	}()

	var (
		k, i       int
		pivot, row []matrix.Weight
	)
	for k = 0; k < n; k++ {
		if cerr := ctx.Err(); cerr != nil {
			return abortErr(opSequential, k, cerr)
		}
		if pivot, err = d.Row(k); err != nil {
			return fmt.Errorf("%s: %w", opSequential, err)
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			if row, err = d.Row(i); err != nil {
				return fmt.Errorf("%s: %w", opSequential, err)
			}
			if err = e.relax(row, pivot, i, k); err != nil {
				return fmt.Errorf("%s: %w", opSequential, err)
			}
		}
	}

	e.log.Debug("sequential kernel done", slog.Int("n", n), slog.Duration("elapsed", time.Since(start)))

	return nil
}

// abortErr builds the uniform cancellation error for pivot k.
func abortErr(op string, k int, cause error) error {
	return fmt.Errorf("%s: pivot %d: %w: %w", op, k, ErrAborted, cause)
}
