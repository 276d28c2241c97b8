// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Data-parallel Floyd–Warshall: per pivot k, the row range is split into
//     disjoint tasks run on an errgroup; Wait() is the barrier between pivots.
//
// Write-disjointness (why no lock is needed):
//   - A task writes only cells d[i][*] of rows it owns.
//   - Every task reads d[i][k] (own row) and the pivot row d[k][*].
//   - Row k is skipped: with d[k][k] == 0 it can not improve, so the pivot
//     row is never written during its own pass.
//
// Failure policy:
//   - The first task error cancels the group; the pass and the call fail
//     with that error. A recovered panic becomes ErrWorkerPanic.

package apsp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	opParallel     = "Parallel"
	kernelParallel = "parallel"
)

// Parallel computes all-pairs shortest paths in place on d using up to
// e.Workers() goroutines per pivot pass.
//
// Implementation:
//   - Stage 1: validate the precondition (no mutation on failure).
//   - Stage 2: for k asc: start an errgroup, submit row tasks per the
//     configured Partition, Wait. The next pivot starts only after Wait.
//
// Returns only after every task of every pivot has finished. Output is
// bitwise identical to Sequential for the same input.
//
// Complexity: Time O(n³/P + n·barrier), extra space O(P) goroutines.
func (e *Engine) Parallel(ctx context.Context, d *matrix.Distance) (err error) {
	if err = matrix.ValidatePrecondition(d); err != nil {
		return fmt.Errorf("%s: %w", opParallel, err)
	}
	n := d.N()

	ctx, span := tracer.Start(ctx, "apsp.Parallel",
		trace.WithAttributes(
			attribute.Int("n", n),
			attribute.Int("workers", e.workers),
			attribute.String("partition", e.partition.String()),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		recordKernel(ctx, kernelParallel, time.Since(start), n, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.log.Error("parallel kernel failed",
				slog.Int("n", n),
				slog.Int("workers", e.workers),
				slog.String("error", err.Error()),
			)
			return
		}
		span.SetStatus(codes.Ok, "")
	}()

	var pivot []matrix.Weight
	for k := 0; k < n; k++ {
		if cerr := ctx.Err(); cerr != nil {
			return abortErr(opParallel, k, cerr)
		}
		if pivot, err = d.Row(k); err != nil {
			return fmt.Errorf("%s: %w", opParallel, err)
		}
		if err = e.pivotPass(ctx, d, pivot, k); err != nil {
			// A task that saw the parent ctx cancelled reports ctx.Err();
			// surface that as an abort rather than a plain failure.
			if cerr := ctx.Err(); cerr != nil && errors.Is(err, cerr) {
				return abortErr(opParallel, k, cerr)
			}
			return fmt.Errorf("%s: pivot %d: %w", opParallel, k, err)
		}
	}

	e.log.Debug("parallel kernel done",
		slog.Int("n", n),
		slog.Int("workers", e.workers),
		slog.String("partition", e.partition.String()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// pivotPass runs one pivot over all rows and blocks until every task is done.
func (e *Engine) pivotPass(ctx context.Context, d *matrix.Distance, pivot []matrix.Weight, k int) error {
	n := d.N()
	g, gctx := errgroup.WithContext(ctx)

	switch e.partition {
	case PartitionBlocks:
		chunk := (n + e.workers - 1) / e.workers
		for lo := 0; lo < n; lo += chunk {
			lo, hi := lo, min(lo+chunk, n)
			g.Go(func() error { return e.relaxRows(gctx, d, pivot, k, lo, hi) })
		}
	default:
		g.SetLimit(e.workers)
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			i := i
			g.Go(func() error { return e.relaxRows(gctx, d, pivot, k, i, i+1) })
		}
	}

	return g.Wait()
}

// relaxRows relaxes the owned rows [lo,hi) (minus the pivot row) through k.
// ctx is checked before each row so a failed sibling or a caller abort stops
// the task at a row boundary.
func (e *Engine) relaxRows(ctx context.Context, d *matrix.Distance, pivot []matrix.Weight, k, lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rows [%d,%d): %v: %w", lo, hi, r, ErrWorkerPanic)
		}
	}()

	var row []matrix.Weight
	for i := lo; i < hi; i++ {
		if i == k {
			continue
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if row, err = d.Row(i); err != nil {
			return err
		}
		if err = e.relax(row, pivot, i, k); err != nil {
			return err
		}
	}

	return nil
}
