// SPDX-License-Identifier: MIT
// Package: apsp
//
// Verify: the end-to-end check. One input graph, two independent clones,
// the sequential kernel on one and the parallel kernel on the other (one
// after another, never concurrently), then Compare.

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

const opVerify = "Verify"

// Result is the outcome of one Verify run.
type Result struct {
	N          int           `yaml:"size"`
	Workers    int           `yaml:"workers"`
	Partition  string        `yaml:"partition"`
	Sequential time.Duration `yaml:"sequential"`
	Parallel   time.Duration `yaml:"parallel"`
	Mismatch   *Mismatch     `yaml:"mismatch,omitempty"`

	// Final matrices, owned by the caller; read-only by convention.
	SequentialDist *matrix.Distance `yaml:"-"`
	ParallelDist   *matrix.Distance `yaml:"-"`
}

// OK reports whether both kernels produced identical matrices.
func (r *Result) OK() bool { return r.Mismatch == nil }

// Speedup is Sequential/Parallel wall time, or 0 if Parallel is zero.
func (r *Result) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}

	return float64(r.Sequential) / float64(r.Parallel)
}

// Verify clones g twice, runs Sequential on the first clone, then Parallel
// on the second, and compares them. g itself is never mutated.
//
// A mismatch is not an error: it is reported in Result.Mismatch. Errors are
// reserved for invalid input, overflow, worker failure and ErrAborted.
func (e *Engine) Verify(ctx context.Context, g *matrix.Distance) (*Result, error) {
	if err := matrix.ValidatePrecondition(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opVerify, err)
	}

	ctx, span := tracer.Start(ctx, "apsp.Verify",
		trace.WithAttributes(
			attribute.Int("n", g.N()),
			attribute.Int("workers", e.workers),
		),
	)
	defer span.End()

	res := &Result{
		N:              g.N(),
		Workers:        e.workers,
		Partition:      e.partition.String(),
		SequentialDist: g.Clone(),
		ParallelDist:   g.Clone(),
	}

	fail := func(err error) (*Result, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", opVerify, err)
	}

	start := time.Now()
	if err := e.Sequential(ctx, res.SequentialDist); err != nil {
		return fail(err)
	}
	res.Sequential = time.Since(start)

	start = time.Now()
	if err := e.Parallel(ctx, res.ParallelDist); err != nil {
		return fail(err)
	}
	res.Parallel = time.Since(start)

	mm, err := e.Compare(ctx, res.SequentialDist, res.ParallelDist)
	if err != nil {
		return fail(err)
	}
	res.Mismatch = mm

	span.SetAttributes(
		attribute.Int64("sequential_ms", res.Sequential.Milliseconds()),
		attribute.Int64("parallel_ms", res.Parallel.Milliseconds()),
		attribute.Bool("match", res.OK()),
	)
	span.SetStatus(codes.Ok, "")

	e.log.Info("verify finished",
		slog.Int("n", res.N),
		slog.Duration("sequential", res.Sequential),
		slog.Duration("parallel", res.Parallel),
		slog.Bool("match", res.OK()),
	)

	return res, nil
}
