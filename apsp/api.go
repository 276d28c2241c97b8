// SPDX-License-Identifier: MIT
// Package: apsp
//
// api.go - Engine type and the package-level convenience entry points.

package apsp

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/apsp/matrix"
)

// rowRelaxer relaxes one row against the pivot row for pivot k.
// It is a field on Engine so tests can inject failures into a single row.
type rowRelaxer func(row, pivot []matrix.Weight, i, k int) error

// Engine runs the sequential and parallel kernels with a fixed
// configuration. An Engine is immutable after New and safe for concurrent
// use on distinct matrices.
type Engine struct {
	workers   int
	partition Partition
	log       *slog.Logger
	relax     rowRelaxer
}

// New returns an Engine with defaults (GOMAXPROCS workers, row tasks,
// slog.Default()) overridden by opts in order.
func New(opts ...Option) *Engine {
	e := &Engine{
		workers:   defaultWorkers(),
		partition: PartitionRows,
		log:       slog.Default(),
		relax:     relaxRow,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Workers returns the configured pool size.
func (e *Engine) Workers() int { return e.workers }

// Partition returns the configured partitioning strategy.
func (e *Engine) Partition() Partition { return e.partition }

// Sequential runs the reference kernel on d with a default Engine.
func Sequential(d *matrix.Distance) error {
	return New().Sequential(context.Background(), d)
}

// Parallel runs the parallel kernel on d with `workers` goroutines.
// workers < 1 selects the default pool size.
func Parallel(d *matrix.Distance, workers int) error {
	var opts []Option
	if workers >= 1 {
		opts = append(opts, WithWorkers(workers))
	}

	return New(opts...).Parallel(context.Background(), d)
}
