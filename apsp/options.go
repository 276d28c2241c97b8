// SPDX-License-Identifier: MIT
// Package: apsp
//
// Functional options for Engine. Constructors panic only on nonsensical
// values (programmer error); runtime conditions are reported as errors.

package apsp

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Partition selects how the row range of a pivot pass is split across workers.
type Partition int

const (
	// PartitionRows submits one task per row; at most `workers` run at once.
	PartitionRows Partition = iota
	// PartitionBlocks splits [0,n) into `workers` contiguous row blocks,
	// one goroutine per block.
	PartitionBlocks
)

// String returns "rows" or "blocks".
func (p Partition) String() string {
	switch p {
	case PartitionRows:
		return "rows"
	case PartitionBlocks:
		return "blocks"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// ParsePartition maps "rows"/"blocks" to a Partition.
func ParsePartition(s string) (Partition, error) {
	switch s {
	case "rows", "":
		return PartitionRows, nil
	case "blocks":
		return PartitionBlocks, nil
	default:
		return PartitionRows, fmt.Errorf("apsp: unknown partition %q", s)
	}
}

const (
	panicWorkersInvalid   = "apsp: WithWorkers: workers must be >= 1"
	panicPartitionInvalid = "apsp: WithPartition: unknown partition"
	panicLoggerNil        = "apsp: WithLogger: logger must be non-nil"
)

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the maximum number of goroutines relaxing rows
// concurrently within one pivot pass. Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(e *Engine) { e.workers = n }
}

// WithPartition selects row-per-task or row-block partitioning.
// Default: PartitionRows.
func WithPartition(p Partition) Option {
	if p != PartitionRows && p != PartitionBlocks {
		panic(panicPartitionInvalid)
	}

	return func(e *Engine) { e.partition = p }
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(e *Engine) { e.log = l }
}

// defaultWorkers is the pool size when WithWorkers is not given.
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
