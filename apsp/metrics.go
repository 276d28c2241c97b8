// SPDX-License-Identifier: MIT

package apsp

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter. They resolve against the global providers
// at call time, so telemetry.Init may run after this package is loaded.
var (
	tracer = otel.Tracer("apsp")
	meter  = otel.Meter("apsp")
)

var (
	kernelLatency metric.Float64Histogram
	pivotPasses   metric.Int64Counter
	mismatchTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		kernelLatency, err = meter.Float64Histogram(
			"apsp_kernel_duration_seconds",
			metric.WithDescription("Wall time of one shortest-path kernel run"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pivotPasses, err = meter.Int64Counter(
			"apsp_pivot_passes_total",
			metric.WithDescription("Completed pivot passes across all kernel runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		mismatchTotal, err = meter.Int64Counter(
			"apsp_mismatch_total",
			metric.WithDescription("Compare calls that found a differing cell"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordKernel records one kernel run. Pivot passes are only counted for
// runs that completed all n pivots.
func recordKernel(ctx context.Context, kernel string, d time.Duration, n int, runErr error) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("kernel", kernel),
		attribute.Bool("success", runErr == nil),
	)
	kernelLatency.Record(ctx, d.Seconds(), attrs)
	if runErr == nil {
		pivotPasses.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kernel", kernel)))
	}
}

// recordMismatch counts one failed equivalence check.
func recordMismatch(ctx context.Context) {
	if err := initMetrics(); err != nil {
		return
	}
	mismatchTotal.Add(ctx, 1)
}
