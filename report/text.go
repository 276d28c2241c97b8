// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

// weightBytes is the in-memory size of one matrix cell.
const weightBytes = uint64(unsafe.Sizeof(matrix.Weight{}))

// Text writes human-readable lines to w.
type Text struct {
	w io.Writer
}

// Compile-time assertion.
var _ Reporter = (*Text)(nil)

// NewText returns a Text reporter writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Report writes one block per result:
//
//	n=500 (250,000 cells, 3.8 MiB) workers=8 partition=rows
//	sequential: 1.2s
//	parallel:   240ms
//	speedup:    5.00x
//	results match
//
// A mismatch replaces the last line with the first differing cell.
func (t *Text) Report(r *apsp.Result) error {
	if r == nil {
		return ErrNilResult
	}

	var b strings.Builder
	writeHeader(&b, r.N, r.Workers, r.Partition)
	fmt.Fprintf(&b, "sequential: %s\n", round(r.Sequential))
	fmt.Fprintf(&b, "parallel:   %s\n", round(r.Parallel))
	fmt.Fprintf(&b, "speedup:    %.2fx\n", r.Speedup())
	if r.OK() {
		b.WriteString("results match\n")
	} else {
		fmt.Fprintf(&b, "MISMATCH at (%d, %d): sequential=%s parallel=%s\n",
			r.Mismatch.Row, r.Mismatch.Col, r.Mismatch.A, r.Mismatch.B)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

// ReportSummary writes the aggregate of repeated runs.
func (t *Text) ReportSummary(s Summary) error {
	if s.Runs == 0 {
		return ErrNoRuns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "summary over %d runs\n", s.Runs)
	writeHeader(&b, s.N, s.Workers, s.Partition)
	writeStats(&b, "sequential", s.Sequential)
	writeStats(&b, "parallel", s.Parallel)
	fmt.Fprintf(&b, "speedup:    %.2fx (mean)\n", s.Speedup)
	if s.OK() {
		b.WriteString("all runs match\n")
	} else {
		fmt.Fprintf(&b, "MISMATCH in %d of %d runs\n", s.Mismatches, s.Runs)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func writeHeader(b *strings.Builder, n, workers int, partition string) {
	cells := uint64(n) * uint64(n)
	fmt.Fprintf(b, "n=%d (%s cells, %s) workers=%d partition=%s\n",
		n, humanize.Comma(int64(cells)), humanize.IBytes(cells*weightBytes), workers, partition)
}

func writeStats(b *strings.Builder, name string, ks KernelStats) {
	fmt.Fprintf(b, "%-11s mean=%s stddev=%s median=%s min=%s max=%s\n",
		name+":", round(ks.Mean), round(ks.StdDev), round(ks.Median), round(ks.Min), round(ks.Max))
}

// round trims durations to a readable precision.
func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}
