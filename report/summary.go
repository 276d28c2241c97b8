// SPDX-License-Identifier: MIT
// Package: report
//
// Purpose:
//   - Aggregate repeated Verify results into per-kernel timing statistics.

package report

import (
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/apsp/apsp"
)

// KernelStats describes the wall times of one kernel across runs.
type KernelStats struct {
	Mean   time.Duration `yaml:"mean"`
	StdDev time.Duration `yaml:"stddev"`
	Median time.Duration `yaml:"median"`
	Min    time.Duration `yaml:"min"`
	Max    time.Duration `yaml:"max"`
}

// Summary is the aggregate of several results for the same input size and
// engine configuration.
type Summary struct {
	Runs       int         `yaml:"runs"`
	N          int         `yaml:"size"`
	Workers    int         `yaml:"workers"`
	Partition  string      `yaml:"partition"`
	Mismatches int         `yaml:"mismatches"`
	Sequential KernelStats `yaml:"sequential"`
	Parallel   KernelStats `yaml:"parallel"`
	// Speedup is mean(sequential) / mean(parallel); 0 when undefined.
	Speedup float64 `yaml:"speedup"`
}

// OK reports whether every summarized run matched.
func (s Summary) OK() bool { return s.Mismatches == 0 }

// Summarize folds results into a Summary. Nil entries are skipped.
// N, Workers and Partition are taken from the first non-nil result.
func Summarize(results []*apsp.Result) Summary {
	var (
		sum       Summary
		seq, par  []float64
		firstSeen bool
	)
	for _, r := range results {
		if r == nil {
			continue
		}
		if !firstSeen {
			sum.N, sum.Workers, sum.Partition = r.N, r.Workers, r.Partition
			firstSeen = true
		}
		sum.Runs++
		if !r.OK() {
			sum.Mismatches++
		}
		seq = append(seq, r.Sequential.Seconds())
		par = append(par, r.Parallel.Seconds())
	}
	if sum.Runs == 0 {
		return sum
	}

	sum.Sequential = kernelStats(seq)
	sum.Parallel = kernelStats(par)
	if sum.Parallel.Mean > 0 {
		sum.Speedup = float64(sum.Sequential.Mean) / float64(sum.Parallel.Mean)
	}

	return sum
}

// kernelStats computes the statistics of xs (seconds). len(xs) ≥ 1.
func kernelStats(xs []float64) KernelStats {
	s := stats.Sample{Xs: xs}
	lo, hi := s.Bounds()
	ks := KernelStats{
		Mean:   seconds(s.Mean()),
		Median: seconds(s.Quantile(0.5)),
		Min:    seconds(lo),
		Max:    seconds(hi),
	}
	// A single run has no spread.
	if len(xs) > 1 {
		ks.StdDev = seconds(s.StdDev())
	}

	return ks
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
