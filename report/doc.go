// SPDX-License-Identifier: MIT

// Package report renders verification results.
//
// Two Reporters are provided:
//
//   - Text: short human-readable lines (timings, speedup, verdict or the
//     first mismatching cell), with cell counts and matrix memory humanized.
//   - YAML: one YAML document per result, for scripting and diffing runs.
//
// Summarize folds repeated runs of the same configuration into per-kernel
// statistics (mean, stddev, median, min, max); both reporters render it via
// ReportSummary.
package report
