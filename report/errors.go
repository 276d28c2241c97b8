// SPDX-License-Identifier: MIT

package report

import "errors"

// ErrNilResult is returned when a Reporter is handed a nil result.
var ErrNilResult = errors.New("report: nil result")

// ErrNoRuns is returned by ReportSummary for an empty Summary.
var ErrNoRuns = errors.New("report: summary has no runs")
