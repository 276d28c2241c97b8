// SPDX-License-Identifier: MIT

package report

import "github.com/katalvlaran/apsp/apsp"

// Reporter renders results and summaries.
type Reporter interface {
	Report(r *apsp.Result) error
	ReportSummary(s Summary) error
}
