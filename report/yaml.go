// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/apsp"
)

const yamlIndent = 2

// YAML writes one YAML document per Report/ReportSummary call, separated by
// "---". It is not safe for concurrent use.
type YAML struct {
	w    io.Writer
	docs int
}

// Compile-time assertion.
var _ Reporter = (*YAML)(nil)

// NewYAML returns a YAML reporter writing to w.
func NewYAML(w io.Writer) *YAML { return &YAML{w: w} }

// resultDoc is the YAML shape of a single result.
type resultDoc struct {
	Kind   string       `yaml:"kind"`
	Match  bool         `yaml:"match"`
	Result *apsp.Result `yaml:"result"`
}

// summaryDoc is the YAML shape of a summary.
type summaryDoc struct {
	Kind    string  `yaml:"kind"`
	Match   bool    `yaml:"match"`
	Summary Summary `yaml:"summary"`
}

// Report encodes r as a "result" document.
func (y *YAML) Report(r *apsp.Result) error {
	if r == nil {
		return ErrNilResult
	}

	return y.encode(resultDoc{Kind: "result", Match: r.OK(), Result: r})
}

// ReportSummary encodes s as a "summary" document.
func (y *YAML) ReportSummary(s Summary) error {
	if s.Runs == 0 {
		return ErrNoRuns
	}

	return y.encode(summaryDoc{Kind: "summary", Match: s.OK(), Summary: s})
}

func (y *YAML) encode(v interface{}) error {
	if y.docs > 0 {
		if _, err := io.WriteString(y.w, "---\n"); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	y.docs++

	return nil
}
