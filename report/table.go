// Package report renders batch summaries as tables in CSV, JSON, YAML or
// aligned text, and exports per-event features.
package report

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
)

// Columns are the table headers in output order.
var Columns = []string{
	"Condition",
	"Stimulus Phase",
	"Mean Ripple Duration",
	"Filename",
	"Time High Theta (Per Second)",
	"Mean Ratio",
	"Mean Theta Z-score",
	"Number of Ripples",
	"Mean Ripple Frequency (Hz)",
	"Max SPW Envelope Value",
	"Mean Theta Envelope Value",
	"Min Deflections",
	"Ripple Envelope Value",
	"Mean Spiking Value",
}

// Table is a list of summaries ordered by condition, then filename.
type Table struct {
	Rows []pipeline.Summary
}

// NewTable copies rows and sorts them.
func NewTable(rows []pipeline.Summary) *Table {
	t := &Table{Rows: slices.Clone(rows)}
	slices.SortStableFunc(t.Rows, func(a, b pipeline.Summary) int {
		if c := cmp.Compare(a.Condition, b.Condition); c != 0 {
			return c
		}
		return cmp.Compare(a.Filename, b.Filename)
	})
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Conditions returns the conditions present, in table order.
func (t *Table) Conditions() []pipeline.Condition {
	var out []pipeline.Condition
	for _, r := range t.Rows {
		if len(out) == 0 || out[len(out)-1] != r.Condition {
			out = append(out, r.Condition)
		}
	}
	return out
}

// Group returns the rows of one condition.
func (t *Table) Group(c pipeline.Condition) []pipeline.Summary {
	var out []pipeline.Summary
	for _, r := range t.Rows {
		if r.Condition == c {
			out = append(out, r)
		}
	}
	return out
}

// record formats a row in Columns order with precision digits after the
// decimal point; a negative precision prints the shortest exact form.
func record(r pipeline.Summary, precision int) []string {
	f := func(v float64) string { return formatFloat(v, precision) }
	return []string{
		r.Condition.String(),
		r.Phase.String(),
		f(r.MeanDuration),
		r.Filename,
		f(r.LowThetaPerSecond),
		f(r.MeanRatio),
		f(r.MeanThetaZ),
		strconv.Itoa(r.RippleCount),
		f(r.MeanFrequency),
		f(r.MaxSPWEnvelope),
		f(r.MeanThetaEnvelope),
		f(r.MinDeflections),
		f(r.RippleEnvelope),
		f(r.MeanSpike),
	}
}

func formatFloat(v float64, precision int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Format selects a Write encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. "table" is accepted for text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "table":
		return FormatText, nil
	}
	return "", fmt.Errorf("report: unknown format %q", s)
}
