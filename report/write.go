package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
)

// Write renders t in format.
func (t *Table) Write(w io.Writer, format Format, precision int) error {
	switch format {
	case FormatText:
		return t.WriteText(w, precision)
	case FormatCSV:
		return t.WriteCSV(w)
	case FormatJSON:
		return t.WriteJSON(w)
	case FormatYAML:
		return t.WriteYAML(w)
	}
	return fmt.Errorf("report: unknown format %q", format)
}

// WriteCSV writes a header row and one row per summary at full precision.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(record(r, -1)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes an aligned table with one block per condition.
func (t *Table) WriteText(w io.Writer, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rule := make([]string, len(Columns))
	for i, c := range Columns {
		rule[i] = strings.Repeat("-", len(c))
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", strings.Join(Columns, "\t"), strings.Join(rule, "\t")); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for i, c := range t.Conditions() {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
		for _, r := range t.Group(c) {
			if _, err := fmt.Fprintln(tw, strings.Join(record(r, precision), "\t")); err != nil {
				return fmt.Errorf("report: write row: %w", err)
			}
		}
	}
	return tw.Flush()
}

// jsonRow mirrors pipeline.Summary with NaN means encoded as null.
type jsonRow struct {
	Filename          string             `json:"filename"`
	Condition         pipeline.Condition `json:"condition"`
	Phase             pipeline.Phase     `json:"phase"`
	LowThetaPerSecond *float64           `json:"low_theta_per_second"`
	MeanDuration      *float64           `json:"mean_duration"`
	MeanRatio         *float64           `json:"mean_ratio"`
	MeanThetaZ        *float64           `json:"mean_theta_z"`
	RippleCount       int                `json:"ripple_count"`
	MeanFrequency     *float64           `json:"mean_frequency"`
	MaxSPWEnvelope    *float64           `json:"max_spw_envelope"`
	MeanThetaEnvelope *float64           `json:"mean_theta_envelope"`
	MinDeflections    *float64           `json:"min_deflections"`
	RippleEnvelope    *float64           `json:"ripple_envelope"`
	MeanSpike         *float64           `json:"mean_spike"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// WriteJSON writes the rows as an indented JSON array.
func (t *Table) WriteJSON(w io.Writer) error {
	rows := make([]jsonRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = jsonRow{
			Filename:          r.Filename,
			Condition:         r.Condition,
			Phase:             r.Phase,
			LowThetaPerSecond: finite(r.LowThetaPerSecond),
			MeanDuration:      finite(r.MeanDuration),
			MeanRatio:         finite(r.MeanRatio),
			MeanThetaZ:        finite(r.MeanThetaZ),
			RippleCount:       r.RippleCount,
			MeanFrequency:     finite(r.MeanFrequency),
			MaxSPWEnvelope:    finite(r.MaxSPWEnvelope),
			MeanThetaEnvelope: finite(r.MeanThetaEnvelope),
			MinDeflections:    finite(r.MinDeflections),
			RippleEnvelope:    finite(r.RippleEnvelope),
			MeanSpike:         finite(r.MeanSpike),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteYAML writes the rows as a YAML sequence. NaN is encoded as .nan.
func (t *Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Rows); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return enc.Close()
}

// EventColumns are the headers written by WriteEvents.
var EventColumns = []string{
	"onset", "offset", "duration", "frequency", "ripple_envelope",
	"max_spw_envelope", "mean_spw_envelope", "mean_theta_envelope",
	"mean_spike", "ratio", "theta_z", "valid",
}

// WriteEvents writes one CSV row per event. valid reports whether an event
// passed the validity rule and may be nil.
func WriteEvents(w io.Writer, events features.Events, valid func(features.Event) bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EventColumns); err != nil {
		return err
	}
	for _, ev := range events {
		ok := valid != nil && valid(ev)
		row := []string{
			fmt.Sprint(ev.Onset),
			fmt.Sprint(ev.Offset),
			fmt.Sprint(ev.Duration),
			formatFloat(ev.Frequency, -1),
			formatFloat(ev.RippleEnvelope, -1),
			formatFloat(ev.MaxSharpWave, -1),
			formatFloat(ev.MeanSharpWave, -1),
			formatFloat(ev.MeanTheta, -1),
			formatFloat(ev.MeanSpike, -1),
			formatFloat(ev.Ratio, -1),
			formatFloat(ev.ThetaZ, -1),
			fmt.Sprint(ok),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
