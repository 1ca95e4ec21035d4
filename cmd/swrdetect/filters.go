package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/conv"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/biquad"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/design/pass"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/zerophase"
)

// toneLength is the length of the tone burst used to measure filter lag.
const toneLength = 2048

type bandSpec struct {
	name      string
	low, high float64
	order     int
	stop      bool
}

type namedFilter struct {
	name string
	f    *zerophase.Filter
}

func newFiltersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the designed filters and their zero-phase behaviour",
		Long: `Filters designs every band used by detection and feature extraction and
prints, per band: the number of second-order sections, the largest pole
radius, the forward-backward gain at the band edges and centre, and the
lag between a centre-frequency tone burst and its filtered copy, once for
a single causal pass and once for the zero-phase pass (always 0).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := a.designFilters()
			if err != nil {
				return err
			}
			return printFilters(cmd.OutOrStdout(), filters)
		},
	}
}

func (a *app) designFilters() ([]namedFilter, error) {
	rc := a.cfg.RippleConfig()
	fc := a.cfg.FeaturesConfig()
	fs := a.cfg.SampleRate

	specs := []bandSpec{
		{"detector", rc.LowHz, rc.HighHz, rc.Order, false},
		{"ripple", fc.Ripple.LowHz, fc.Ripple.HighHz, fc.Ripple.Order, false},
		{"sharp-wave", fc.SharpWave.LowHz, fc.SharpWave.HighHz, fc.SharpWave.Order, false},
		{"theta", fc.Theta.LowHz, fc.Theta.HighHz, fc.Theta.Order, false},
	}
	if rc.NotchOrder > 0 {
		specs = append(specs, bandSpec{"notch", rc.NotchLowHz, rc.NotchHighHz, rc.NotchOrder, true})
	}

	out := make([]namedFilter, 0, len(specs))
	for _, s := range specs {
		design := zerophase.NewBandpass
		if s.stop {
			design = zerophase.NewBandstop
		}
		f, err := design(s.low, s.high, fs, s.order)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		out = append(out, namedFilter{s.name, f})
	}
	return out, nil
}

// measureLag filters a Hann-tapered tone burst occupying the middle half
// of a zero buffer and returns the lag of the output against the input.
func measureLag(apply func([]float64) []float64, freq, fs float64) (int, error) {
	tone := make([]float64, toneLength)
	start, width := toneLength/4, toneLength/2
	for i := range width {
		taper := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(width-1))
		tone[start+i] = taper * math.Sin(2*math.Pi*freq*float64(i)/fs)
	}
	return conv.PeakLag(apply(tone), tone)
}

func printFilters(w io.Writer, filters []namedFilter) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Band\tDesign\tSections\tMax Pole Radius\tStable\tLow [dB]\tCentre [dB]\tHigh [dB]\tCentre [Hz]\tCausal Lag\tLag [samples]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t--------\t---------------\t------\t--------\t-----------\t---------\t-----------\t----------\t-------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, nf := range filters {
		f := nf.f
		sections := f.Sections()
		chain := biquad.NewChain(sections)
		centre := pass.CenterFrequency(f.Low, f.High, f.SampleRate)

		toneFreq := centre
		if f.Kind == zerophase.BandStop {
			toneFreq = f.Low / 2
		}
		causal, err := measureLag(chain.Filter, toneFreq, f.SampleRate)
		if err != nil {
			return fmt.Errorf("%s: %w", nf.name, err)
		}
		lag, err := measureLag(f.Apply, toneFreq, f.SampleRate)
		if err != nil {
			return fmt.Errorf("%s: %w", nf.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.6f\t%t\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%d\n",
			nf.name,
			f,
			len(sections),
			biquad.MaxPoleRadius(sections),
			biquad.Stable(sections),
			chain.ZeroPhaseDB(f.Low, f.SampleRate),
			chain.ZeroPhaseDB(centre, f.SampleRate),
			chain.ZeroPhaseDB(f.High, f.SampleRate),
			centre,
			causal,
			lag,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
