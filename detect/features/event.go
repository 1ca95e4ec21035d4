package features

// Event holds the features of one ripple. Amplitude fields are NaN when
// their window holds no samples.
type Event struct {
	Onset, Offset int

	// Duration is Offset-Onset in samples.
	Duration int
	// Frequency is the dominant ripple-band frequency in Hz.
	Frequency float64
	// RippleEnvelope is the mean ripple envelope over the padded event.
	RippleEnvelope float64
	// MaxSharpWave and MeanSharpWave summarise the sharp-wave envelope
	// inside the event.
	MaxSharpWave  float64
	MeanSharpWave float64
	// MeanTheta averages the theta envelope in the windows just before and
	// just after the event.
	MeanTheta float64
	// MeanSpike is the mean firing rate inside the event.
	MeanSpike float64
	// Ratio and ThetaZ are the session series averaged inside the event.
	Ratio  float64
	ThetaZ float64
}

// Events is a list of events with column accessors.
type Events []Event

func (es Events) column(f func(Event) float64) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = f(e)
	}
	return out
}

// Durations returns the event durations in samples.
func (es Events) Durations() []float64 {
	return es.column(func(e Event) float64 { return float64(e.Duration) })
}

// Frequencies returns the dominant ripple frequencies.
func (es Events) Frequencies() []float64 {
	return es.column(func(e Event) float64 { return e.Frequency })
}

// RippleEnvelopes returns the padded ripple envelope means.
func (es Events) RippleEnvelopes() []float64 {
	return es.column(func(e Event) float64 { return e.RippleEnvelope })
}

// MaxSharpWaves returns the per-event sharp-wave envelope maxima.
func (es Events) MaxSharpWaves() []float64 {
	return es.column(func(e Event) float64 { return e.MaxSharpWave })
}

// MeanSharpWaves returns the per-event sharp-wave envelope means.
func (es Events) MeanSharpWaves() []float64 {
	return es.column(func(e Event) float64 { return e.MeanSharpWave })
}

// MeanThetas returns the surrounding theta envelope means.
func (es Events) MeanThetas() []float64 {
	return es.column(func(e Event) float64 { return e.MeanTheta })
}

// MeanSpikes returns the in-event firing-rate means.
func (es Events) MeanSpikes() []float64 {
	return es.column(func(e Event) float64 { return e.MeanSpike })
}

// Ratios returns the in-event sharp-wave/theta ratio means.
func (es Events) Ratios() []float64 {
	return es.column(func(e Event) float64 { return e.Ratio })
}

// ThetaZs returns the in-event theta z-score means.
func (es Events) ThetaZs() []float64 {
	return es.column(func(e Event) float64 { return e.ThetaZ })
}

// Filter returns the events for which keep returns true.
func (es Events) Filter(keep func(Event) bool) Events {
	out := Events{}
	for _, e := range es {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
