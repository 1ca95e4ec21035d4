package recording

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
	"gonum.org/v1/gonum/floats"
)

const edfChunk = 4096

// ReadEDF reads the signals at lfpSignal and rateSignal from an EDF/EDF+
// stream.
func ReadEDF(r io.ReadSeeker, lfpSignal, rateSignal int) (lfp, rate []float64, err error) {
	er, err := edf.Open(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if lfp, err = readSignal(er, lfpSignal); err != nil {
		return nil, nil, fmt.Errorf("lfp signal %d: %w", lfpSignal, err)
	}
	if rate, err = readSignal(er, rateSignal); err != nil {
		return nil, nil, fmt.Errorf("rate signal %d: %w", rateSignal, err)
	}
	return lfp, rate, nil
}

func readSignal(er *edf.Reader, index int) ([]float64, error) {
	sr, err := er.Signal(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingColumn, err)
	}

	var out []float64
	buf := make([]float64, edfChunk)
	for {
		n, err := sr.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
}

// WriteEDF writes lfp and rate as a two-signal EDF file with one-second data
// records. The final partial record is zero-padded. Physical ranges are
// taken from the data; EDF stores 16-bit samples, so values round-trip to
// within
// (max-min)/65535. Limits beyond ±99999 are not representable.
func WriteEDF(w io.WriteSeeker, lfp, rate []float64, sampleRate float64) error {
	if len(lfp) != len(rate) {
		return fmt.Errorf("%w: lfp has %d samples, firing rate %d", ErrMalformed, len(lfp), len(rate))
	}
	perRecord := core.SecondsToSamples(1, sampleRate)
	if perRecord < 1 || 4*perRecord > 61440 {
		return fmt.Errorf("%w: sample rate %g cannot be stored in one-second records", ErrMalformed, sampleRate)
	}

	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "X X X X",
		RecordingID:        "Startdate X X X X",
		StartTime:          time.Now().UTC(),
		DataRecordDuration: time.Second,
		SignalCount:        2,
		Signals: []edf.SignalHeader{
			edfSignal(DefaultLFPColumn, "uV", lfp, perRecord),
			edfSignal("firing_rate", "Hz", rate, perRecord),
		},
	}

	ew, err := edf.Create(w, hdr)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}

	recLFP := make([]float64, perRecord)
	recRate := make([]float64, perRecord)
	for start := 0; start < len(lfp); start += perRecord {
		clear(recLFP)
		clear(recRate)
		copy(recLFP, lfp[start:])
		copy(recRate, rate[start:])
		if err := ew.WriteRecord([][]float64{recLFP, recRate}); err != nil {
			return fmt.Errorf("recording: record at sample %d: %w", start, err)
		}
	}

	return ew.Close()
}

func edfSignal(label, unit string, x []float64, perRecord int) edf.SignalHeader {
	lo, hi := 0.0, 1.0
	if len(x) > 0 {
		lo = math.Min(floats.Min(x), 0)
		hi = math.Max(floats.Max(x), 0)
		// The header stores limits with two decimals.
		lo = math.Floor(lo*100) / 100
		hi = math.Ceil(hi*100) / 100
		if hi == lo {
			hi = lo + 1
		}
	}
	return edf.SignalHeader{
		Label:             label,
		PhysicalDimension: unit,
		PhysicalMin:       lo,
		PhysicalMax:       hi,
		DigitalMin:        math.MinInt16,
		DigitalMax:        math.MaxInt16,
		SamplesPerRecord:  perRecord,
	}
}
