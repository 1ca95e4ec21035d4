package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/conv"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/design/pass"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/testutil"
)

func rms(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s / float64(len(x)))
}

func TestBandpass_PassesInBandRejectsOutOfBand(t *testing.T) {
	const fs = 1000
	in := testutil.Sine(150, fs, 1, 0, 4000)
	out, err := Bandpass(in, 120, 200, fs, 3)
	if err != nil {
		t.Fatal(err)
	}
	if r := rms(out[500:3500]) / rms(in[500:3500]); math.Abs(r-1) > 0.05 {
		t.Fatalf("in-band rms ratio = %v, want ~1", r)
	}

	low := testutil.Sine(8, fs, 1, 0, 4000)
	out, err = Bandpass(low, 120, 200, fs, 3)
	if err != nil {
		t.Fatal(err)
	}
	if r := rms(out[500:3500]); r > 1e-4 {
		t.Fatalf("8 Hz leak rms = %v", r)
	}
}

func TestBandpass_ZeroPhaseSine(t *testing.T) {
	const fs = 1000
	in := testutil.Sine(10, fs, 1, 0, 5000)
	out, err := Bandpass(in, 4, 20, fs, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Away from the edges a zero-phase filter reproduces the input phase.
	g := passGain(t, 10)
	var maxErr float64
	for i := 1000; i < 4000; i++ {
		maxErr = max(maxErr, math.Abs(out[i]-in[i]*g))
	}
	if maxErr > 0.02 {
		t.Fatalf("max deviation from scaled input = %v", maxErr)
	}
}

func passGain(t *testing.T, freq float64) float64 {
	t.Helper()
	f, err := NewBandpass(4, 20, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}
	var h complex128 = 1
	for _, c := range f.Sections() {
		h *= c.Response(freq, 1000)
	}
	return real(h)*real(h) + imag(h)*imag(h)
}

func TestBandstop_RemovesNotch(t *testing.T) {
	const fs = 1000
	hum := testutil.Sine(50, fs, 1, 0, 6000)
	out, err := Bandstop(hum, 45, 55, fs, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r := rms(out[1000:5000]); r > 0.05 {
		t.Fatalf("residual 50 Hz rms = %v", r)
	}
}

func gaussianPulse(n, center int, sigma float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		d := float64(i-center) / sigma
		x[i] = math.Exp(-d * d / 2)
	}
	return x
}

func TestSymmetricPulseHasNoLag(t *testing.T) {
	const fs = 1000
	const n, center = 2001, 1000
	pulse := gaussianPulse(n, center, 15)

	cases := []struct {
		name   string
		filter func([]float64) ([]float64, error)
	}{
		{"bandstop", func(x []float64) ([]float64, error) { return Bandstop(x, 45, 55, fs, 3) }},
		{"notch-order-1", func(x []float64) ([]float64, error) { return Bandstop(x, 45, 55, fs, 1) }},
		{"bandpass", func(x []float64) ([]float64, error) { return Bandpass(x, 4, 20, fs, 2) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := c.filter(pulse)
			if err != nil {
				t.Fatal(err)
			}
			lag, err := conv.PeakLag(out, pulse)
			if err != nil {
				t.Fatal(err)
			}
			if lag != 0 {
				t.Fatalf("lag = %d, want 0", lag)
			}
			for k := 1; k < 300; k++ {
				if d := math.Abs(out[center+k] - out[center-k]); d > 1e-6 {
					t.Fatalf("asymmetric at ±%d: %v vs %v", k, out[center+k], out[center-k])
				}
			}
		})
	}
}

func TestInvalidBandWrapsSentinel(t *testing.T) {
	if _, err := Bandpass(nil, 200, 120, 1000, 3); !errors.Is(err, pass.ErrInvalidBand) {
		t.Fatalf("err = %v, want ErrInvalidBand", err)
	}
	if _, err := NewBandstop(10, 20, 1000, 0); !errors.Is(err, pass.ErrInvalidOrder) {
		t.Fatalf("err = %v, want ErrInvalidOrder", err)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	f, err := NewBandpass(120, 200, 1000, 3)
	if err != nil {
		t.Fatal(err)
	}
	in := testutil.GaussianNoise(3, 1, 256)
	orig := append([]float64(nil), in...)
	out := f.Apply(in)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	testutil.RequireSliceNearlyEqual(t, in, orig, 0)
}

func TestCascade(t *testing.T) {
	bp, err := NewBandpass(20, 200, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}
	notch, err := NewBandstop(45, 55, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}

	x := testutil.GaussianNoise(11, 1, 512)
	got := Cascade{bp, notch}.Apply(x)
	want := notch.Apply(bp.Apply(x))
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	empty := Cascade(nil).Apply(x)
	testutil.RequireSliceNearlyEqual(t, empty, x, 0)
	empty[0]++
	if empty[0] == x[0] {
		t.Fatal("empty cascade aliased input")
	}
}

func TestFilterString(t *testing.T) {
	f, err := NewBandpass(120, 200, 1000, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "bandpass 120-200 Hz order 3 @ 1000 Hz"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
