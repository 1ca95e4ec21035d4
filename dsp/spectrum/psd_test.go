package spectrum

import (
	"math"
	"testing"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/testutil"
)

func TestPeriodicHann(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, PeriodicHann(4), []float64{0, 0.5, 1, 0.5}, 1e-15)
}

func TestSegmentPSD_Bins(t *testing.T) {
	pxx, freqs := SegmentPSD(make([]float64, 100), 1000)
	if len(pxx) != 51 || len(freqs) != 51 {
		t.Fatalf("len = %d/%d, want 51", len(pxx), len(freqs))
	}
	if freqs[1] != 10 || freqs[50] != 500 {
		t.Fatalf("freqs = %v ... %v", freqs[1], freqs[50])
	}
}

func TestDominantFrequency(t *testing.T) {
	cases := []struct {
		name   string
		freq   float64
		n      int
		offset float64
	}{
		{"ripple", 150, 100, 0},
		{"odd length", 180, 73, 0},
		{"with offset", 130, 120, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := testutil.Sine(tc.freq, 1000, 1, 0.3, tc.n)
			for i := range x {
				x[i] += tc.offset
			}
			got := DominantFrequency(x, 1000)
			binWidth := 1000 / float64(tc.n)
			if math.Abs(got-tc.freq) > binWidth {
				t.Fatalf("DominantFrequency = %v, want %v ± %v", got, tc.freq, binWidth)
			}
		})
	}
}

func TestDominantFrequency_NoiseBurst(t *testing.T) {
	x := testutil.GaussianNoise(21, 0.5, 100)
	testutil.AddBurst(x, 0, 100, 150, 1000, 5)
	if got := DominantFrequency(x, 1000); math.Abs(got-150) > 10 {
		t.Fatalf("DominantFrequency = %v, want 150±10", got)
	}
}

func TestDominantFrequency_Short(t *testing.T) {
	if !math.IsNaN(DominantFrequency(nil, 1000)) || !math.IsNaN(DominantFrequency([]float64{1}, 1000)) {
		t.Fatal("short input should give NaN")
	}
}
