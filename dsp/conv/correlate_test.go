package conv

import (
	"errors"
	"testing"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/testutil"
)

func TestCorrelate_MatchesDirect(t *testing.T) {
	cases := []struct{ n, m int }{
		{1, 1}, {5, 3}, {3, 5}, {64, 64}, {100, 37}, {257, 1000},
	}
	for _, tc := range cases {
		a := testutil.GaussianNoise(int64(tc.n), 1, tc.n)
		b := testutil.GaussianNoise(int64(tc.m+1000), 1, tc.m)

		fast, err := Correlate(a, b)
		if err != nil {
			t.Fatal(err)
		}
		ref, err := CorrelateDirect(a, b)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, fast, ref, 1e-9)
	}
}

func TestCorrelateDirect_KnownValues(t *testing.T) {
	got, err := CorrelateDirect([]float64{1, 2, 3}, []float64{0, 1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	// lags -2..2
	want := []float64{0.5, 2, 3.5, 3, 0}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestPeakLag(t *testing.T) {
	b := testutil.GaussianNoise(9, 1, 200)
	for _, delay := range []int{0, 3, 17} {
		a := make([]float64, len(b))
		copy(a[delay:], b[:len(b)-delay])

		lag, err := PeakLag(a, b)
		if err != nil {
			t.Fatal(err)
		}
		if lag != delay {
			t.Fatalf("delay %d: PeakLag = %d", delay, lag)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
	if _, err := CorrelateDirect([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
	if _, err := PeakLag(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
	if idx, _ := FindPeak(nil); idx != -1 {
		t.Fatalf("FindPeak(nil) = %d", idx)
	}
}

func TestLagIndexRoundTrip(t *testing.T) {
	for lag := -4; lag <= 4; lag++ {
		if got := LagFromIndex(IndexFromLag(lag, 5), 5); got != lag {
			t.Fatalf("lag %d round-tripped to %d", lag, got)
		}
	}
}
