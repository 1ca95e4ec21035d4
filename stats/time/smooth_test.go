package time

import (
	"testing"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/testutil"
)

// naiveBox is a direct zero-padded centred box sum for reference.
func naiveBox(x []float64, width int) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		var s float64
		for m := i - width/2; m < i-width/2+width; m++ {
			if m >= 0 && m < len(x) {
				s += x[m]
			}
		}
		out[i] = s / float64(width)
	}
	return out
}

func TestMovingAverage_MatchesNaive(t *testing.T) {
	x := testutil.GaussianNoise(5, 1, 300)
	for _, w := range []int{2, 3, 9, 11, 64, 299, 300, 1000} {
		testutil.RequireSliceNearlyEqual(t, MovingAverage(x, w), naiveBox(x, w), 1e-12)
	}
}

func TestMovingAverage_OddWindowAlignment(t *testing.T) {
	x := make([]float64, 21)
	x[10] = 11
	y := MovingAverage(x, 11)
	for i := range y {
		want := 0.0
		if i >= 5 && i <= 15 {
			want = 1
		}
		if !almostEqual(y[i], want, tol) {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], want)
		}
	}
}

func TestMovingAverage_EvenWindowAlignment(t *testing.T) {
	x := make([]float64, 10)
	x[5] = 4
	y := MovingAverage(x, 4)
	// Window covers [i-2, i+1], so the impulse at 5 reaches i in [4, 7].
	want := []float64{0, 0, 0, 0, 1, 1, 1, 1, 0, 0}
	testutil.RequireSliceNearlyEqual(t, y, want, tol)
}

func TestMovingAverage_EdgesTaper(t *testing.T) {
	y := MovingAverage(testutil.Constant(1, 20), 5)
	if !almostEqual(y[0], 0.6, tol) || !almostEqual(y[10], 1, tol) || !almostEqual(y[19], 0.6, tol) {
		t.Fatalf("edge/centre values = %v %v %v", y[0], y[10], y[19])
	}
}

func TestMovingAverage_Degenerate(t *testing.T) {
	if len(MovingAverage(nil, 5)) != 0 {
		t.Fatal("empty input")
	}
	x := []float64{1, 2, 3}
	y := MovingAverage(x, 0)
	testutil.RequireSliceNearlyEqual(t, y, x, 0)
	y[0] = 9
	if x[0] != 1 {
		t.Fatal("width<=1 aliased input")
	}
}

func TestBoxWidth(t *testing.T) {
	cases := []struct {
		fs   float64
		want int
	}{
		{1250, 11},
		{1000, 9},
		{30000, 264},
		{50, 1},
	}
	for _, tc := range cases {
		if got := BoxWidth(11, 1250, tc.fs); got != tc.want {
			t.Errorf("BoxWidth(fs=%v) = %d, want %d", tc.fs, got, tc.want)
		}
	}
}
