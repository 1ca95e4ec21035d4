package ripple

import (
	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/edges"
	stats "github.com/seancoady-ox/SWRS-SLab-HT2025/stats/time"
)

// Envelope returns the z-scored, box-smoothed power of a band-passed
// signal. The box spans width samples.
func Envelope(filtered []float64, width int) []float64 {
	return stats.ZScore(stats.MovingAverage(stats.Square(filtered), width))
}

// DropShort removes events shorter than minLen samples.
func DropShort(s edges.Set, minLen int) edges.Set {
	return s.Keep(func(i int) bool { return s.Offsets[i]-s.Onsets[i] >= minLen })
}

// MergeGaps joins neighbouring events separated by fewer than minGap
// samples. The first onset and the last offset are always kept, so merging
// an already merged set changes nothing.
func MergeGaps(s edges.Set, minGap int) edges.Set {
	n := s.Len()
	out := edges.Set{Onsets: []int{}, Offsets: []int{}}
	if n == 0 {
		return out
	}

	out.Onsets = append(out.Onsets, s.Onsets[0])
	for i := 0; i+1 < n; i++ {
		if s.Onsets[i+1]-s.Offsets[i] >= minGap {
			out.Offsets = append(out.Offsets, s.Offsets[i])
			out.Onsets = append(out.Onsets, s.Onsets[i+1])
		}
	}
	out.Offsets = append(out.Offsets, s.Offsets[n-1])
	return out
}

// FilterDuration keeps events with minLen < duration < maxLen samples.
func FilterDuration(s edges.Set, minLen, maxLen int) edges.Set {
	return s.Keep(func(i int) bool {
		d := s.Offsets[i] - s.Onsets[i]
		return d > minLen && d < maxLen
	})
}

// FilterMeanAmplitude keeps events whose mean envelope over the interior
// [onset+1, offset-1) exceeds thr. Events without interior samples are
// dropped.
func FilterMeanAmplitude(s edges.Set, envelope []float64, thr float64) edges.Set {
	return s.Keep(func(i int) bool {
		return stats.MeanRange(envelope, s.Onsets[i]+1, s.Offsets[i]-1) > thr
	})
}

// FilterPeakAmplitude keeps events whose envelope maximum over
// [onset, offset) exceeds thr.
func FilterPeakAmplitude(s edges.Set, envelope []float64, thr float64) edges.Set {
	return s.Keep(func(i int) bool {
		return stats.MaxRange(envelope, s.Onsets[i], s.Offsets[i]) > thr
	})
}
