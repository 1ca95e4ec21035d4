package edges

import (
	"errors"
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

var (
	// ErrUnbalanced is returned by Validate when onset and offset counts differ.
	ErrUnbalanced = errors.New("edges: onset/offset count mismatch")

	// ErrUnordered is returned by Validate when pairs are empty, inverted or
	// overlap the next pair.
	ErrUnordered = errors.New("edges: pairs out of order")
)

// Set is an ordered list of half-open [onset, offset) sample ranges.
type Set struct {
	Onsets  []int
	Offsets []int
}

// Len returns the number of onset/offset pairs.
func (s Set) Len() int { return len(s.Onsets) }

// Validate checks the pairing and ordering guarantees of s.
func (s Set) Validate() error {
	if len(s.Onsets) != len(s.Offsets) {
		return fmt.Errorf("%w: %d onsets, %d offsets", ErrUnbalanced, len(s.Onsets), len(s.Offsets))
	}
	for i := range s.Onsets {
		if s.Onsets[i] >= s.Offsets[i] {
			return fmt.Errorf("%w: pair %d is [%d, %d)", ErrUnordered, i, s.Onsets[i], s.Offsets[i])
		}
		if i+1 < len(s.Onsets) && s.Offsets[i] > s.Onsets[i+1] {
			return fmt.Errorf("%w: pair %d ends at %d after next onset %d",
				ErrUnordered, i, s.Offsets[i], s.Onsets[i+1])
		}
	}
	return nil
}

// Durations returns Offsets[i] - Onsets[i] for every pair.
func (s Set) Durations() []int {
	out := make([]int, s.Len())
	for i := range out {
		out[i] = s.Offsets[i] - s.Onsets[i]
	}
	return out
}

// Span returns pair i as a Span.
func (s Set) Span(i int) Span {
	return Span{Start: s.Onsets[i], End: s.Offsets[i]}
}

// Keep returns a new Set holding the pairs for which keep returns true,
// in their original order.
func (s Set) Keep(keep func(i int) bool) Set {
	out := Set{Onsets: []int{}, Offsets: []int{}}
	for i := range s.Onsets {
		if keep(i) {
			out.Onsets = append(out.Onsets, s.Onsets[i])
			out.Offsets = append(out.Offsets, s.Offsets[i])
		}
	}
	return out
}

// Span is a half-open sample range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of samples in the span, never negative.
func (s Span) Len() int { return max(s.End-s.Start, 0) }

// Empty reports whether the span holds no samples.
func (s Span) Empty() bool { return s.End <= s.Start }

// Pad widens the span by before and after samples and clamps the result to
// [0, n). Windows that fall entirely outside come back empty.
func (s Span) Pad(before, after, n int) Span {
	return Span{Start: s.Start - before, End: s.End + after}.Clamp(n)
}

// Clamp restricts the span to [0, n).
func (s Span) Clamp(n int) Span {
	start := core.ClampInt(s.Start, 0, n)
	end := core.ClampInt(s.End, start, n)
	return Span{Start: start, End: end}
}

// Before returns the clamped window of width samples ending at Start.
func (s Span) Before(width, n int) Span {
	return Span{Start: s.Start - width, End: s.Start}.Clamp(n)
}

// After returns the clamped window of width samples starting at End.
func (s Span) After(width, n int) Span {
	return Span{Start: s.End, End: s.End + width}.Clamp(n)
}
