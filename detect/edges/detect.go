package edges

// Crossings finds rising and falling transitions in mask. Onset candidates
// are indices i where mask[i] is false and mask[i+1] is true; offset
// candidates are indices where mask[i] is true and mask[i+1] is false.
//
// The candidates are then paired: a surplus onset at the end or a surplus
// offset at the start is dropped, and when the first offset precedes the
// first onset the leading offset and trailing onset are both dropped.
func Crossings(mask []bool) Set {
	var on, off []int
	for i := 0; i+1 < len(mask); i++ {
		switch {
		case !mask[i] && mask[i+1]:
			on = append(on, i)
		case mask[i] && !mask[i+1]:
			off = append(off, i)
		}
	}

	if len(on) > len(off) {
		on = on[:len(on)-1]
	}
	if len(off) > len(on) {
		off = off[1:]
	}
	if len(on) > 0 && len(off) > 0 && on[0] > off[0] {
		on = on[:len(on)-1]
		off = off[1:]
	}

	if on == nil {
		on = []int{}
	}
	if off == nil {
		off = []int{}
	}
	return Set{Onsets: on, Offsets: off}
}

// Threshold returns the runs where x is strictly greater than thr. Each
// onset is the first sample above thr and each offset the first sample
// back at or below it. NaN samples never exceed the threshold.
func Threshold(x []float64, thr float64) Set {
	mask := make([]bool, len(x))
	for i, v := range x {
		mask[i] = v > thr
	}

	s := Crossings(mask)
	for i := range s.Onsets {
		s.Onsets[i]++
		s.Offsets[i]++
	}
	return s
}
