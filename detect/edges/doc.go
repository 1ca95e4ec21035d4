// Package edges turns boolean masks and thresholded series into paired
// onset/offset index sets.
//
// A [Set] always holds equally many onsets and offsets with
// Onsets[i] < Offsets[i] <= Onsets[i+1]. Runs that touch either end of the
// input are incomplete and are dropped rather than guessed at.
package edges
