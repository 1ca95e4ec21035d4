// Package recording loads LFP recordings for the batch pipeline.
//
// A recording pairs a local field potential trace with a firing-rate trace
// of equal length. Two on-disk formats are supported:
//
//   - CSV with a header row holding (at least) an "LFP" column and a
//     "firing rate" column; matching is case-insensitive and ignores
//     surrounding space.
//   - EDF/EDF+ with the two traces stored as separate signals, selected by
//     index.
//
// The sample rate is not taken from the file; callers pass it in Options.
package recording
