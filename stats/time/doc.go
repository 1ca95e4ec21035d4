// Package time provides time-domain statistics over sampled series:
// population mean and deviation, z-scoring, centred box smoothing and
// NaN-aware reductions over half-open sample ranges.
//
// Reductions over an empty range return NaN rather than panicking, so
// callers can propagate "no data" through averages without special cases.
package time
