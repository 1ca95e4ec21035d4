// Package spectrum provides spectrum-domain helpers for real signals:
// analytic signals and amplitude envelopes via the Hilbert transform, and
// Welch power spectral density estimates with peak-frequency lookup.
//
// Transforms are exact-length (no zero padding), so envelopes line up
// sample for sample with their input.
package spectrum
