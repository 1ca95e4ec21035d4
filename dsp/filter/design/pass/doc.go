// Package pass designs Butterworth band-pass and band-stop filters as
// cascades of biquad sections.
//
// Designs follow the analog prototype route: Butterworth poles on the unit
// circle, a low-pass to band transform at the prewarped band edges, and the
// bilinear transform to the z-plane. Conjugate pole pairs are grouped into
// second-order sections and the overall gain is normalized to unity at the
// band centre (band-pass) or at DC (band-stop).
package pass
