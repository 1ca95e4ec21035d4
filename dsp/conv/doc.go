// Package conv provides cross-correlation of real sequences and helpers for
// locating the lag at which two signals align best.
//
// [Correlate] uses FFT-based fast correlation with power-of-two transform
// sizes; [CorrelateDirect] is the O(N*M) reference. Lags follow the usual
// convention: index k of the full correlation corresponds to lag
// k - (len(b) - 1), and a positive lag means a is delayed relative to b.
package conv
