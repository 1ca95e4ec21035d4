// Package ripple detects sharp-wave ripple candidates in a single LFP
// channel.
//
// Detection is an ordered chain of pure stages:
//
//	raw -> band-pass -> squared, box-smoothed, z-scored envelope
//	    -> threshold crossings -> short-run removal and gap merging
//	    -> duration limits -> mean-envelope gate -> peak-envelope gate
//
// Every stage after thresholding is exported as a function over
// [edges.Set] so callers can recombine or inspect them. [Result.Trace]
// records how many events survive each stage.
package ripple
