// Command swrdetect detects sharp-wave ripples in LFP recordings and
// summarises their features per recording and stimulation condition.
//
// Usage:
//
//	swrdetect [command] [flags]
//
// Examples:
//
//	swrdetect run data/
//	swrdetect run --format csv --out summary.csv data/ClosedStim data/NoStim
//	swrdetect simulate --seconds 120 --out NoStim/rat1.csv
//	swrdetect filters
//	swrdetect config --config swrdetect.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
