package core_test

import (
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

func ExampleSecondsToSamples() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(1000))

	fmt.Println(core.SecondsToSamples(0.03, cfg.SampleRate))
	fmt.Println(core.SecondsToSamples(0.25, cfg.SampleRate))

	// Output:
	// 30
	// 250
}
