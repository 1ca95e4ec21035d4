package conv_test

import (
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/conv"
)

func ExamplePeakLag() {
	ref := []float64{0, 1, 4, 1, 0, 0, 0}
	delayed := []float64{0, 0, 0, 1, 4, 1, 0}

	lag, err := conv.PeakLag(delayed, ref)
	if err != nil {
		panic(err)
	}
	fmt.Println(lag)
	// Output:
	// 2
}
