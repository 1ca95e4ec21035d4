package pass

import (
	"math"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/biquad"
)

// ButterworthBandpass designs a band-pass Butterworth cascade with -3 dB
// edges at low and high (Hz). The result holds order sections, giving a
// filter of order 2*order. Each section has zeros at z=+1 and z=-1.
func ButterworthBandpass(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateBand(low, high, order, sampleRate); err != nil {
		return nil, err
	}

	w0, bw := bandGeometry(low, high, sampleRate)
	poles := bilinear(lowpassToBandpass(butterworthPrototype(order), w0, bw), sampleRate)

	centre := 2 * math.Atan(w0/(2*sampleRate))
	return assemble(poleSections(poles), [3]float64{1, 0, -1}, centre), nil
}

// ButterworthBandstop designs a band-stop Butterworth cascade with -3 dB
// edges at low and high (Hz). Every section places a conjugate zero pair on
// the unit circle at the band centre; gain is unity at DC.
func ButterworthBandstop(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateBand(low, high, order, sampleRate); err != nil {
		return nil, err
	}

	w0, bw := bandGeometry(low, high, sampleRate)
	poles := bilinear(lowpassToBandstop(butterworthPrototype(order), w0, bw), sampleRate)

	centre := 2 * math.Atan(w0/(2*sampleRate))
	num := [3]float64{1, -2 * math.Cos(centre), 1}
	return assemble(poleSections(poles), num, 0), nil
}
