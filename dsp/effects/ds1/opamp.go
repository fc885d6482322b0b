package ds1

import "github.com/cwbudde/algo-pedal/dsp/filter/biquad"

const (
	// Op-amp gain stage: the dist pot splits into Rt above and Rb below
	// the wiper; Cz blocks DC to ground and Cc rolls off the feedback.
	distPot       = 100e3
	distSeriesR   = 4700.0
	groundCap     = 1e-6
	compensateCap = 250e-12

	// A dist of zero would put a zero resistance in the denominators.
	minDist = 0.00001
)

// OpAmpCoefficients returns the gain stage for a dist setting in [0, 1].
// The analog prototype is (s^2 + b s + a)/(s^2 + c s + a), whose gain
// peaks at b/c in the passband and falls to unity at DC and high
// frequencies.
func OpAmpCoefficients(dist, sampleRate float64) biquad.Coefficients {
	dist = max(dist, minDist)

	rt := dist * distPot
	rb := (1-dist)*distPot + distSeriesR

	a := 1 / (rt * rb * groundCap * compensateCap)
	c := 1/(rt*compensateCap) + 1/(rb*groundCap)
	b := c + 1/(rb*compensateCap)

	k := 2 * sampleRate
	k2 := k * k
	norm := a + c*k + k2
	b1 := (2*a - 2*k2) / norm

	return biquad.Coefficients{
		B0: float32((a + b*k + k2) / norm),
		B1: float32(b1),
		B2: float32((a - b*k + k2) / norm),
		A1: float32(b1),
		A2: float32((a - c*k + k2) / norm),
	}
}

// opAmp is the gain stage with coefficients cached per dist value.
type opAmp struct {
	sampleRate float64
	section    biquad.Section
	dist       float32
	valid      bool
}

func (o *opAmp) processSample(x, dist float32) float32 {
	if !o.valid || dist != o.dist {
		o.section.Coefficients = OpAmpCoefficients(float64(dist), o.sampleRate)
		o.dist = dist
		o.valid = true
	}
	return o.section.ProcessSample(x)
}

func (o *opAmp) reset() {
	o.section.Reset()
}
