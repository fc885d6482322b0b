package ds1

import "github.com/cwbudde/algo-pedal/dsp/filter/biquad"

const (
	// Transistor booster: a second-order highpass with poles at these
	// frequencies and about 36 dB of passband gain.
	boosterPole1Hz = 3.077643
	boosterPole2Hz = 703.162476
	boosterGain    = 63.095734
)

// BoosterCoefficients returns the booster section
// gain*s^2/((s+w1)(s+w2)) with both poles prewarped.
func BoosterCoefficients(gain, sampleRate float64) biquad.Coefficients {
	k := 2 * sampleRate
	w1 := biquad.Prewarp(boosterPole1Hz, sampleRate)
	w2 := biquad.Prewarp(boosterPole2Hz, sampleRate)

	// (a + b z^-1)(c + d z^-1) is the bilinear image of (s+w1)(s+w2).
	a, b := w1+k, w1-k
	c, d := w2+k, w2-k
	norm := a * c
	g := k * k / norm * gain

	return biquad.Coefficients{
		B0: float32(g),
		B1: float32(-2 * g),
		B2: float32(g),
		A1: float32((a*d + b*c) / norm),
		A2: float32(b * d / norm),
	}
}
