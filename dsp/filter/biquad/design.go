package biquad

import "math"

// Prewarp returns the analog angular frequency that the bilinear transform
// with constant 2*sampleRate maps onto freqHz.
func Prewarp(freqHz, sampleRate float64) float64 {
	k := 2 * sampleRate
	return math.Tan(freqHz*math.Pi/sampleRate) * k
}

// Lowpass1 designs the first-order lowpass wc/(s+wc) by bilinear transform
// with a prewarped corner.
func Lowpass1(freqHz, sampleRate float64) Coefficients {
	k := 2 * sampleRate
	wc := Prewarp(freqHz, sampleRate)
	norm := wc + k

	return Coefficients{
		B0: float32(wc / norm),
		B1: float32(wc / norm),
		A1: float32((wc - k) / norm),
	}
}

// Highpass1 designs the first-order highpass s/(s+wc) by bilinear transform
// with a prewarped corner.
func Highpass1(freqHz, sampleRate float64) Coefficients {
	k := 2 * sampleRate
	wc := Prewarp(freqHz, sampleRate)
	norm := wc + k

	return Coefficients{
		B0: float32(k / norm),
		B1: float32(-k / norm),
		A1: float32((wc - k) / norm),
	}
}
