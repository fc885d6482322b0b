package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kaiser returns symmetric Kaiser window coefficients of the given size.
//
//	w[n] = I0(beta * sqrt(1 - r^2)) / I0(beta),  r = 2n/(size-1) - 1
func Kaiser(size int, beta float64) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	norm := besselI0(beta)
	for n := range out {
		r := 2*float64(n)/float64(size-1) - 1
		out[n] = besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / norm
	}

	return out, nil
}

// KaiserBeta returns the Kaiser beta that reaches the given stopband
// attenuation in dB (Kaiser's empirical formula).
func KaiserBeta(attenuationDB float64) float64 {
	switch {
	case attenuationDB > 50:
		return 0.1102 * (attenuationDB - 8.7)
	case attenuationDB > 21:
		return 0.5842*math.Pow(attenuationDB-21, 0.4) + 0.07886*(attenuationDB-21)
	default:
		return 0
	}
}

// blackmanHarris holds the 4-term minimum sidelobe (-92 dB) coefficients.
var blackmanHarris = [4]float64{0.35875, 0.48829, 0.14128, 0.01168}

// BlackmanHarris returns periodic 4-term Blackman-Harris coefficients,
// suited to FFT analysis.
func BlackmanHarris(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	for n := range out {
		x := 2 * math.Pi * float64(n) / float64(size)
		out[n] = blackmanHarris[0] -
			blackmanHarris[1]*math.Cos(x) +
			blackmanHarris[2]*math.Cos(2*x) -
			blackmanHarris[3]*math.Cos(3*x)
	}

	return out, nil
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean of the coefficients, the amplitude scale a
// window applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var sum float64
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series. The series converges for every beta used in
// filter design.
func besselI0(x float64) float64 {
	const maxTerms = 64

	half := x / 2
	sum, term := 1.0, 1.0
	for k := 1; k < maxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*1e-17 {
			break
		}
	}

	return sum
}
