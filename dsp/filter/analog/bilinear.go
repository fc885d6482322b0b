package analog

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// SCoefficients is a third-order s-domain transfer function
//
//	H(s) = (B[0] s^3 + B[1] s^2 + B[2] s + B[3]) / (A[0] s^3 + A[1] s^2 + A[2] s + A[3])
//
// ordered highest power first. Lower-order functions leave the leading
// entries zero.
type SCoefficients struct {
	B, A [4]float64
}

// ZCoefficients is a third-order z-domain transfer function normalized so
// that A[0] == 1:
//
//	H(z) = (B[0] + B[1] z^-1 + B[2] z^-2 + B[3] z^-3) / (1 + A[1] z^-1 + A[2] z^-2 + A[3] z^-3)
type ZCoefficients struct {
	B, A [4]float32
}

// Response computes the complex frequency response at freqHz.
func (c ZCoefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k := range 4 {
		zk := cmplx.Exp(complex(0, -w*float64(k)))
		num += complex(float64(c.B[k]), 0) * zk
		den += complex(float64(c.A[k]), 0) * zk
	}
	return num / den
}

// Bilinear3 maps third-order s-domain coefficients to the z-domain with
// s = (2/T) (1 - z^-1)/(1 + z^-1). The per-order scale factors are fixed
// at construction; Transform is allocation free.
type Bilinear3 struct {
	scale [3]float64
}

// NewBilinear3 returns a transform for sampleRate.
func NewBilinear3(sampleRate float64) (*Bilinear3, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("analog: %w", err)
	}

	t := 1 / sampleRate
	return &Bilinear3{scale: [3]float64{t / 2, t * t / 4, t * t * t / 8}}, nil
}

// Transform discretizes s. The arithmetic runs in float64 because the
// numerator's DC sum cancels to a small fraction of its terms; only the
// result is rounded for the float32 filter.
func (b *Bilinear3) Transform(s SCoefficients) ZCoefficients {
	num := b.polynomial(s.B)
	den := b.polynomial(s.A)

	var z ZCoefficients
	for k := range 4 {
		z.B[k] = float32(num[k] / den[0])
		z.A[k] = float32(den[k] / den[0])
	}
	z.A[0] = 1
	return z
}

func (b *Bilinear3) polynomial(x [4]float64) [4]float64 {
	x0 := x[0]
	x1 := x[1] * b.scale[0]
	x2 := x[2] * b.scale[1]
	x3 := x[3] * b.scale[2]

	return [4]float64{
		x0 + x1 + x2 + x3,
		-3*x0 - x1 + x2 + 3*x3,
		3*x0 - x1 - x2 + 3*x3,
		-x0 + x1 - x2 + x3,
	}
}
