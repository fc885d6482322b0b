package shaper

import (
	"math"

	"github.com/cwbudde/algo-pedal/dsp/simd"
)

// Rational is the soft clipper
//
//	a = x + C1 x^3 + C3 x^5
//	y = a / sqrt(1 + a^2)
//
// With non-negative coefficients the polynomial is odd and increasing,
// so y is odd, increasing and confined to (-1, 1).
type Rational struct {
	C1, C3 float32
}

// DS1Rational is the curve fitted to the ds1 clipping diodes.
var DS1Rational = Rational{C1: 0.16489087, C3: 0.00985468}

// Apply shapes one sample.
func (r Rational) Apply(x float32) float32 {
	x2 := x * x
	a := x + r.C1*x2*x + r.C3*x2*x2*x
	return saturate(a)
}

// RationalVec shapes every lane of v.
func RationalVec[V simd.Vector[V]](r Rational, v V) V {
	x2 := v.Mul(v)
	x3 := x2.Mul(v)
	x5 := x3.Mul(x2)
	a := v.Add(x3.Scale(r.C1)).Add(x5.Scale(r.C3))

	for i := range a.Lanes() {
		a = a.WithLane(i, saturate(a.Lane(i)))
	}
	return a
}

func saturate(a float32) float32 {
	// Beyond this the float32 result is already +-1.
	const limit = 1e4
	switch {
	case a > limit:
		return 1
	case a < -limit:
		return -1
	case a != a:
		return 0
	}

	af := float64(a)
	return float32(af / math.Sqrt(1+af*af))
}
