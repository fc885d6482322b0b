package shaper

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pedal/dsp/simd"
)

func TestRationalZeroAndSymmetry(t *testing.T) {
	if got := DS1Rational.Apply(0); got != 0 {
		t.Fatalf("clip(0) = %v, want 0", got)
	}

	for _, x := range []float32{0.01, 0.3, 1, 2.5, 10, 1e3, 1e9} {
		pos := DS1Rational.Apply(x)
		neg := DS1Rational.Apply(-x)
		if neg != -pos {
			t.Fatalf("clip(-%v) = %v, want %v", x, neg, -pos)
		}
	}
}

func TestRationalMonotoneAndBounded(t *testing.T) {
	prev := DS1Rational.Apply(-50)
	for i := 1; i <= 10000; i++ {
		x := -50 + float32(i)*0.01
		y := DS1Rational.Apply(x)
		if y < prev {
			t.Fatalf("not monotone at %v: %v < %v", x, y, prev)
		}
		if y > 1 || y < -1 {
			t.Fatalf("clip(%v) = %v out of [-1, 1]", x, y)
		}
		prev = y
	}
}

func TestRationalKnownValue(t *testing.T) {
	// a = 1 + 0.16489087 + 0.00985468 = 1.17474555
	a := 1.17474555
	want := a / math.Sqrt(1+a*a)
	if got := DS1Rational.Apply(1); math.Abs(float64(got)-want) > 1e-6 {
		t.Fatalf("clip(1) = %v, want %v", got, want)
	}
}

func TestRationalExtremes(t *testing.T) {
	inf := float32(math.Inf(1))
	if got := DS1Rational.Apply(inf); got != 1 {
		t.Fatalf("clip(+Inf) = %v, want 1", got)
	}
	if got := DS1Rational.Apply(-inf); got != -1 {
		t.Fatalf("clip(-Inf) = %v, want -1", got)
	}
	if got := DS1Rational.Apply(float32(math.NaN())); got != 0 {
		t.Fatalf("clip(NaN) = %v, want 0", got)
	}
}

func TestRationalVecMatchesScalar(t *testing.T) {
	in := simd.X8{-4, -1, -0.25, 0, 0.1, 0.5, 2, 30}
	out := RationalVec(DS1Rational, in)
	for i, x := range in {
		want := DS1Rational.Apply(x)
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Fatalf("lane %d: %v, want %v", i, out[i], want)
		}
	}
}

func BenchmarkRationalVec(b *testing.B) {
	v := simd.X8{-1, -0.5, -0.25, 0, 0.25, 0.5, 1, 2}
	for b.Loop() {
		v = RationalVec(DS1Rational, v)
	}
}
