package shaper

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pedal/dsp/simd"
)

func newTable(t testing.TB, opts ...DiodeOption) *DiodeTable {
	t.Helper()
	d, err := NewDiodeTable(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDiodeTableSolvesDiodeEquation(t *testing.T) {
	d := newTable(t)

	// Reference points from bisection on vin = v + 2 R Is sinh(v/(n Vt)).
	tests := []struct {
		vin, want float64
	}{
		{0.1, 0.0999774},
		{0.5, 0.4490302},
		{1, 0.5478832},
		{2, 0.5991021},
		{4, 0.6387393},
	}
	for _, tc := range tests {
		if got := d.Apply(float32(tc.vin)); math.Abs(float64(got)-tc.want) > 1e-3 {
			t.Errorf("diode(%v) = %v, want %v", tc.vin, got, tc.want)
		}
	}
}

func TestDiodeTableOddMonotoneBounded(t *testing.T) {
	d := newTable(t)
	limit := d.Limit()

	if got := d.Apply(0); got != 0 {
		t.Fatalf("diode(0) = %v, want 0", got)
	}

	prev := d.Apply(-10)
	for i := 1; i <= 20000; i++ {
		x := -10 + float32(i)*0.001
		y := d.Apply(x)
		if y < prev {
			t.Fatalf("not monotone at %v: %v < %v", x, y, prev)
		}
		if y > limit || y < -limit {
			t.Fatalf("diode(%v) = %v beyond limit %v", x, y, limit)
		}
		if neg := d.Apply(-x); neg != -y {
			t.Fatalf("diode(-%v) = %v, want %v", x, neg, -y)
		}
		prev = y
	}
}

func TestDiodeTableHoldsBeyondRange(t *testing.T) {
	d := newTable(t, WithInputRange(2), WithTableSize(257))
	if d.Len() != 257 {
		t.Fatalf("Len = %d, want 257", d.Len())
	}
	for _, x := range []float32{2, 3, 1e6, float32(math.Inf(1))} {
		if got := d.Apply(x); got != d.Limit() {
			t.Fatalf("diode(%v) = %v, want limit %v", x, got, d.Limit())
		}
	}
	if got := d.Apply(float32(math.Inf(-1))); got != -d.Limit() {
		t.Fatalf("diode(-Inf) = %v, want %v", got, -d.Limit())
	}
	if got := d.Apply(float32(math.NaN())); got != 0 {
		t.Fatalf("diode(NaN) = %v, want 0", got)
	}
}

func TestDiodeOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  DiodeOption
	}{
		{"table size", WithTableSize(1)},
		{"input range", WithInputRange(0)},
		{"diode", WithDiode(Diode{SaturationCurrent: 1e-9, Emission: 1, ThermalVoltage: 0.025})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDiodeTable(tc.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDiodeVecMatchesScalar(t *testing.T) {
	d := newTable(t)
	in := simd.X4{-3, -0.2, 0.4, 5}
	out := DiodeVec(d, in)
	for i, x := range in {
		if out[i] != d.Apply(x) {
			t.Fatalf("lane %d: %v, want %v", i, out[i], d.Apply(x))
		}
	}
}

func BenchmarkDiodeVec(b *testing.B) {
	d := newTable(b)
	v := simd.X8{-1, -0.5, -0.25, 0, 0.25, 0.5, 1, 2}
	for b.Loop() {
		d.Apply(0.3)
		_ = DiodeVec(d, v)
	}
}
