package biquad

import (
	"math"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float32{} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSamplePassthrough(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	for i, x := range []float32{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); y != x {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSampleDFIIT(t *testing.T) {
	// n=0: y=0.25, d0=0.5+0.05=0.55, d1=0.25-0.01=0.24
	// n=1: y=0.55, d0=0.11+0.24=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.07-0.022=0.048
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float32
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(float64(y), w, eps) {
			t.Fatalf("y[%d] = %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.2}
	a := NewSection(c)
	b := NewSection(c)

	buf := make([]float32, 64)
	for i := range buf {
		buf[i] = float32(math.Sin(float64(i) * 0.3))
	}
	want := make([]float32, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}
	b.ProcessBlock(buf)

	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("index %d: block %v, sample %v", i, buf[i], want[i])
		}
	}
	if a.State() != b.State() {
		t.Fatalf("state diverged: %v vs %v", a.State(), b.State())
	}
}

func TestCoefficientSwapKeepsState(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5})
	s.ProcessSample(1)
	before := s.State()

	s.Coefficients = Coefficients{B0: 1}
	if s.State() != before {
		t.Fatal("changing coefficients must not touch the state")
	}
	if y := s.ProcessSample(0); y != before[0] {
		t.Fatalf("y = %v, want carried state %v", y, before[0])
	}
}

func TestReset(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.5})
	s.ProcessSample(1)
	s.Reset()
	if st := s.State(); st != [2]float32{} {
		t.Fatalf("state after Reset = %v", st)
	}
}

func BenchmarkProcessSample(b *testing.B) {
	s := NewSection(Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1})
	for b.Loop() {
		s.ProcessSample(0.5)
	}
}

func TestSectionDecaysToExactZero(t *testing.T) {
	s := NewSection(Lowpass1(1000, 48000))
	s.ProcessSample(1)
	for range 4000 {
		s.ProcessSample(0)
	}
	if st := s.State(); st != [2]float32{} {
		t.Fatalf("state after silence = %v, want exact zero", st)
	}

	buf := make([]float32, 4000)
	buf[0] = 1
	s.ProcessBlock(buf)
	if st := s.State(); st != [2]float32{} {
		t.Fatalf("block state after silence = %v, want exact zero", st)
	}
}
