package time

import (
	"math"
	"testing"
)

func TestCalculateSquare(t *testing.T) {
	s := Calculate([]float32{0.5, -0.5, 0.5, -0.5})

	if s.Length != 4 || s.DC != 0 {
		t.Fatalf("length/dc = %d/%v", s.Length, s.DC)
	}
	if s.RMS != 0.5 || s.Peak != 0.5 || s.CrestFactor != 1 {
		t.Fatalf("rms/peak/crest = %v/%v/%v", s.RMS, s.Peak, s.CrestFactor)
	}
	if math.Abs(s.Peak_dB-(-6.0206)) > 1e-3 {
		t.Fatalf("Peak_dB = %v", s.Peak_dB)
	}
	if s.CrestFactor_dB != 0 {
		t.Fatalf("CrestFactor_dB = %v, want 0", s.CrestFactor_dB)
	}
}

func TestCalculateSine(t *testing.T) {
	const n = 4800
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(math.Sin(2 * math.Pi * 100 * float64(i) / 48000))
	}

	s := Calculate(x)
	if math.Abs(s.RMS-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS = %v, want %v", s.RMS, 1/math.Sqrt2)
	}
	if math.Abs(s.CrestFactor_dB-3.0103) > 1e-3 {
		t.Fatalf("CrestFactor_dB = %v, want 3.01", s.CrestFactor_dB)
	}
	if s.PeakPos != 120 {
		t.Fatalf("PeakPos = %d, want 120", s.PeakPos)
	}
}

func TestCalculateEmptyAndSilent(t *testing.T) {
	for _, sig := range [][]float32{nil, make([]float32, 16)} {
		s := Calculate(sig)
		if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) || !math.IsInf(s.CrestFactor_dB, -1) {
			t.Fatalf("len %d: dB fields should be -Inf: %+v", len(sig), s)
		}
	}
}

func TestRMSAndPeakMatchCalculate(t *testing.T) {
	x := []float32{0.1, -0.7, 0.3, 0.2}
	s := Calculate(x)
	if RMS(x) != s.RMS || Peak(x) != s.Peak {
		t.Fatalf("RMS/Peak %v/%v differ from Calculate %v/%v", RMS(x), Peak(x), s.RMS, s.Peak)
	}
	if RMS(nil) != 0 || Peak(nil) != 0 {
		t.Fatal("empty input should give zero")
	}
}
