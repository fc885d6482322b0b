package oversample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pedal/dsp/simd"
)

func sum(taps []float64) float64 {
	var s float64
	for _, v := range taps {
		s += v
	}
	return s
}

func TestDesignLengthsAndDC(t *testing.T) {
	tests := []struct {
		name  string
		lanes int
		opts  []DesignOption
		want  int
	}{
		{"minimum phase x8", 8, nil, 128},
		{"linear phase x8", 8, []DesignOption{WithLinearPhase()}, 128},
		{"minimum phase x4 short", 4, []DesignOption{WithTapsPerPhase(8)}, 32},
		{"linear phase x16", 16, []DesignOption{WithLinearPhase()}, 256},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Design(tc.lanes, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Taps) != tc.want {
				t.Fatalf("len = %d, want %d", len(p.Taps), tc.want)
			}
			if s := sum(p.Taps); math.Abs(s-1) > 1e-12 {
				t.Fatalf("DC gain = %v, want 1", s)
			}
		})
	}
}

func TestLinearPhaseIsSymmetric(t *testing.T) {
	p, err := Design(8, WithLinearPhase())
	if err != nil {
		t.Fatal(err)
	}
	n := len(p.Taps)
	for i := range n / 2 {
		if math.Abs(p.Taps[i]-p.Taps[n-1-i]) > 1e-15 {
			t.Fatalf("tap %d = %v, mirror = %v", i, p.Taps[i], p.Taps[n-1-i])
		}
	}
	if gd := p.GroupDelay(); math.Abs(gd-float64(n-1)/2) > 1e-9 {
		t.Fatalf("GroupDelay = %v, want %v", gd, float64(n-1)/2)
	}
}

func TestMinimumPhaseConcentratesEnergyEarly(t *testing.T) {
	minP, err := Design(8)
	if err != nil {
		t.Fatal(err)
	}
	linP, err := Design(8, WithLinearPhase())
	if err != nil {
		t.Fatal(err)
	}

	if minP.GroupDelay() >= linP.GroupDelay()/2 {
		t.Fatalf("minimum-phase delay %v not well below linear %v", minP.GroupDelay(), linP.GroupDelay())
	}
}

func TestStopbandAttenuation(t *testing.T) {
	lin, err := Design(8, WithLinearPhase())
	if err != nil {
		t.Fatal(err)
	}
	if db := lin.StopbandDB(0.7); db > -80 {
		t.Fatalf("linear-phase stopband = %v dB, want < -80", db)
	}

	// The homomorphic design keeps the square root of a 90 dB magnitude.
	minP, err := Design(8)
	if err != nil {
		t.Fatal(err)
	}
	if db := minP.StopbandDB(0.7); db > -40 {
		t.Fatalf("minimum-phase stopband = %v dB, want < -40", db)
	}
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name  string
		lanes int
		opt   DesignOption
	}{
		{"odd lanes", 3, nil},
		{"one lane", 1, nil},
		{"taps per phase", 8, WithTapsPerPhase(12)},
		{"attenuation", 8, WithAttenuation(-3)},
		{"cutoff", 8, WithCutoff(0.5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Design(tc.lanes, tc.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPolyphaseLayout(t *testing.T) {
	p := Prototype{Lanes: 4, Taps: make([]float64, 8)}
	for i := range p.Taps {
		p.Taps[i] = float64(i)
	}

	up, down, err := Polyphase[simd.X4](p)
	if err != nil {
		t.Fatal(err)
	}

	wantUp := []simd.X4{{0, 1, 2, 3}, {4, 5, 6, 7}}
	wantDown := []simd.X4{{3, 2, 1, 0}, {7, 6, 5, 4}}
	for k := range up {
		if up[k] != wantUp[k] {
			t.Fatalf("up[%d] = %v, want %v", k, up[k], wantUp[k])
		}
		if down[k] != wantDown[k] {
			t.Fatalf("down[%d] = %v, want %v", k, down[k], wantDown[k])
		}
	}

	if _, _, err := Polyphase[simd.X8](p); err == nil {
		t.Fatal("expected lane mismatch error")
	}
}
