package interp

import "testing"

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	var xm1, x0, x1, x2 float32 = -1, 0, 1, 2
	for _, tc := range []struct {
		t float32
		w float32
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-6 || diff > 1e-6 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestLinear2(t *testing.T) {
	tests := []struct {
		frac, x0, x1, want float32
	}{
		{frac: 0, x0: 2, x1: 4, want: 2},
		{frac: 0.25, x0: 2, x1: 4, want: 2.5},
		{frac: 1, x0: 2, x1: 4, want: 4},
		{frac: 0.5, x0: -1, x1: 1, want: 0},
	}
	for _, tt := range tests {
		if got := Linear2(tt.frac, tt.x0, tt.x1); got != tt.want {
			t.Fatalf("Linear2(%v, %v, %v) = %v, want %v", tt.frac, tt.x0, tt.x1, got, tt.want)
		}
	}
}
