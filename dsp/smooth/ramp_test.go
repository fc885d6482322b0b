package smooth

import (
	"testing"
)

func TestRampLinearSequence(t *testing.T) {
	r, err := New(1000, 8)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length() != 8 {
		t.Fatalf("Length = %d, want 8", r.Length())
	}

	want := []float32{0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1, 1, 1}
	for i, w := range want {
		if got := r.Process(1); got != w {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
	if !r.Settled() {
		t.Fatal("ramp should be settled")
	}
}

func TestRampReversal(t *testing.T) {
	r, err := New(1000, 8)
	if err != nil {
		t.Fatal(err)
	}
	for range 8 {
		r.Process(1)
	}

	for i, w := range []float32{0.875, 0.75, 0.625, 0.5} {
		if got := r.Process(0); got != w {
			t.Fatalf("down step %d: got %v, want %v", i, got, w)
		}
	}

	// A new target restarts a full-length ramp from the current value.
	if got := r.Process(1); got != 0.5625 {
		t.Fatalf("after reversal: got %v, want 0.5625", got)
	}
}

func TestRampSameTargetDoesNotRestart(t *testing.T) {
	r, err := New(1000, 4)
	if err != nil {
		t.Fatal(err)
	}
	r.SetTarget(1)
	r.Next()
	r.SetTarget(1)
	if got := r.Next(); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}

func TestRampReset(t *testing.T) {
	r, err := New(48000, 20)
	if err != nil {
		t.Fatal(err)
	}
	r.Reset(0.3)
	if got := r.Next(); got != 0.3 {
		t.Fatalf("after Reset Next = %v, want 0.3", got)
	}
	if got := r.Process(0.3); got != 0.3 || !r.Settled() {
		t.Fatalf("same target after Reset should hold: %v", got)
	}
}

func TestRampZeroTimeJumps(t *testing.T) {
	r, err := New(48000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Process(0.7); got != 0.7 {
		t.Fatalf("got %v, want 0.7", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		rampMs     float64
	}{
		{"zero rate", 0, 10},
		{"negative time", 48000, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.sampleRate, tc.rampMs); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func BenchmarkRamp(b *testing.B) {
	r, err := New(48000, 20)
	if err != nil {
		b.Fatal(err)
	}
	target := float32(0)
	for b.Loop() {
		target = 1 - target
		r.SetTarget(target)
		r.Next()
	}
}
