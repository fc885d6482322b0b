package repeat

import (
	"math"
	"testing"
)

func TestFeedbackGain(t *testing.T) {
	tests := []struct {
		feedback float32
		want     [4]float32
	}{
		{1, [4]float32{1, 1, 1, 1}},
		{-1, [4]float32{1, 1, 1, 1}},
		{2, [4]float32{1, 2, 4, 8}},
		{-2, [4]float32{8, 4, 2, 1}},
		{0.5, [4]float32{1, 0.5, 0.25, 0.125}},
		{-0.5, [4]float32{0.125, 0.25, 0.5, 1}},
		{0, [4]float32{1, 0, 0, 0}},
		{float32(math.Copysign(0, -1)), [4]float32{0, 0, 0, 1}},
	}

	for _, tc := range tests {
		for i, want := range tc.want {
			if got := FeedbackGain(i, tc.feedback, 4); got != want {
				t.Errorf("FeedbackGain(%d, %v, 4) = %v, want %v", i, tc.feedback, got, want)
			}
		}
	}
}

func TestDelayTimeSkew(t *testing.T) {
	tests := []struct {
		skew float32
		want [4]float32
	}{
		{0, [4]float32{0, 100, 200, 300}},
		{1, [4]float32{0, 100, 300, 700}},
		{0.5, [4]float32{0, 100, 241.42136, 441.42133}},
		{-0.5, [4]float32{0, 100, 170.71068, 220.71068}},
		{-1, [4]float32{0, 100, 150, 175}},
	}

	for _, tc := range tests {
		var s tapSet
		for i, want := range tc.want {
			got := s.delayTime(i, 100, tc.skew)
			if math.Abs(float64(got-want)) > 1e-3 {
				t.Errorf("skew %v: delayTime(%d) = %v, want %v", tc.skew, i, got, want)
			}
		}
	}
}

func TestDelayTimeRestartsAtZero(t *testing.T) {
	var s tapSet
	for i := range 4 {
		s.delayTime(i, 100, 1)
	}
	s.delayTime(0, 100, 1)
	if got := s.delayTime(1, 100, 1); got != 100 {
		t.Fatalf("after restart delayTime(1) = %v, want 100", got)
	}
}

func TestConfigureFillsTables(t *testing.T) {
	var s tapSet
	s.configure(TapParams{Repeats: 3, TimeMs: 50, Feedback: 0.5, Skew: 0})

	if s.gains[0] != 1 || s.gains[1] != 0.5 || s.gains[2] != 0.25 {
		t.Fatalf("gains = %v", s.gains[:3])
	}
	if s.times[0] != 0 || s.times[1] != 50 || s.times[2] != 100 {
		t.Fatalf("times = %v", s.times[:3])
	}
}
