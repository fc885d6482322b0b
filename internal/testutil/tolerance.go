package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not [core.NearlyEqual] within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireSliceRelative fails t if any element pair differs by more than
// rel relative to the larger magnitude. Fixtures that span many decades
// (analog coefficients) cannot use one absolute tolerance.
func RequireSliceRelative(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		scale := math.Max(math.Abs(got[i]), math.Abs(want[i]))
		if diff := math.Abs(got[i] - want[i]); diff > rel*scale {
			t.Fatalf("index %d: got %v, want %v (relative diff %v > %v)", i, got[i], want[i], diff/scale, rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireFinite32 is [RequireFinite] for the float32 audio path.
func RequireFinite32(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Peak32 returns the largest absolute sample value.
func Peak32(data []float32) float32 {
	var peak float32
	for _, v := range data {
		peak = max(peak, float32(math.Abs(float64(v))))
	}
	return peak
}

// RMS32 returns the root mean square of data, or 0 when empty.
func RMS32(data []float32) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(data)))
}
