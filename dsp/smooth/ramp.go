package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Ramp is a linear smoother. Each new target restarts a ramp of fixed
// length from the current value; on the last step the value lands
// exactly on the target.
type Ramp struct {
	length    int
	remaining int
	step      float32
	value     float32
	target    float32
}

// New returns a Ramp that needs round(rampMs*sampleRate/1000) calls to
// reach a new target. A zero ramp time jumps in one call.
func New(sampleRate, rampMs float64) (*Ramp, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}
	if rampMs < 0 || math.IsNaN(rampMs) || math.IsInf(rampMs, 0) {
		return nil, fmt.Errorf("smooth ramp time must be finite and >= 0: %f", rampMs)
	}

	length := int(math.Round(core.MsToSamples(rampMs, sampleRate)))

	return &Ramp{length: max(length, 1)}, nil
}

// SetTarget starts a ramp toward target. Setting the current target again
// leaves an in-flight ramp untouched.
func (r *Ramp) SetTarget(target float32) {
	if target == r.target {
		return
	}

	r.target = target
	r.remaining = r.length
	r.step = (target - r.value) / float32(r.length)
}

// Next advances the ramp one sample and returns the smoothed value.
func (r *Ramp) Next() float32 {
	if r.remaining == 0 {
		return r.value
	}

	r.remaining--
	if r.remaining == 0 {
		r.value = r.target
	} else {
		r.value += r.step
	}

	return r.value
}

// Process sets target and advances one sample.
func (r *Ramp) Process(target float32) float32 {
	r.SetTarget(target)
	return r.Next()
}

// Reset jumps to value without ramping.
func (r *Ramp) Reset(value float32) {
	r.value = value
	r.target = value
	r.remaining = 0
	r.step = 0
}

// Value returns the current smoothed value.
func (r *Ramp) Value() float32 {
	return r.value
}

// Settled reports whether the ramp has reached its target.
func (r *Ramp) Settled() bool {
	return r.remaining == 0
}

// Length returns the ramp length in samples.
func (r *Ramp) Length() int {
	return r.length
}
