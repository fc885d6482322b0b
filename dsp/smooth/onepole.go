package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/filter/onepole"
)

// OnePole follows its target exponentially with the given time constant.
type OnePole struct {
	lp     *onepole.Lowpass
	cutoff float32
	target float32
}

// NewOnePole returns a follower whose step response reaches 1-1/e of a
// jump after timeMs.
func NewOnePole(sampleRate, timeMs float64) (*OnePole, error) {
	if timeMs <= 0 || math.IsNaN(timeMs) || math.IsInf(timeMs, 0) {
		return nil, fmt.Errorf("smooth time constant must be finite and > 0: %f", timeMs)
	}

	lp, err := onepole.NewLowpass(sampleRate)
	if err != nil {
		return nil, err
	}

	cutoff := 1000 / (2 * math.Pi * timeMs)

	return &OnePole{
		lp:     lp,
		cutoff: float32(min(cutoff, sampleRate/2)),
	}, nil
}

// SetTarget changes the value the follower moves toward.
func (s *OnePole) SetTarget(target float32) {
	s.target = target
}

// Next advances one sample and returns the smoothed value.
func (s *OnePole) Next() float32 {
	return s.lp.ProcessSample(s.target, s.cutoff)
}

// Process sets target and advances one sample.
func (s *OnePole) Process(target float32) float32 {
	s.target = target
	return s.Next()
}

// Reset jumps to value without smoothing.
func (s *OnePole) Reset(value float32) {
	s.target = value
	s.lp.Reset(value)
}

// Value returns the current smoothed value.
func (s *OnePole) Value() float32 {
	return s.lp.Value()
}
