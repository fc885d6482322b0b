package repeat

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/delay"
	"github.com/cwbudde/algo-pedal/dsp/smooth"
)

const (
	defaultCrossfadeMs = 5.0
	defaultMaxSeconds  = 10.0

	// Control ranges.
	MinFreqHz   = 0.1
	MaxFreqHz   = 50.0
	MinFeedback = -1.25
	MaxFeedback = 1.25
	MinSkew     = -1.0
	MaxSkew     = 1.0
)

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	crossfadeMs float64
	maxSeconds  float64
}

// WithCrossfadeTime sets how long a parameter change takes to fade in.
// Zero switches on the next sample.
func WithCrossfadeTime(ms float64) Option {
	return func(cfg *config) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("repeat crossfade time must be finite and >= 0: %f", ms)
		}

		cfg.crossfadeMs = ms

		return nil
	}
}

// WithMaxDelay sets the delay buffer length in seconds. Taps further back
// read the oldest stored sample.
func WithMaxDelay(seconds float64) Option {
	return func(cfg *config) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("repeat max delay must be finite and > 0: %f", seconds)
		}

		cfg.maxSeconds = seconds

		return nil
	}
}

// Repeat is the multi-tap echo engine. It is not safe for concurrent use.
type Repeat struct {
	sampleRate float64

	line *delay.Line
	// sets[1] is current; sets[0] is what a running fade fades out.
	sets        [2]tapSet
	fade        *smooth.Ramp
	fading      bool
	initialized bool
}

// New creates an engine for sampleRate.
func New(sampleRate float64, opts ...Option) (*Repeat, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}

	cfg := config{
		crossfadeMs: defaultCrossfadeMs,
		maxSeconds:  defaultMaxSeconds,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	line, err := delay.New(sampleRate, cfg.maxSeconds)
	if err != nil {
		return nil, err
	}
	fade, err := smooth.New(sampleRate, cfg.crossfadeMs)
	if err != nil {
		return nil, err
	}

	return &Repeat{
		sampleRate: sampleRate,
		line:       line,
		fade:       fade,
	}, nil
}

// Params maps raw controls to the tap set they select, clamping each to
// its range. A NaN control takes the low end of its range.
func Params(freqHz float32, repeats int, feedback, skew float32) TapParams {
	freqHz = core.Clamp(freqHz, MinFreqHz, MaxFreqHz)

	return TapParams{
		Repeats:  min(max(repeats, 1), MaxRepeats),
		TimeMs:   1000 / freqHz,
		Feedback: core.Clamp(feedback, MinFeedback, MaxFeedback),
		Skew:     core.Clamp(skew, MinSkew, MaxSkew),
	}
}

// ProcessSample returns the echo of x for the given controls and then
// stores x. freqHz is the repeat rate, so taps are 1000/freqHz ms apart
// before skew.
func (r *Repeat) ProcessSample(x, freqHz float32, repeats int, feedback, skew float32) float32 {
	p := Params(freqHz, repeats, feedback, skew)

	var y float32
	switch {
	case !r.initialized:
		r.sets[1].configure(p)
		r.initialized = true
		y = r.sets[1].read(x, r.line)
	case r.fading:
		y = r.crossfade(x)
	case !p.same(r.sets[1].params):
		r.sets[0] = r.sets[1]
		r.sets[1].configure(p)
		r.fade.Reset(0)
		r.fade.SetTarget(1)
		r.fading = true
		y = r.crossfade(x)
	default:
		y = r.sets[1].read(x, r.line)
	}

	r.line.Write(x)
	return y
}

// crossfade blends the old set with w = cos^2(phase*pi/2) and the new set
// with 1-w, keeping the summed power constant.
func (r *Repeat) crossfade(x float32) float32 {
	phase := r.fade.Next()
	if r.fade.Settled() {
		r.fading = false
	}

	c := float32(math.Cos(float64(phase) * math.Pi / 2))
	w := c * c

	return r.sets[0].read(x, r.line)*w + r.sets[1].read(x, r.line)*(1-w)
}

// Reset clears the delay buffer and forgets the current tap set, so the
// next call adopts its parameters without fading.
func (r *Repeat) Reset() {
	r.line.Reset()
	r.fade.Reset(0)
	r.fading = false
	r.initialized = false
}

// Fading reports whether a parameter change is being faded in.
func (r *Repeat) Fading() bool {
	return r.fading
}

// SampleRate returns the sample rate in Hz.
func (r *Repeat) SampleRate() float64 { return r.sampleRate }
