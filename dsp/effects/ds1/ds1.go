package ds1

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/filter/biquad"
	"github.com/cwbudde/algo-pedal/dsp/oversample"
	"github.com/cwbudde/algo-pedal/dsp/shaper"
	"github.com/cwbudde/algo-pedal/dsp/simd"
	"github.com/cwbudde/algo-pedal/dsp/smooth"
)

const defaultRampMs = 20.0

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	rampMs      float64
	oversampler []oversample.DesignOption
	shape       shaper.Rational
}

// WithRampTime sets how long the controls take to reach a new value.
func WithRampTime(ms float64) Option {
	return func(cfg *config) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("ds1 ramp time must be finite and >= 0: %f", ms)
		}

		cfg.rampMs = ms

		return nil
	}
}

// WithOversampler configures the clipper's interpolation prototype.
func WithOversampler(opts ...oversample.DesignOption) Option {
	return func(cfg *config) error {
		cfg.oversampler = append(cfg.oversampler, opts...)
		return nil
	}
}

// WithShape replaces the clipper curve, for instance with coefficients
// fitted by cmd/shaperfit.
func WithShape(r shaper.Rational) Option {
	return func(cfg *config) error {
		for _, c := range []float32{r.C1, r.C3} {
			if c < 0 || math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				return fmt.Errorf("ds1 shape coefficients must be finite and >= 0: %+v", r)
			}
		}

		cfg.shape = r

		return nil
	}
}

// DS1 is the distortion engine. It is not safe for concurrent use.
type DS1 struct {
	sampleRate float64

	tone, level, dist *smooth.Ramp
	initialized       bool

	booster biquad.Section
	opAmp   opAmp
	clipper clipper
	stack   toneStack
}

// New creates an engine for sampleRate.
func New(sampleRate float64, opts ...Option) (*DS1, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("ds1: %w", err)
	}

	cfg := config{
		rampMs: defaultRampMs,
		shape:  shaper.DS1Rational,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	d := &DS1{sampleRate: sampleRate}

	var err error
	for _, r := range []**smooth.Ramp{&d.tone, &d.level, &d.dist} {
		if *r, err = smooth.New(sampleRate, cfg.rampMs); err != nil {
			return nil, err
		}
	}

	oversampler, err := oversample.New[simd.X8](cfg.oversampler...)
	if err != nil {
		return nil, fmt.Errorf("ds1 clipper: %w", err)
	}

	d.booster.Coefficients = BoosterCoefficients(boosterGain, sampleRate)
	d.opAmp.sampleRate = sampleRate
	d.clipper = clipper{
		lowpass:     biquad.Section{Coefficients: biquad.Lowpass1(clipperPreLowpassHz, sampleRate)},
		oversampler: oversampler,
		shape:       cfg.shape,
	}
	d.stack = newToneStack(sampleRate)

	return d, nil
}

// InitializeParams snaps the controls to the given values without
// ramping.
func (d *DS1) InitializeParams(tone, level, dist float32) {
	d.tone.Reset(core.Clamp(tone, 0, 1))
	d.level.Reset(core.Clamp(level, 0, 1))
	d.dist.Reset(core.Clamp(dist, 0, 1))
	d.initialized = true
}

// ProcessSample runs one sample through the pedal. The controls are
// normalized to [0, 1] and clamped to that range.
func (d *DS1) ProcessSample(x, tone, level, dist float32) float32 {
	tone = core.Clamp(tone, 0, 1)
	level = core.Clamp(level, 0, 1)
	dist = core.Clamp(dist, 0, 1)
	if !d.initialized {
		d.InitializeParams(tone, level, dist)
	}
	tone = d.tone.Process(tone)
	level = d.level.Process(level)
	dist = d.dist.Process(dist)

	y := d.booster.ProcessSample(x)
	y = d.opAmp.processSample(y, dist)
	y = d.clipper.processSample(y)
	y = d.stack.processSample(y, tone)

	return y * level
}

// ProcessBlock runs buf in place with fixed controls.
func (d *DS1) ProcessBlock(buf []float32, tone, level, dist float32) {
	for i, x := range buf {
		buf[i] = d.ProcessSample(x, tone, level, dist)
	}
}

// Reset clears all filter state and forgets the control values.
func (d *DS1) Reset() {
	d.initialized = false
	d.booster.Reset()
	d.opAmp.reset()
	d.clipper.reset()
	d.stack.reset()
}

// Latency returns the clipper delay in samples.
func (d *DS1) Latency() float64 {
	return d.clipper.oversampler.Latency()
}

// SampleRate returns the sample rate in Hz.
func (d *DS1) SampleRate() float64 { return d.sampleRate }
