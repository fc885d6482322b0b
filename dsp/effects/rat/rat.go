package rat

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/filter/analog"
	"github.com/cwbudde/algo-pedal/dsp/filter/onepole"
	"github.com/cwbudde/algo-pedal/dsp/oversample"
	"github.com/cwbudde/algo-pedal/dsp/shaper"
	"github.com/cwbudde/algo-pedal/dsp/simd"
)

const (
	defaultRampMs = 20.0

	// Tone network: the filter pot in series with a fixed resistor into a
	// shunt capacitor.
	toneFilterPot = 100e3
	toneSeriesR   = 1500.0
	toneCap       = 3.3e-9

	clipperGain = 0.5
)

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	rampMs      float64
	oversampler []oversample.DesignOption
	diode       []shaper.DiodeOption
}

// WithRampTime sets how long the controls take to reach a new value.
func WithRampTime(ms float64) Option {
	return func(cfg *config) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("rat ramp time must be finite and >= 0: %f", ms)
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

// WithDiodeTable configures the clipper's diode table.
func WithDiodeTable(opts ...shaper.DiodeOption) Option {
	return func(cfg *config) error {
		cfg.diode = append(cfg.diode, opts...)
		return nil
	}
}

// Rat is the distortion engine. It is not safe for concurrent use.
type Rat struct {
	sampleRate float64

	params  *Params
	opAmp   *analog.OpAmp
	clipper *oversample.Oversampler[simd.X8]
	diode   *shaper.DiodeTable
	clip    func(simd.X8) simd.X8
	tone    *onepole.Lowpass
}

// New creates an engine for sampleRate.
func New(sampleRate float64, opts ...Option) (*Rat, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("rat: %w", err)
	}

	cfg := config{rampMs: defaultRampMs}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	params, err := NewParams(sampleRate, cfg.rampMs)
	if err != nil {
		return nil, err
	}
	opAmp, err := analog.NewOpAmp(sampleRate)
	if err != nil {
		return nil, err
	}
	clipper, err := oversample.New[simd.X8](cfg.oversampler...)
	if err != nil {
		return nil, fmt.Errorf("rat clipper: %w", err)
	}
	diode, err := shaper.NewDiodeTable(cfg.diode...)
	if err != nil {
		return nil, fmt.Errorf("rat clipper: %w", err)
	}
	tone, err := onepole.NewLowpass(sampleRate)
	if err != nil {
		return nil, err
	}

	r := &Rat{
		sampleRate: sampleRate,
		params:     params,
		opAmp:      opAmp,
		clipper:    clipper,
		diode:      diode,
		tone:       tone,
	}
	r.clip = func(v simd.X8) simd.X8 {
		return shaper.DiodeVec(r.diode, v).Scale(clipperGain)
	}

	return r, nil
}

// ToneCutoff returns the tone lowpass corner in Hz for a tapered filter
// value. Higher values darken the sound.
func ToneCutoff(filter float32) float32 {
	r := filter*toneFilterPot + toneSeriesR
	return 1 / (2 * math.Pi * r * toneCap)
}

// InitializeParams snaps the controls to the given normalized values.
func (r *Rat) InitializeParams(distortion, filter, volume float32) {
	r.params.Initialize(distortion, filter, volume)
}

// ProcessSample runs one sample through the pedal. The controls are
// normalized to [0, 1] and clamped to that range.
func (r *Rat) ProcessSample(x, distortion, filter, volume float32) float32 {
	r.params.Set(distortion, filter, volume)
	distortion, filter, volume = r.params.Next()

	y := r.opAmp.ProcessSample(x, distortion)
	y = r.clipper.ProcessSample(y, r.clip)
	y = r.tone.ProcessSample(y, ToneCutoff(filter))

	return y * volume
}

// ProcessBlock runs buf in place with fixed controls.
func (r *Rat) ProcessBlock(buf []float32, distortion, filter, volume float32) {
	for i, x := range buf {
		buf[i] = r.ProcessSample(x, distortion, filter, volume)
	}
}

// Reset clears all filter state and forgets the control values.
func (r *Rat) Reset() {
	r.params.Reset()
	r.opAmp.Reset()
	r.clipper.Reset()
	r.tone.Reset(0)
}

// Latency returns the clipper delay in samples.
func (r *Rat) Latency() float64 {
	return r.clipper.Latency()
}

// SampleRate returns the sample rate in Hz.
func (r *Rat) SampleRate() float64 { return r.sampleRate }
