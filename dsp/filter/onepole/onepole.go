// Package onepole provides first-order IIR lowpass and highpass filters
// whose cutoff may change on every sample.
package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-approx"
	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Lowpass is a one-pole lowpass:
//
//	b1 = exp(-2*pi*fc/fs),  a0 = 1 - b1,  z = x*a0 + z*b1
//
// The pole is recomputed only when the cutoff differs from the previous
// call, so a constant cutoff costs no transcendental per sample.
//
// The cutoff must lie in [0, fs/2]; it is not validated.
type Lowpass struct {
	radiansPerHz float32
	cutoff       float32
	a0, b1       float32
	z            float32
}

// NewLowpass returns a lowpass for sampleRate with zero state.
func NewLowpass(sampleRate float64) (*Lowpass, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("onepole: %w", err)
	}

	return &Lowpass{
		radiansPerHz: float32(-2 * math.Pi / sampleRate),
		cutoff:       float32(math.NaN()),
	}, nil
}

// ProcessSample filters x with the given cutoff in Hz.
func (f *Lowpass) ProcessSample(x, cutoffHz float32) float32 {
	if cutoffHz != f.cutoff {
		f.setCutoff(cutoffHz)
	}

	f.z = core.FlushDenormals(x*f.a0 + f.z*f.b1)
	return f.z
}

// Reset sets the state register to value, so a constant input of value
// passes through without a transient.
func (f *Lowpass) Reset(value float32) {
	f.z = value
}

// Value returns the current state without advancing the filter.
func (f *Lowpass) Value() float32 {
	return f.z
}

func (f *Lowpass) setCutoff(cutoffHz float32) {
	f.cutoff = cutoffHz
	// Keep the pole inside the unit interval even where the fast
	// exponential over- or undershoots at the range ends.
	f.b1 = core.Clamp(approx.FastExp(cutoffHz*f.radiansPerHz), 0, 1)
	f.a0 = 1 - f.b1
}

// Highpass is the complement of [Lowpass]: x - lowpass(x).
type Highpass struct {
	lp Lowpass
}

// NewHighpass returns a highpass for sampleRate with zero state.
func NewHighpass(sampleRate float64) (*Highpass, error) {
	lp, err := NewLowpass(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Highpass{lp: *lp}, nil
}

// ProcessSample filters x with the given cutoff in Hz.
func (f *Highpass) ProcessSample(x, cutoffHz float32) float32 {
	return x - f.lp.ProcessSample(x, cutoffHz)
}

// Reset clears the filter state.
func (f *Highpass) Reset() {
	f.lp.Reset(0)
}
