// Package delay provides the fixed-capacity circular sample store that the
// repeat engine reads its taps from.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/interp"
)

// Interpolation selects how a fractional read position is resolved.
type Interpolation int

const (
	// None truncates to the nearest older sample.
	None Interpolation = iota
	// Linear blends the two samples bracketing the read position.
	Linear
	// Cubic uses 4-point Hermite interpolation.
	Cubic
)

// guardSamples keeps room for the interpolation neighbours of the oldest
// readable position.
const guardSamples = 3

// Line is a circular delay line addressed by time in milliseconds.
//
// The capacity is fixed at construction. Write advances the cursor by
// exactly one slot; Read never moves it.
type Line struct {
	buffer   []float32
	writePos int
	// samplesPerMs converts a read time to a fractional sample offset.
	samplesPerMs float64
	maxDelay     float64
}

// New returns a delay line that can hold maxSeconds of audio at sampleRate.
func New(sampleRate, maxSeconds float64) (*Line, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	if maxSeconds <= 0 || math.IsNaN(maxSeconds) || math.IsInf(maxSeconds, 0) {
		return nil, fmt.Errorf("delay max time must be > 0: %f", maxSeconds)
	}

	size := int(math.Ceil(sampleRate*maxSeconds)) + guardSamples + 1

	return &Line{
		buffer:       make([]float32, size),
		samplesPerMs: sampleRate / 1000,
		maxDelay:     float64(size - guardSamples),
	}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// MaxTimeMs returns the longest readable delay in milliseconds.
func (d *Line) MaxTimeMs() float64 {
	return d.maxDelay / d.samplesPerMs
}

// Write stores one sample at the cursor and advances it.
func (d *Line) Write(sample float32) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos == len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the signal timeMs behind the most recently written sample.
// Read(0, ...) returns that sample itself. Times beyond MaxTimeMs are
// clamped; negative and NaN times read as zero delay.
func (d *Line) Read(timeMs float32, mode Interpolation) float32 {
	delay := float64(timeMs) * d.samplesPerMs
	if !(delay >= 0) {
		delay = 0
	}
	if delay > d.maxDelay {
		delay = d.maxDelay
	}

	p := int(delay)
	frac := float32(delay - float64(p))

	switch mode {
	case Linear:
		return interp.Linear2(frac, d.at(p), d.at(p+1))
	case Cubic:
		return interp.Hermite4(frac, d.at(max(0, p-1)), d.at(p), d.at(p+1), d.at(p+2))
	default:
		return d.at(p)
	}
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

// at returns the sample written offset writes ago (0 = newest).
func (d *Line) at(offset int) float32 {
	i := d.writePos - 1 - offset
	if i < 0 {
		i += len(d.buffer)
	}
	return d.buffer[i]
}
