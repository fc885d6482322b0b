package fir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/simd"
)

// ErrLength is returned when the coefficient table length is not a
// non-zero power of two.
var ErrLength = errors.New("fir length must be a power of two")

// Filter is a direct-form FIR filter over lane vectors.
type Filter[V simd.Vector[V]] struct {
	buffer []V
	// reversed holds the taps oldest-first so convolution can walk the
	// circular buffer from the write cursor forward.
	reversed []V
	index    int
	mask     int
}

// New creates a filter from coeffs given in impulse-response order
// (coeffs[0] is applied to the newest input). The coefficients are copied.
func New[V simd.Vector[V]](coeffs []V) (*Filter[V], error) {
	n := len(coeffs)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}

	reversed := make([]V, n)
	for i, c := range coeffs {
		reversed[n-1-i] = c
	}

	return &Filter[V]{
		buffer:   make([]V, n),
		reversed: reversed,
		mask:     n - 1,
	}, nil
}

// ProcessSample writes x into the delay line and returns the convolution of
// the line with the taps:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]   (per lane)
func (f *Filter[V]) ProcessSample(x V) V {
	f.buffer[f.index] = x
	f.index = (f.index + 1) & f.mask

	var y V
	// After the write, f.index points at the oldest entry.
	older, newer := f.buffer[f.index:], f.buffer[:f.index]
	k := 0
	for _, v := range older {
		y = y.Add(v.Mul(f.reversed[k]))
		k++
	}
	for _, v := range newer {
		y = y.Add(v.Mul(f.reversed[k]))
		k++
	}

	return y
}

// Reset clears the delay line to zero.
func (f *Filter[V]) Reset() {
	var zero V
	for i := range f.buffer {
		f.buffer[i] = zero
	}
	f.index = 0
}

// Len returns the number of taps.
func (f *Filter[V]) Len() int {
	return len(f.buffer)
}

// Coefficients returns a copy of the taps in impulse-response order.
func (f *Filter[V]) Coefficients() []V {
	n := len(f.reversed)
	c := make([]V, n)
	for i, v := range f.reversed {
		c[n-1-i] = v
	}
	return c
}

// Response computes the complex frequency response of the scalar FIR h at
// freqHz for the given sample rate.
func Response(h []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var r complex128
	for k, c := range h {
		r += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return r
}

// MagnitudeDB returns the magnitude response of h in dB at freqHz.
func MagnitudeDB(h []float64, freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(Response(h, freqHz, sampleRate)))
}
