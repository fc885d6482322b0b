// Package fir provides a circular-buffer FIR filter whose samples and taps
// are lane vectors.
//
// A [Filter] convolves a stream of [simd.Vector] values with a fixed table
// of coefficient vectors, lane by lane. The oversampler uses one instance
// for interpolation and one for decimation; only the coefficient table
// differs.
//
// The buffer length must be a power of two so the write cursor can wrap
// with a mask. Coefficient design lives in dsp/oversample.
package fir
