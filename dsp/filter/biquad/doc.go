// Package biquad provides a float32 second-order IIR section in Direct Form
// II Transposed together with the bilinear first-order designs used by the
// pedal tone stages.
//
// A [Section] reads its [Coefficients] on every call, so a caller whose
// coefficients track a control (a distortion knob) may replace them
// between samples without disturbing the state registers.
package biquad
