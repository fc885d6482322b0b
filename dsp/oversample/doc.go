// Package oversample runs a nonlinear lane-vector function at N times the
// base sample rate, where N is the lane count of the vector type.
//
// One base-rate sample is splatted into every lane, interpolated by a
// polyphase FIR whose lane i produces sub-sample i, shaped, and decimated
// by a second polyphase FIR whose lanes are summed. Both FIRs share one
// lowpass prototype designed by [Design].
package oversample
