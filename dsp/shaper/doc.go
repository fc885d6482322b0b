// Package shaper provides the memoryless nonlinearities of the pedal
// engines: a rational soft clipper and a table-driven antiparallel diode
// clipper.
//
// Both curves are odd, monotonically non-decreasing and bounded, and both
// have lane-vector forms for use inside an oversampler.
package shaper
