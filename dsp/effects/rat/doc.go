// Package rat emulates a RAT-style distortion pedal: a frequency-dependent
// op-amp gain stage, an oversampled silicon diode clipper and a passive
// lowpass tone control.
//
// Controls are normalized to [0, 1]. They follow an audio taper (x^3) and
// are ramp-smoothed so automation does not click.
package rat
