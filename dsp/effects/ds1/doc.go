// Package ds1 emulates a DS-1 style distortion pedal: a transistor
// booster, an op-amp gain stage, an oversampled soft clipper and a
// lowpass/highpass tone blend.
//
// Every stage is a first- or second-order bilinear filter from
// [biquad]; the op-amp stage recomputes its coefficients whenever the
// smoothed dist control moves.
package ds1
