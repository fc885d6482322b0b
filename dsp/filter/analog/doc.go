// Package analog discretizes continuous-time transfer functions of up to
// third order and runs them as per-sample IIR filters.
//
// The op-amp gain stage of the rat engine is modeled here: the s-domain
// coefficients follow the distortion pot on every sample, are mapped to
// the z-domain by the bilinear transform, and the result is band-limited
// by a one-pole correction that stands in for the op-amp's finite
// gain-bandwidth product.
package analog
