// Package interp provides the fractional interpolation kernels used by the
// delay buffer:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// The [delay.Line] selects one of them per read through its
// Interpolation argument.
package interp
