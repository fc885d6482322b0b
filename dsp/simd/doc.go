// Package simd provides fixed-width float32 lane vectors used to carry one
// block of oversampled sub-samples through the oversampler and its FIR
// filters.
//
// Go has no portable SIMD types, so each width is a plain array type with
// value-receiver methods. The arrays are small enough to live in registers
// and the loops have constant trip counts, which lets the compiler unroll
// them. Generic code is written against [Vector] and instantiated with one
// concrete width per engine:
//
//   - [X2]:  2 lanes
//   - [X4]:  4 lanes
//   - [X8]:  8 lanes (256-bit)
//   - [X16]: 16 lanes
//
// All operations are pure and allocation free.
package simd
