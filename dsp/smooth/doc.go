// Package smooth provides per-sample parameter smoothers.
//
// [Ramp] moves linearly to a new target over a fixed number of samples
// and is what the pedal engines use for their knobs. [OnePole] follows
// its target exponentially.
//
// Both must be snapped with Reset when an engine sees its first parameter
// values, otherwise the first block audibly sweeps up from zero.
package smooth
