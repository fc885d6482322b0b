// Package repeat implements a multi-tap echo whose taps are spaced by a
// repeat frequency, weighted by a feedback law and optionally skewed so
// successive gaps grow or shrink geometrically.
//
// Parameter changes never jump: the engine keeps two tap sets and fades
// from the old one to the new one with an equal-power window. A change
// that arrives while a fade is running waits for it to finish.
package repeat
