// Package core holds the numeric helpers shared by every engine: sample-rate
// validation, clamping, dB conversion and millisecond/sample conversion.
package core
