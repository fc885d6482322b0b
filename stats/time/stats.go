// Package time computes level statistics of rendered float32 audio.
package time

import (
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Stats holds time-domain level statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
}

// Calculate computes the statistics in a single pass.
func Calculate(signal []float32) Stats {
	if len(signal) == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	var sum, sumSq, peak float64
	peakPos := 0
	for i, v := range signal {
		x := float64(v)
		sum += x
		sumSq += x * x
		if a := math.Abs(x); a > peak {
			peak, peakPos = a, i
		}
	}

	n := float64(len(signal))
	rms := math.Sqrt(sumSq / n)
	crest := 0.0
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:         len(signal),
		DC:             sum / n,
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           peak,
		PeakPos:        peakPos,
		Peak_dB:        core.LinearToDB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: core.LinearToDB(crest),
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float32) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range signal {
		x := float64(v)
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float32) float64 {
	var peak float64
	for _, v := range signal {
		peak = max(peak, math.Abs(float64(v)))
	}

	return peak
}
