// Package alias measures how much of a distorted tone's energy lies off
// its harmonic series, which for a memoryless nonlinearity is aliasing.
package alias

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// Blackman-Harris main lobe half width in bins.
	defaultCaptureBins = 4
	// Bins around DC excluded from every energy sum.
	dcBins = 4
)

// ErrNoFundamental is returned when the fundamental does not fall inside
// the analyzed band.
var ErrNoFundamental = errors.New("alias: fundamental outside the analyzed band")

// Config holds analysis parameters.
type Config struct {
	SampleRate      float64
	FundamentalFreq float64
	// CaptureBins is the half width in bins summed around each harmonic.
	// Zero selects the Blackman-Harris main lobe.
	CaptureBins int
}

// Result holds the measured energies and their ratios.
type Result struct {
	FundamentalBin   int
	FundamentalPower float64
	HarmonicPower    float64 // 2nd harmonic and above, below Nyquist
	AliasPower       float64 // everything else except DC
	AliasDB          float64 // AliasPower relative to FundamentalPower
	THDDB            float64 // HarmonicPower relative to FundamentalPower
}

// Analyze windows signal with a Blackman-Harris window, transforms it with
// an FFT of the next power-of-two length and splits the power spectrum
// into fundamental, harmonic and non-harmonic energy.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) < 2 {
		return Result{}, fmt.Errorf("alias: signal too short: %d", len(signal))
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("alias: sample rate must be > 0: %f", cfg.SampleRate)
	}

	fftSize := nextPowerOf2(len(signal))

	coeffs, err := window.BlackmanHarris(len(signal))
	if err != nil {
		return Result{}, err
	}

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("alias: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("alias: forward fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return analyzePower(power, fftSize, cfg)
}

func analyzePower(power []float64, fftSize int, cfg Config) (Result, error) {
	capture := cfg.CaptureBins
	if capture <= 0 {
		capture = defaultCaptureBins
	}

	binHz := cfg.SampleRate / float64(fftSize)
	maxBin := len(power) - 1

	fundamental := int(math.Round(cfg.FundamentalFreq / binHz))
	if fundamental <= dcBins+capture || fundamental+capture > maxBin {
		return Result{}, fmt.Errorf("%w: %f Hz", ErrNoFundamental, cfg.FundamentalFreq)
	}

	// Claim bins band by band; a bin belongs to the first band that
	// reaches it.
	claimed := make([]bool, len(power))
	sumBand := func(center int) float64 {
		var s float64
		for b := max(center-capture, 0); b <= min(center+capture, maxBin); b++ {
			if !claimed[b] {
				claimed[b] = true
				s += power[b]
			}
		}
		return s
	}

	for b := 0; b <= dcBins; b++ {
		claimed[b] = true
	}

	res := Result{FundamentalBin: fundamental}
	res.FundamentalPower = sumBand(fundamental)
	for h := 2 * fundamental; h-capture <= maxBin; h += fundamental {
		res.HarmonicPower += sumBand(h)
	}
	for b, p := range power {
		if !claimed[b] {
			res.AliasPower += p
		}
	}

	res.AliasDB = ratioDB(res.AliasPower, res.FundamentalPower)
	res.THDDB = ratioDB(res.HarmonicPower, res.FundamentalPower)

	return res, nil
}

func ratioDB(num, den float64) float64 {
	if den <= 0 {
		return math.Inf(1)
	}
	if num <= 0 {
		return math.Inf(-1)
	}
	return core.LinearPowerToDB(num / den)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
