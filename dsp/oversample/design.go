package oversample

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-pedal/dsp/filter/fir"
	"github.com/cwbudde/algo-pedal/dsp/simd"
	"github.com/cwbudde/algo-pedal/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultTapsPerPhase  = 16
	defaultAttenuationDB = 90.0
	defaultCutoff        = 0.47 // fraction of the base sample rate

	// Spectral floor added before the cepstral log, relative to the
	// smallest non-zero magnitude bin.
	cepstrumFloor = 1e-7
)

var errZeroSum = errors.New("oversample: designed zero-sum filter")

// DesignOption mutates prototype design parameters.
type DesignOption func(*designConfig) error

type designConfig struct {
	tapsPerPhase  int
	attenuationDB float64
	cutoff        float64
	minimumPhase  bool
}

func defaultDesignConfig() designConfig {
	return designConfig{
		tapsPerPhase:  defaultTapsPerPhase,
		attenuationDB: defaultAttenuationDB,
		cutoff:        defaultCutoff,
		minimumPhase:  true,
	}
}

// WithTapsPerPhase sets the number of lane vectors in each FIR. It must
// be a power of two.
func WithTapsPerPhase(n int) DesignOption {
	return func(cfg *designConfig) error {
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf("oversample: taps per phase must be a power of two: %d", n)
		}

		cfg.tapsPerPhase = n

		return nil
	}
}

// WithAttenuation sets the Kaiser stopband attenuation target in dB.
func WithAttenuation(db float64) DesignOption {
	return func(cfg *designConfig) error {
		if db <= 0 || math.IsNaN(db) || math.IsInf(db, 0) {
			return fmt.Errorf("oversample: attenuation must be finite and > 0: %f", db)
		}

		cfg.attenuationDB = db

		return nil
	}
}

// WithCutoff sets the passband edge as a fraction of the base sample rate.
func WithCutoff(fraction float64) DesignOption {
	return func(cfg *designConfig) error {
		if !(fraction > 0 && fraction < 0.5) {
			return fmt.Errorf("oversample: cutoff must be in (0, 0.5): %f", fraction)
		}

		cfg.cutoff = fraction

		return nil
	}
}

// WithLinearPhase keeps the symmetric windowed-sinc prototype instead of
// converting it to minimum phase. Latency becomes a whole number of base
// samples at the cost of pre-ringing.
func WithLinearPhase() DesignOption {
	return func(cfg *designConfig) error {
		cfg.minimumPhase = false
		return nil
	}
}

// Prototype is the lowpass shared by the interpolation and decimation
// filters, at the oversampled rate and normalized to unit DC gain.
type Prototype struct {
	Taps         []float64
	Lanes        int
	MinimumPhase bool
}

// Design builds the prototype for a lanes-times oversampler.
//
// The linear-phase design is a Kaiser windowed sinc of lanes*tapsPerPhase
// taps. The minimum-phase design starts from a linear-phase sinc of twice
// that length minus one and keeps the first half of its homomorphic
// minimum-phase counterpart, whose magnitude is the square root of the
// original's.
func Design(lanes int, opts ...DesignOption) (Prototype, error) {
	if lanes < 2 || lanes&(lanes-1) != 0 {
		return Prototype{}, fmt.Errorf("oversample: lane count must be a power of two >= 2: %d", lanes)
	}

	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Prototype{}, err
		}
	}

	n := lanes * cfg.tapsPerPhase
	if cfg.minimumPhase {
		n = 2*n - 1
	}

	taps, err := windowedSinc(n, cfg.cutoff/float64(lanes), window.KaiserBeta(cfg.attenuationDB))
	if err != nil {
		return Prototype{}, err
	}

	if cfg.minimumPhase {
		taps, err = minimumPhase(taps)
		if err != nil {
			return Prototype{}, err
		}
		if err := normalizeDC(taps); err != nil {
			return Prototype{}, err
		}
	}

	return Prototype{Taps: taps, Lanes: lanes, MinimumPhase: cfg.minimumPhase}, nil
}

// windowedSinc returns an n-tap lowpass with cutoff fc in cycles per
// sample, normalized so the taps sum to one.
func windowedSinc(n int, fc, beta float64) ([]float64, error) {
	taps := make([]float64, n)
	center := 0.5 * float64(n-1)
	for i := range taps {
		taps[i] = 2 * fc * sinc(2*fc*(float64(i)-center))
	}

	w, err := window.Kaiser(n, beta)
	if err != nil {
		return nil, err
	}
	if err := window.ApplyInPlace(taps, w); err != nil {
		return nil, err
	}

	if err := normalizeDC(taps); err != nil {
		return nil, err
	}
	return taps, nil
}

func normalizeDC(taps []float64) error {
	var sum float64
	for _, v := range taps {
		sum += v
	}
	if sum == 0 {
		return errZeroSum
	}

	vecmath.ScaleBlock(taps, taps, 1/sum)
	return nil
}

// minimumPhase converts a linear-phase filter of odd length n into a
// minimum-phase filter of length n/2+1 by folding its real cepstrum.
func minimumPhase(h []float64) ([]float64, error) {
	nfft := 1
	for float64(nfft) < 2*float64(len(h)-1)/0.01 {
		nfft <<= 1
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("oversample: fft plan: %w", err)
	}

	buf := make([]complex128, nfft)
	spec := make([]complex128, nfft)
	for i, v := range h {
		buf[i] = complex(v, 0)
	}
	if err := plan.Forward(spec, buf); err != nil {
		return nil, fmt.Errorf("oversample: forward fft: %w", err)
	}

	re := make([]float64, nfft)
	im := make([]float64, nfft)
	for i, c := range spec {
		re[i], im[i] = real(c), imag(c)
	}
	mag := make([]float64, nfft)
	vecmath.Magnitude(mag, re, im)

	floor := math.Inf(1)
	for _, m := range mag {
		if m > 0 && m < floor {
			floor = m
		}
	}
	if math.IsInf(floor, 1) {
		return nil, errZeroSum
	}
	floor *= cepstrumFloor

	// Half the log magnitude: the result's magnitude is sqrt(|H|).
	for i, m := range mag {
		spec[i] = complex(0.5*math.Log(m+floor), 0)
	}
	if err := plan.Inverse(buf, spec); err != nil {
		return nil, fmt.Errorf("oversample: inverse fft: %w", err)
	}

	// Fold the anti-causal half of the cepstrum onto the causal half.
	stop := (len(h) + 1) / 2
	for i := range buf {
		c := real(buf[i])
		switch {
		case i == 0:
		case i < stop:
			c *= 2
		case i == stop && len(h)%2 == 1:
		default:
			c = 0
		}
		buf[i] = complex(c, 0)
	}

	if err := plan.Forward(spec, buf); err != nil {
		return nil, fmt.Errorf("oversample: forward fft: %w", err)
	}
	for i, c := range spec {
		spec[i] = cmplx.Exp(c)
	}
	if err := plan.Inverse(buf, spec); err != nil {
		return nil, fmt.Errorf("oversample: inverse fft: %w", err)
	}

	out := make([]float64, len(h)/2+len(h)%2)
	for i := range out {
		out[i] = real(buf[i])
	}
	return out, nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

// Polyphase splits p into lane-vector tables for [Oversampler]. Lane i of
// up[k] is Taps[k*N+i]; lane j of down[k] is Taps[k*N+N-1-j].
func Polyphase[V simd.Vector[V]](p Prototype) (up, down []V, err error) {
	lanes := simd.LanesOf[V]()
	if lanes != p.Lanes {
		return nil, nil, fmt.Errorf("oversample: prototype for %d lanes used with %d-lane vectors", p.Lanes, lanes)
	}
	if len(p.Taps)%lanes != 0 {
		return nil, nil, fmt.Errorf("oversample: %d taps do not split into %d phases", len(p.Taps), lanes)
	}

	vectors := len(p.Taps) / lanes
	up = make([]V, vectors)
	down = make([]V, vectors)
	for k := range vectors {
		for i := range lanes {
			up[k] = up[k].WithLane(i, float32(p.Taps[k*lanes+i]))
			down[k] = down[k].WithLane(i, float32(p.Taps[k*lanes+lanes-1-i]))
		}
	}

	return up, down, nil
}

// GroupDelay returns the DC group delay of the prototype in oversampled
// samples.
func (p Prototype) GroupDelay() float64 {
	var num, den float64
	for i, v := range p.Taps {
		num += float64(i) * v
		den += v
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// StopbandDB returns the peak magnitude in dB of the prototype from edge
// (a fraction of the base sample rate) up to the oversampled Nyquist,
// sampled on a dense grid.
func (p Prototype) StopbandDB(edge float64) float64 {
	const points = 2048

	start := edge / float64(p.Lanes) // cycles per oversampled sample
	peak := math.Inf(-1)
	for i := range points + 1 {
		f := start + (0.5-start)*float64(i)/points
		peak = max(peak, fir.MagnitudeDB(p.Taps, f, 1))
	}
	return peak
}
