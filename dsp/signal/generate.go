// Package signal generates the deterministic float32 test signals used to
// measure the engines offline.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the processor settings coreOpts
// select.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) (*Generator, error) {
	cfg, err := core.ApplyProcessorOptions(coreOpts...)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}

	g := &Generator{cfg: cfg, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// BinFrequency snaps freqHz to the nearest bin of an AnalysisLength-point
// FFT, never below the first bin. A tone on a bin center leaks no energy
// into its neighbours.
func (g *Generator) BinFrequency(freqHz float64) float64 {
	n := float64(g.cfg.AnalysisLength)
	bin := math.Max(1, math.Round(freqHz*n/g.cfg.SampleRate))
	return bin * g.cfg.SampleRate / n
}

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %g]: %f", g.cfg.SampleRate/2, freqHz)
	}

	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}
