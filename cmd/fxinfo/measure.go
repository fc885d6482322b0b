package main

import (
	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/effects/ds1"
	"github.com/cwbudde/algo-pedal/dsp/effects/rat"
	"github.com/cwbudde/algo-pedal/dsp/oversample"
	"github.com/cwbudde/algo-pedal/dsp/signal"
	"github.com/cwbudde/algo-pedal/measure/alias"
	timestats "github.com/cwbudde/algo-pedal/stats/time"
)

// warmupSamples are rendered and discarded before the analysis window.
const warmupSamples = 4096

type prototypeRow struct {
	Lanes        int
	MinimumPhase bool
	Taps         int
	GroupDelay   float64
	StopbandDB   float64
}

// describePrototypes designs the default prototype for every lane count in
// both phase variants. stopEdge is the stopband edge as a fraction of the
// base rate.
func describePrototypes(laneCounts []int, stopEdge float64) ([]prototypeRow, error) {
	var rows []prototypeRow
	for _, lanes := range laneCounts {
		for _, opts := range [][]oversample.DesignOption{nil, {oversample.WithLinearPhase()}} {
			p, err := oversample.Design(lanes, opts...)
			if err != nil {
				return nil, err
			}
			rows = append(rows, prototypeRow{
				Lanes:        lanes,
				MinimumPhase: p.MinimumPhase,
				Taps:         len(p.Taps),
				GroupDelay:   p.GroupDelay(),
				StopbandDB:   p.StopbandDB(stopEdge),
			})
		}
	}
	return rows, nil
}

// engine renders one sample with fixed controls.
type engine struct {
	Name    string
	Latency float64
	Process func(x float32) float32
}

func newEngines(cfg core.ProcessorConfig) ([]engine, error) {
	var engines []engine

	for _, v := range []struct {
		suffix string
		opts   []oversample.DesignOption
	}{
		{"", nil},
		{" linear", []oversample.DesignOption{oversample.WithLinearPhase()}},
	} {
		r, err := rat.New(cfg.SampleRate, rat.WithOversampler(v.opts...))
		if err != nil {
			return nil, err
		}
		engines = append(engines, engine{
			Name:    "rat" + v.suffix,
			Latency: r.Latency(),
			Process: func(x float32) float32 { return r.ProcessSample(x, 0.8, 0, 1) },
		})

		d, err := ds1.New(cfg.SampleRate, ds1.WithOversampler(v.opts...))
		if err != nil {
			return nil, err
		}
		engines = append(engines, engine{
			Name:    "ds1" + v.suffix,
			Latency: d.Latency(),
			Process: func(x float32) float32 { return d.ProcessSample(x, 0.5, 1, 0.8) },
		})
	}

	return engines, nil
}

// measurement is the analysis of one engine's settled output.
type measurement struct {
	Alias  alias.Result
	Levels timestats.Stats
}

// measure drives e with a sine from g and analyzes the settled output.
func measure(e engine, g *signal.Generator, freqHz, amplitude float64) (measurement, error) {
	cfg := g.Config()
	n := cfg.AnalysisLength

	in, err := g.Sine(freqHz, amplitude, warmupSamples+n)
	if err != nil {
		return measurement{}, err
	}
	for i, x := range in {
		in[i] = e.Process(x)
	}
	out := in[warmupSamples:]

	spectrum := make([]float64, n)
	for i, y := range out {
		spectrum[i] = float64(y)
	}
	res, err := alias.Analyze(spectrum, alias.Config{
		SampleRate:      cfg.SampleRate,
		FundamentalFreq: freqHz,
	})
	if err != nil {
		return measurement{}, err
	}

	return measurement{Alias: res, Levels: timestats.Calculate(out)}, nil
}
