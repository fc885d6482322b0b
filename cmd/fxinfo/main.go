// Command fxinfo prints properties of the oversampling prototypes and the
// measured aliasing of each distortion engine.
//
// Usage:
//
//	fxinfo [flags]
//
// Examples:
//
//	fxinfo
//	fxinfo -rate 44100 -freq 2500
//	fxinfo -length 65536 -amp 0.1
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/signal"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	length := flag.Int("length", 1<<15, "analysis length in samples (power of two)")
	freq := flag.Float64("freq", 5000, "test tone frequency in Hz, snapped to an FFT bin")
	amp := flag.Float64("amp", 0.5, "test tone amplitude")
	stopEdge := flag.Float64("stop-edge", 0.6, "stopband edge as a fraction of the sample rate")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints oversampler prototypes and engine alias levels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	gen, err := signal.NewGenerator([]core.ProcessorOption{
		core.WithSampleRate(*rate),
		core.WithAnalysisLength(*length),
	})
	if err != nil {
		die("error: %v", err)
	}

	rows, err := describePrototypes([]int{2, 4, 8, 16}, *stopEdge)
	if err != nil {
		die("error: %v", err)
	}
	printPrototypes(rows, *stopEdge)
	fmt.Println()

	engines, err := newEngines(gen.Config())
	if err != nil {
		die("error: %v", err)
	}
	printMeasurements(engines, gen, gen.BinFrequency(*freq), *amp)
}

func printPrototypes(rows []prototypeRow, stopEdge float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Lanes\tPhase\tTaps\tGroup Delay [samples]\tStopband @%.2f fs [dB]\n", stopEdge)
	fmt.Fprintf(tw, "-----\t-----\t----\t---------------------\t----------------------\n")

	for _, r := range rows {
		phase := "linear"
		if r.MinimumPhase {
			phase = "minimum"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%.1f\n", r.Lanes, phase, r.Taps, r.GroupDelay, r.StopbandDB)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printMeasurements(engines []engine, gen *signal.Generator, freq, amp float64) {
	sampleRate := gen.Config().SampleRate
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Engine\tTone [Hz]\tLatency [samples]\tLatency [ms]\tPeak [dBFS]\tRMS [dBFS]\tTHD [dB]\tAlias [dB]\n")
	fmt.Fprintf(tw, "------\t---------\t-----------------\t------------\t-----------\t----------\t--------\t----------\n")

	for _, e := range engines {
		m, err := measure(e, gen, freq, amp)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.Name, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%.3f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			e.Name, freq, e.Latency, core.SamplesToMs(e.Latency, sampleRate),
			m.Levels.Peak_dB, m.Levels.RMS_dB,
			m.Alias.THDDB, m.Alias.AliasDB,
		)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
