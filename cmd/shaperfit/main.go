// Command shaperfit fits the rational soft clipper to the diode clipper
// curve.
//
// It searches C1, C3, an input drive and an output gain so that
// gain*clip(drive*x) tracks the diode table over its input range, and
// prints the best candidate.
//
// Usage:
//
//	shaperfit [flags]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-pedal/dsp/shaper"
)

func main() {
	inputRange := flag.Float64("range", 4, "diode table input range in volts")
	points := flag.Int("points", 257, "curve points compared per evaluation")
	pop := flag.Int("pop", 20, "male and female population size")
	iters := flag.Int("iters", 200, "mayfly iterations")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shaperfit [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Fits the rational soft clipper to the diode clipper curve.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *points < 2 {
		die("points must be >= 2")
	}
	if *iters < 1 {
		die("iters must be >= 1")
	}
	if *pop < 2 {
		*pop = 2
	}

	table, err := shaper.NewDiodeTable(shaper.WithInputRange(*inputRange))
	if err != nil {
		die("failed to build diode table: %v", err)
	}
	t := newTarget(table, *inputRange, *points)

	baseline := fit{Shape: shaper.DS1Rational, Drive: 1, Gain: table.Limit()}
	fmt.Printf("baseline c1=%.8f c3=%.8f drive=1 gain=%.6f rms=%.6f\n",
		baseline.Shape.C1, baseline.Shape.C3, baseline.Gain, t.rmsError(baseline))

	best, rms, err := optimize(t, fitOptions{Pop: *pop, Iters: *iters, Seed: *seed})
	if err != nil {
		die("optimization failed: %v", err)
	}
	fmt.Printf("best     c1=%.8f c3=%.8f drive=%.6f gain=%.6f rms=%.6f\n",
		best.Shape.C1, best.Shape.C3, best.Drive, best.Gain, rms)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
