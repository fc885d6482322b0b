package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-pedal/dsp/shaper"
	"github.com/cwbudde/mayfly"
)

type knobDef struct {
	Name     string
	Min, Max float64
}

// knobs are the free parameters of gain * clip(drive * x).
var knobs = []knobDef{
	{Name: "c1", Min: 0, Max: 1},
	{Name: "c3", Min: 0, Max: 0.1},
	{Name: "drive", Min: 0.1, Max: 10},
	{Name: "gain", Min: 0.05, Max: 2},
}

// fit is one candidate curve.
type fit struct {
	Shape shaper.Rational
	Drive float32
	Gain  float32
}

func (f fit) apply(x float32) float32 {
	return f.Gain * f.Shape.Apply(f.Drive*x)
}

func fromNormalized(pos []float64) fit {
	vals := make([]float64, len(knobs))
	for i, k := range knobs {
		x := 0.0
		if i < len(pos) {
			x = min(max(pos[i], 0), 1)
		}
		vals[i] = k.Min + x*(k.Max-k.Min)
	}
	return fit{
		Shape: shaper.Rational{C1: float32(vals[0]), C3: float32(vals[1])},
		Drive: float32(vals[2]),
		Gain:  float32(vals[3]),
	}
}

// target samples the positive half of the diode curve; both curves are odd.
type target struct {
	x, y []float32
}

func newTarget(table *shaper.DiodeTable, inputRange float64, points int) target {
	t := target{x: make([]float32, points), y: make([]float32, points)}
	for i := range points {
		x := float32(inputRange * float64(i) / float64(points-1))
		t.x[i] = x
		t.y[i] = table.Apply(x)
	}
	return t
}

// rmsError returns the RMS difference between f and the target.
func (t target) rmsError(f fit) float64 {
	var sum float64
	for i, x := range t.x {
		d := float64(f.apply(x) - t.y[i])
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(t.x)))
}

type fitOptions struct {
	Pop   int
	Iters int
	Seed  int64
}

// optimize runs one mayfly search and returns the best candidate seen.
func optimize(t target, opts fitOptions) (fit, float64, error) {
	cfg := mayfly.NewDefaultConfig()
	cfg.ProblemSize = len(knobs)
	cfg.LowerBound = 0
	cfg.UpperBound = 1
	cfg.MaxIterations = opts.Iters
	cfg.NPop = opts.Pop
	cfg.NPopF = opts.Pop
	cfg.NC = 2 * opts.Pop
	cfg.NM = max(1, int(math.Round(0.05*float64(opts.Pop))))
	cfg.Rand = rand.New(rand.NewSource(opts.Seed))

	best := fit{}
	bestErr := math.Inf(1)
	cfg.ObjectiveFunc = func(pos []float64) float64 {
		f := fromNormalized(pos)
		e := t.rmsError(f)
		if e < bestErr {
			best, bestErr = f, e
		}
		return e
	}

	if _, err := runMayfly(cfg); err != nil {
		return fit{}, 0, err
	}
	if math.IsInf(bestErr, 1) {
		return fit{}, 0, fmt.Errorf("no candidate evaluated")
	}
	return best, bestErr, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}
