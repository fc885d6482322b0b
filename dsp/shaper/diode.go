package shaper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/simd"
)

const (
	defaultTableSize  = 1025
	defaultInputRange = 4.0 // volts

	newtonIterations = 64
	newtonTolerance  = 1e-12
)

// Diode describes one diode of an antiparallel pair behind a series
// resistor.
type Diode struct {
	SaturationCurrent float64 // Is, amperes
	Emission          float64 // n
	ThermalVoltage    float64 // Vt, volts
	SeriesResistance  float64 // R, ohms
}

// Silicon1N914 is a 1N914 pair behind the 1k resistor of the rat clipper.
var Silicon1N914 = Diode{
	SaturationCurrent: 2.52e-9,
	Emission:          1.752,
	ThermalVoltage:    0.02585,
	SeriesResistance:  1000,
}

// DiodeOption mutates DiodeTable construction.
type DiodeOption func(*diodeConfig) error

type diodeConfig struct {
	diode      Diode
	size       int
	inputRange float64
}

// WithDiode selects the diode model.
func WithDiode(d Diode) DiodeOption {
	return func(cfg *diodeConfig) error {
		fields := []struct {
			name  string
			value float64
		}{
			{"saturation current", d.SaturationCurrent},
			{"emission", d.Emission},
			{"thermal voltage", d.ThermalVoltage},
			{"series resistance", d.SeriesResistance},
		}
		for _, f := range fields {
			if f.value <= 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
				return fmt.Errorf("shaper: diode %s must be finite and > 0: %g", f.name, f.value)
			}
		}

		cfg.diode = d

		return nil
	}
}

// WithTableSize sets the number of table entries covering [0, inputRange].
func WithTableSize(n int) DiodeOption {
	return func(cfg *diodeConfig) error {
		if n < 2 {
			return fmt.Errorf("shaper: table size must be >= 2: %d", n)
		}

		cfg.size = n

		return nil
	}
}

// WithInputRange sets the input voltage mapped to the last entry. Inputs
// beyond it hold the last entry.
func WithInputRange(volts float64) DiodeOption {
	return func(cfg *diodeConfig) error {
		if volts <= 0 || math.IsNaN(volts) || math.IsInf(volts, 0) {
			return fmt.Errorf("shaper: input range must be finite and > 0: %f", volts)
		}

		cfg.inputRange = volts

		return nil
	}
}

// DiodeTable maps an input voltage to the voltage across an antiparallel
// diode pair. Only the positive half is stored; the negative half is its
// mirror, so the curve is exactly odd.
type DiodeTable struct {
	values []float32
	scale  float32 // entries per volt
	last   float32
}

// NewDiodeTable solves the diode equation for every entry.
func NewDiodeTable(opts ...DiodeOption) (*DiodeTable, error) {
	cfg := diodeConfig{
		diode:      Silicon1N914,
		size:       defaultTableSize,
		inputRange: defaultInputRange,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	values := make([]float32, cfg.size)
	step := cfg.inputRange / float64(cfg.size-1)
	v := 0.0
	for i := range values {
		v = solveDiode(cfg.diode, float64(i)*step, v)
		values[i] = float32(v)
	}

	return &DiodeTable{
		values: values,
		scale:  float32(float64(cfg.size-1) / cfg.inputRange),
		last:   float32(cfg.size - 1),
	}, nil
}

// solveDiode returns v with vin = v + 2 R Is sinh(v/(n Vt)), starting
// Newton from guess. The root lies in [0, vin] for vin >= 0; steps that
// leave the bracket fall back to bisection.
func solveDiode(d Diode, vin, guess float64) float64 {
	if vin <= 0 {
		return 0
	}

	nvt := d.Emission * d.ThermalVoltage
	k := 2 * d.SeriesResistance * d.SaturationCurrent

	lo, hi := 0.0, vin
	v := min(max(guess, lo), hi)
	for range newtonIterations {
		f := v + k*math.Sinh(v/nvt) - vin
		if f == 0 {
			return v
		}
		if f > 0 {
			hi = v
		} else {
			lo = v
		}

		next := v - f/(1+k/nvt*math.Cosh(v/nvt))
		if !(next > lo && next < hi) {
			next = 0.5 * (lo + hi)
		}

		if math.Abs(next-v) < newtonTolerance {
			return next
		}
		v = next
	}

	return v
}

// Apply returns the diode voltage for input x in volts.
func (d *DiodeTable) Apply(x float32) float32 {
	pos := x * d.scale
	if pos < 0 {
		pos = -pos
	}

	var y float32
	switch {
	case pos < d.last:
		i := int(pos)
		frac := pos - float32(i)
		y = d.values[i] + frac*(d.values[i+1]-d.values[i])
	case pos != pos:
		return 0
	default:
		y = d.values[len(d.values)-1]
	}

	if x < 0 {
		return -y
	}
	return y
}

// Limit returns the largest output magnitude.
func (d *DiodeTable) Limit() float32 {
	return d.values[len(d.values)-1]
}

// Len returns the number of stored entries.
func (d *DiodeTable) Len() int {
	return len(d.values)
}

// DiodeVec applies d to every lane of v.
func DiodeVec[V simd.Vector[V]](d *DiodeTable, v V) V {
	for i := range v.Lanes() {
		v = v.WithLane(i, d.Apply(v.Lane(i)))
	}
	return v
}
