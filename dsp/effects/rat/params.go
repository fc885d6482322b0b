package rat

import (
	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/smooth"
)

// Taper maps a normalized control to the audio-taper value the circuit
// sees. x is clamped to [0, 1] first.
func Taper(x float32) float32 {
	x = core.Clamp(x, 0, 1)
	return x * x * x
}

// Params smooths the three tapered controls. The first Set snaps to its
// values; later calls ramp.
type Params struct {
	distortion  *smooth.Ramp
	filter      *smooth.Ramp
	volume      *smooth.Ramp
	initialized bool
}

// NewParams creates smoothers that take rampMs to reach a new target.
func NewParams(sampleRate, rampMs float64) (*Params, error) {
	var (
		p   Params
		err error
	)
	for _, r := range []**smooth.Ramp{&p.distortion, &p.filter, &p.volume} {
		if *r, err = smooth.New(sampleRate, rampMs); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Set targets the given normalized controls.
func (p *Params) Set(distortion, filter, volume float32) {
	if !p.initialized {
		p.Initialize(distortion, filter, volume)
		return
	}

	p.distortion.SetTarget(Taper(distortion))
	p.filter.SetTarget(Taper(filter))
	p.volume.SetTarget(Taper(volume))
}

// Initialize jumps to the given normalized controls without ramping.
func (p *Params) Initialize(distortion, filter, volume float32) {
	p.distortion.Reset(Taper(distortion))
	p.filter.Reset(Taper(filter))
	p.volume.Reset(Taper(volume))
	p.initialized = true
}

// Next advances all smoothers one sample and returns the tapered values.
func (p *Params) Next() (distortion, filter, volume float32) {
	return p.distortion.Next(), p.filter.Next(), p.volume.Next()
}

// Reset forgets the current values so the next Set snaps again.
func (p *Params) Reset() {
	p.Initialize(0, 0, 0)
	p.initialized = false
}
