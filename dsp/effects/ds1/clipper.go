package ds1

import (
	"github.com/cwbudde/algo-pedal/dsp/filter/biquad"
	"github.com/cwbudde/algo-pedal/dsp/oversample"
	"github.com/cwbudde/algo-pedal/dsp/shaper"
	"github.com/cwbudde/algo-pedal/dsp/simd"
)

const (
	clipperPreLowpassHz = 7230.0
	clipperGain         = 0.558838
)

// clipper band-limits the op-amp output and soft-clips it at 8x.
type clipper struct {
	lowpass     biquad.Section
	oversampler *oversample.Oversampler[simd.X8]
	shape       shaper.Rational
}

func (c *clipper) clip(v simd.X8) simd.X8 {
	return shaper.RationalVec(c.shape, v)
}

func (c *clipper) processSample(x float32) float32 {
	x = c.lowpass.ProcessSample(x)
	return c.oversampler.ProcessSample(x, c.clip) * clipperGain
}

func (c *clipper) reset() {
	c.lowpass.Reset()
	c.oversampler.Reset()
}
