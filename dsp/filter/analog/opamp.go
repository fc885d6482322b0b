package analog

import (
	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/filter/onepole"
)

// Circuit values of the rat op-amp gain stage.
const (
	distortionPot = 100e3 // R1, ohms
	feedbackCap   = 100e-12

	// Series/shunt network between the inverting input and ground,
	// pre-reduced to polynomial coefficients.
	z1B0 = 2.72149e-7
	z1B1 = 0.0027354
	z1A0 = 6.27638e-9
	z1A1 = 0.0000069

	// Gain-setting resistors seen by the correction stage.
	gainR2 = 560.0
	gainR3 = 47.0

	// Open-loop gain of the op-amp at 1 Hz in dB, rolling off at
	// 20 dB/decade.
	openLoopDBAt1Hz = 120.9794
)

// gainBandwidth is the op-amp's unity gain frequency in Hz.
var gainBandwidth = core.DBToLinear(openLoopDBAt1Hz)

// OpAmpNetwork returns the s-domain transfer function of the non-inverting
// gain stage with the distortion pot at distortion (0..1 after taper).
// The pot resistance is floored at one ohm.
func OpAmpNetwork(distortion float64) SCoefficients {
	z2b0 := max(distortion*distortionPot, 1)
	z2a0 := z2b0 * feedbackCap

	a0 := z1B0 * z2a0
	a1 := z1B0 + z1B1*z2a0
	a2 := z1B1 + z2a0

	b0 := a0
	b1 := a1 + z1A0*z2b0
	b2 := z1A1*z2b0 + z1B1 + z2a0

	return SCoefficients{
		B: [4]float64{b0, b1, b2, 1},
		A: [4]float64{a0, a1, a2, 1},
	}
}

// ClosedLoopGain returns the linear midband gain of the stage.
func ClosedLoopGain(distortion float64) float64 {
	return 1 + distortion*distortionPot/(gainR2*gainR2/(gainR2+gainR3))
}

// CorrectionCutoff returns the corner of the gain-bandwidth correction,
// 10^((openLoopDB - gainDB)/20), which reduces to GBW/gain.
func CorrectionCutoff(distortion float64) float64 {
	return gainBandwidth / ClosedLoopGain(distortion)
}

// Correction band-limits an ideal op-amp output to what a real op-amp can
// deliver at the current closed-loop gain.
type Correction struct {
	lp *onepole.Lowpass
}

// NewCorrection returns a correction filter for sampleRate.
func NewCorrection(sampleRate float64) (*Correction, error) {
	lp, err := onepole.NewLowpass(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Correction{lp: lp}, nil
}

// ProcessSample filters x for the given distortion setting.
func (c *Correction) ProcessSample(x, distortion float32) float32 {
	return c.lp.ProcessSample(x, float32(CorrectionCutoff(float64(distortion))))
}

// Reset clears the filter state.
func (c *Correction) Reset() {
	c.lp.Reset(0)
}

// OpAmp is the complete rat gain stage: network, bilinear transform,
// third-order filter and gain-bandwidth correction.
type OpAmp struct {
	bilinear   *Bilinear3
	filter     ThirdOrder
	correction *Correction
}

// NewOpAmp returns a gain stage for sampleRate.
func NewOpAmp(sampleRate float64) (*OpAmp, error) {
	bilinear, err := NewBilinear3(sampleRate)
	if err != nil {
		return nil, err
	}
	correction, err := NewCorrection(sampleRate)
	if err != nil {
		return nil, err
	}

	return &OpAmp{bilinear: bilinear, correction: correction}, nil
}

// Coefficients returns the discretized network for distortion. It
// depends only on distortion and the sample rate.
func (o *OpAmp) Coefficients(distortion float32) ZCoefficients {
	return o.bilinear.Transform(OpAmpNetwork(float64(distortion)))
}

// ProcessSample runs x through the stage at the given distortion.
func (o *OpAmp) ProcessSample(x, distortion float32) float32 {
	y := o.filter.ProcessSample(x, o.Coefficients(distortion))
	return o.correction.ProcessSample(y, distortion)
}

// Reset clears all filter state.
func (o *OpAmp) Reset() {
	o.filter.Reset()
	o.correction.Reset()
}
