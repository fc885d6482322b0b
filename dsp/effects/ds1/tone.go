package ds1

import "github.com/cwbudde/algo-pedal/dsp/filter/biquad"

const (
	toneLowpassHz  = 234.05138689985
	toneHighpassHz = 1063.8699404538
)

// ToneGains returns the weights of the lowpass and highpass branches for
// tone in [0, 1]. Turning tone up trades bass for treble.
func ToneGains(tone float32) (low, high float32) {
	low = (1-tone)*0.595235 + 0.202379
	high = tone*0.694642 + 0.002896
	return low, high
}

type toneStack struct {
	lowpass  biquad.Section
	highpass biquad.Section
}

func newToneStack(sampleRate float64) toneStack {
	return toneStack{
		lowpass:  biquad.Section{Coefficients: biquad.Lowpass1(toneLowpassHz, sampleRate)},
		highpass: biquad.Section{Coefficients: biquad.Highpass1(toneHighpassHz, sampleRate)},
	}
}

func (t *toneStack) processSample(x, tone float32) float32 {
	low, high := ToneGains(tone)
	return t.lowpass.ProcessSample(x)*low + t.highpass.ProcessSample(x)*high
}

func (t *toneStack) reset() {
	t.lowpass.Reset()
	t.highpass.Reset()
}
