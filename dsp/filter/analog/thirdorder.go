package analog

import "github.com/cwbudde/algo-pedal/dsp/core"

// ThirdOrder is a transposed direct-form third-order IIR filter. The
// coefficients are passed on every call so they can follow a control.
type ThirdOrder struct {
	z [3]float32
}

// ProcessSample filters x through c.
func (f *ThirdOrder) ProcessSample(x float32, c ZCoefficients) float32 {
	y := x*c.B[0] + f.z[0]
	f.z[0] = core.FlushDenormals(x*c.B[1] - y*c.A[1] + f.z[1])
	f.z[1] = core.FlushDenormals(x*c.B[2] - y*c.A[2] + f.z[2])
	f.z[2] = core.FlushDenormals(x*c.B[3] - y*c.A[3])

	return y
}

// Reset clears the state registers.
func (f *ThirdOrder) Reset() {
	f.z = [3]float32{}
}
