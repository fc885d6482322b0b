package oversample

import (
	"github.com/cwbudde/algo-pedal/dsp/filter/fir"
	"github.com/cwbudde/algo-pedal/dsp/simd"
)

// Oversampler wraps a lane-vector nonlinearity in interpolation and
// decimation filters. V fixes the oversampling factor at compile time.
type Oversampler[V simd.Vector[V]] struct {
	up, down  *fir.Filter[V]
	factor    float32
	gain      float32
	prototype Prototype
}

// New designs a prototype for V's lane count and builds both filters.
func New[V simd.Vector[V]](opts ...DesignOption) (*Oversampler[V], error) {
	p, err := Design(simd.LanesOf[V](), opts...)
	if err != nil {
		return nil, err
	}
	return FromPrototype[V](p)
}

// FromPrototype builds an oversampler around an existing prototype.
func FromPrototype[V simd.Vector[V]](p Prototype) (*Oversampler[V], error) {
	upTaps, downTaps, err := Polyphase[V](p)
	if err != nil {
		return nil, err
	}

	up, err := fir.New(upTaps)
	if err != nil {
		return nil, err
	}
	down, err := fir.New(downTaps)
	if err != nil {
		return nil, err
	}

	// Compensate the DC error the float32 rounding of the tables leaves.
	var sum float32
	for _, v := range downTaps {
		sum += v.Sum()
	}
	if sum == 0 {
		return nil, errZeroSum
	}

	return &Oversampler[V]{
		up:        up,
		down:      down,
		factor:    float32(p.Lanes),
		gain:      1 / sum,
		prototype: p,
	}, nil
}

// ProcessSample runs x through shape at the oversampled rate. shape sees
// N consecutive sub-samples, oldest in lane 0.
func (o *Oversampler[V]) ProcessSample(x float32, shape func(V) V) float32 {
	upsampled := o.up.ProcessSample(simd.Splat[V](x * o.factor))
	return o.down.ProcessSample(shape(upsampled)).Sum() * o.gain
}

// Reset clears both filters.
func (o *Oversampler[V]) Reset() {
	o.up.Reset()
	o.down.Reset()
}

// Factor returns the oversampling factor.
func (o *Oversampler[V]) Factor() int {
	return int(o.factor)
}

// Latency returns the DC group delay through both filters in base-rate
// samples. It is exact for the linear-phase prototype.
func (o *Oversampler[V]) Latency() float64 {
	n := float64(o.prototype.Lanes)
	return (2*o.prototype.GroupDelay() - (n - 1)) / n
}

// Prototype returns the lowpass the filters were built from.
func (o *Oversampler[V]) Prototype() Prototype {
	return o.prototype
}
