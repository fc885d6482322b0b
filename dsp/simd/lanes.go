package simd

// Vector is the capability set the oversampler needs from a lane vector.
// V is the implementing type itself, so methods can return it by value.
type Vector[V any] interface {
	// Lanes returns the number of lanes, which is also the oversampling
	// factor when V drives an oversampler.
	Lanes() int
	// Splat returns a vector with every lane set to x.
	Splat(x float32) V
	// Lane returns lane i.
	Lane(i int) float32
	// WithLane returns a copy with lane i set to x.
	WithLane(i int, x float32) V
	Add(o V) V
	Mul(o V) V
	Scale(s float32) V
	// Sum is the horizontal sum of all lanes.
	Sum() float32
	// Map applies f to every lane.
	Map(f func(float32) float32) V
}

// Splat broadcasts x into a vector of type V.
func Splat[V Vector[V]](x float32) V {
	var zero V
	return zero.Splat(x)
}

// LanesOf returns the lane count of V.
func LanesOf[V Vector[V]]() int {
	var zero V
	return zero.Lanes()
}

// X2 is a 2-lane float32 vector.
type X2 [2]float32

// Lanes returns the number of lanes.
func (X2) Lanes() int { return 2 }

// Splat returns a vector with every lane set to x.
func (X2) Splat(x float32) X2 {
	var v X2
	for i := range v {
		v[i] = x
	}
	return v
}

// Lane returns lane i.
func (v X2) Lane(i int) float32 { return v[i] }

// WithLane returns a copy of v with lane i set to x.
func (v X2) WithLane(i int, x float32) X2 {
	v[i] = x
	return v
}

// Add returns the lane-wise sum of v and o.
func (v X2) Add(o X2) X2 {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Mul returns the lane-wise product of v and o.
func (v X2) Mul(o X2) X2 {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Scale returns v with every lane multiplied by s.
func (v X2) Scale(s float32) X2 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Sum returns the horizontal sum of all lanes.
func (v X2) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Map returns v with f applied to every lane.
func (v X2) Map(f func(float32) float32) X2 {
	for i, x := range v {
		v[i] = f(x)
	}
	return v
}

// X4 is a 4-lane float32 vector.
type X4 [4]float32

// Lanes is [X2.Lanes] over four lanes.
func (X4) Lanes() int { return 4 }

// Splat is [X2.Splat] over four lanes.
func (X4) Splat(x float32) X4 {
	var v X4
	for i := range v {
		v[i] = x
	}
	return v
}

// Lane is [X2.Lane] over four lanes.
func (v X4) Lane(i int) float32 { return v[i] }

// WithLane is [X2.WithLane] over four lanes.
func (v X4) WithLane(i int, x float32) X4 {
	v[i] = x
	return v
}

// Add is [X2.Add] over four lanes.
func (v X4) Add(o X4) X4 {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Mul is [X2.Mul] over four lanes.
func (v X4) Mul(o X4) X4 {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Scale is [X2.Scale] over four lanes.
func (v X4) Scale(s float32) X4 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Sum is [X2.Sum] over four lanes.
func (v X4) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Map is [X2.Map] over four lanes.
func (v X4) Map(f func(float32) float32) X4 {
	for i, x := range v {
		v[i] = f(x)
	}
	return v
}

// X8 is an 8-lane float32 vector.
type X8 [8]float32

// Lanes is [X2.Lanes] over eight lanes.
func (X8) Lanes() int { return 8 }

// Splat is [X2.Splat] over eight lanes.
func (X8) Splat(x float32) X8 {
	var v X8
	for i := range v {
		v[i] = x
	}
	return v
}

// Lane is [X2.Lane] over eight lanes.
func (v X8) Lane(i int) float32 { return v[i] }

// WithLane is [X2.WithLane] over eight lanes.
func (v X8) WithLane(i int, x float32) X8 {
	v[i] = x
	return v
}

// Add is [X2.Add] over eight lanes.
func (v X8) Add(o X8) X8 {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Mul is [X2.Mul] over eight lanes.
func (v X8) Mul(o X8) X8 {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Scale is [X2.Scale] over eight lanes.
func (v X8) Scale(s float32) X8 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Sum is [X2.Sum] over eight lanes.
func (v X8) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Map is [X2.Map] over eight lanes.
func (v X8) Map(f func(float32) float32) X8 {
	for i, x := range v {
		v[i] = f(x)
	}
	return v
}

// X16 is a 16-lane float32 vector.
type X16 [16]float32

// Lanes is [X2.Lanes] over sixteen lanes.
func (X16) Lanes() int { return 16 }

// Splat is [X2.Splat] over sixteen lanes.
func (X16) Splat(x float32) X16 {
	var v X16
	for i := range v {
		v[i] = x
	}
	return v
}

// Lane is [X2.Lane] over sixteen lanes.
func (v X16) Lane(i int) float32 { return v[i] }

// WithLane is [X2.WithLane] over sixteen lanes.
func (v X16) WithLane(i int, x float32) X16 {
	v[i] = x
	return v
}

// Add is [X2.Add] over sixteen lanes.
func (v X16) Add(o X16) X16 {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Mul is [X2.Mul] over sixteen lanes.
func (v X16) Mul(o X16) X16 {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Scale is [X2.Scale] over sixteen lanes.
func (v X16) Scale(s float32) X16 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Sum is [X2.Sum] over sixteen lanes.
func (v X16) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Map is [X2.Map] over sixteen lanes.
func (v X16) Map(f func(float32) float32) X16 {
	for i, x := range v {
		v[i] = f(x)
	}
	return v
}
