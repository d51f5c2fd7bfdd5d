package gating

import (
	"fmt"
	"math"
)

// LinearTransform maps y = (x + A) / (T + A), where T is the top of scale
// and A shifts the zero point to accommodate negative values.
type LinearTransform struct {
	transformBase
	top   float64 // T
	a     float64 // A
	scale float64 // 1 / (T + A), cached
}

// NewLinearTransform validates T > 0 and 0 <= A <= T and builds the
// transform.
func NewLinearTransform(top, a float64) (*LinearTransform, error) {
	if !(top > 0) {
		return nil, fmt.Errorf("%w: linear transform requires T > 0, got %g", ErrInvalidArgument, top)
	}
	if a < 0 || a > top {
		return nil, fmt.Errorf("%w: linear transform requires 0 <= A <= T, got A=%g T=%g", ErrInvalidArgument, a, top)
	}
	t := &LinearTransform{
		transformBase: newTransformBase(TransformLinear),
		top:           top,
		a:             a,
	}
	t.scale = 1 / (top + a)
	return t, nil
}

// Top returns the top-of-scale parameter T.
func (t *LinearTransform) Top() float64 { return t.top }

// A returns the negative-range parameter A.
func (t *LinearTransform) A() float64 { return t.a }

func (t *LinearTransform) apply(x float64) float64 { return (x + t.a) * t.scale }

// Apply maps a single raw value.
func (t *LinearTransform) Apply(value float64) (float64, error) {
	return t.apply(value), nil
}

// ApplyTo maps values in place.
func (t *LinearTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	a, scale := t.a, t.scale
	for i, v := range values {
		values[i] = (v + a) * scale
	}
	return nil
}

// Clone returns a copy with a new identity.
func (t *LinearTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}

// LogarithmicTransform maps y = (1/M) * log10(x/T) + 1, where T is the top
// of scale and M the number of decades.
type LogarithmicTransform struct {
	transformBase
	top     float64 // T
	decades float64 // M
	invM    float64 // 1 / M, cached
}

// NewLogarithmicTransform validates T > 0 and M > 0 and builds the
// transform.
func NewLogarithmicTransform(top, decades float64) (*LogarithmicTransform, error) {
	if !(top > 0) {
		return nil, fmt.Errorf("%w: logarithmic transform requires T > 0, got %g", ErrInvalidArgument, top)
	}
	if !(decades > 0) {
		return nil, fmt.Errorf("%w: logarithmic transform requires M > 0, got %g", ErrInvalidArgument, decades)
	}
	t := &LogarithmicTransform{
		transformBase: newTransformBase(TransformLogarithmic),
		top:           top,
		decades:       decades,
	}
	t.invM = 1 / decades
	return t, nil
}

// Top returns the top-of-scale parameter T.
func (t *LogarithmicTransform) Top() float64 { return t.top }

// Decades returns the decades parameter M.
func (t *LogarithmicTransform) Decades() float64 { return t.decades }

func (t *LogarithmicTransform) apply(x float64) float64 {
	return t.invM*math.Log10(x/t.top) + 1
}

// Apply maps a single raw value. Zero and negative inputs follow IEEE
// semantics of log10 (-Inf and NaN respectively).
func (t *LogarithmicTransform) Apply(value float64) (float64, error) {
	return t.apply(value), nil
}

// ApplyTo maps values in place.
func (t *LogarithmicTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	for i, v := range values {
		values[i] = t.invM*math.Log10(v/t.top) + 1
	}
	return nil
}

// Clone returns a copy with a new identity.
func (t *LogarithmicTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}

// AsinhTransform maps
// y = (asinh(x * sinh(M ln10) / T) + A ln10) / ((M + A) ln10), the inverse
// hyperbolic sine scale with T top of scale, M positive decades, and A extra
// negative decades.
type AsinhTransform struct {
	transformBase
	top        float64 // T
	decades    float64 // M
	negDecades float64 // A
	preScale   float64 // sinh(M ln10) / T, cached
	offset     float64 // A ln10, cached
	invSpan    float64 // 1 / ((M + A) ln10), cached
}

// NewAsinhTransform validates T > 0, M > 0 and 0 <= A <= M and builds the
// transform.
func NewAsinhTransform(top, decades, negDecades float64) (*AsinhTransform, error) {
	if !(top > 0) {
		return nil, fmt.Errorf("%w: asinh transform requires T > 0, got %g", ErrInvalidArgument, top)
	}
	if !(decades > 0) {
		return nil, fmt.Errorf("%w: asinh transform requires M > 0, got %g", ErrInvalidArgument, decades)
	}
	if negDecades < 0 || negDecades > decades {
		return nil, fmt.Errorf("%w: asinh transform requires 0 <= A <= M, got A=%g M=%g", ErrInvalidArgument, negDecades, decades)
	}
	t := &AsinhTransform{
		transformBase: newTransformBase(TransformAsinh),
		top:           top,
		decades:       decades,
		negDecades:    negDecades,
	}
	t.preScale = math.Sinh(decades*math.Ln10) / top
	t.offset = negDecades * math.Ln10
	t.invSpan = 1 / ((decades + negDecades) * math.Ln10)
	return t, nil
}

// Top returns the top-of-scale parameter T.
func (t *AsinhTransform) Top() float64 { return t.top }

// Decades returns the positive decades parameter M.
func (t *AsinhTransform) Decades() float64 { return t.decades }

// NegativeDecades returns the extra negative decades parameter A.
func (t *AsinhTransform) NegativeDecades() float64 { return t.negDecades }

func (t *AsinhTransform) apply(x float64) float64 {
	return (math.Asinh(x*t.preScale) + t.offset) * t.invSpan
}

// Apply maps a single raw value.
func (t *AsinhTransform) Apply(value float64) (float64, error) {
	return t.apply(value), nil
}

// ApplyTo maps values in place.
func (t *AsinhTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	for i, v := range values {
		values[i] = (math.Asinh(v*t.preScale) + t.offset) * t.invSpan
	}
	return nil
}

// Clone returns a copy with a new identity.
func (t *AsinhTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}
