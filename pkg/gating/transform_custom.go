package gating

import "fmt"

// CustomTransform wraps a caller-supplied mapping function. It is the escape
// hatch for transform definitions that interchange formats carry under
// unknown kind names.
type CustomTransform struct {
	transformBase
	fn func(float64) float64
}

// NewCustomTransform builds a custom transform around fn.
func NewCustomTransform(fn func(float64) float64) (*CustomTransform, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil custom transform function", ErrInvalidArgument)
	}
	return &CustomTransform{
		transformBase: newTransformBase(TransformCustomKind),
		fn:            fn,
	}, nil
}

// Apply maps a single raw value through the wrapped function.
func (t *CustomTransform) Apply(value float64) (float64, error) {
	return t.fn(value), nil
}

// ApplyTo maps values in place.
func (t *CustomTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	for i, v := range values {
		values[i] = t.fn(v)
	}
	return nil
}

// Clone returns a copy with a new identity. The mapping function is shared;
// custom transforms are expected to wrap pure functions.
func (t *CustomTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}
