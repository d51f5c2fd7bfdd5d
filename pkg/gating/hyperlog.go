package gating

import "fmt"

// HyperlogTransform is the log-plus-linear scale of the equation family
// a*e^(b*y) + c*y - f. Parameters share the Logicle constraint set with W
// strictly positive.
//
// The forward direction is deliberately unimplemented: there is no reference
// oracle in this repository to validate a root-finding inversion against,
// and a wrong closed form would silently corrupt data. Construction
// validates parameters in full so codecs can round-trip the definition;
// Apply and ApplyTo fail with ErrNotImplemented.
type HyperlogTransform struct {
	transformBase
	top        float64 // T
	width      float64 // W
	decades    float64 // M
	negDecades float64 // A
}

// NewHyperlogTransform validates T > 0, M > 0, 0 < W <= M/2 and
// -W <= A <= M-2W and builds the transform.
func NewHyperlogTransform(top, width, decades, negDecades float64) (*HyperlogTransform, error) {
	if err := checkBiexponentialParams("hyperlog", top, width, decades, negDecades); err != nil {
		return nil, err
	}
	if !(width > 0) {
		return nil, fmt.Errorf("%w: hyperlog transform requires W > 0, got %g", ErrInvalidArgument, width)
	}
	return &HyperlogTransform{
		transformBase: newTransformBase(TransformHyperlog),
		top:           top,
		width:         width,
		decades:       decades,
		negDecades:    negDecades,
	}, nil
}

// Top returns the top-of-scale parameter T.
func (t *HyperlogTransform) Top() float64 { return t.top }

// Width returns the linear decades parameter W.
func (t *HyperlogTransform) Width() float64 { return t.width }

// Decades returns the total decades parameter M.
func (t *HyperlogTransform) Decades() float64 { return t.decades }

// NegativeDecades returns the extra negative decades parameter A.
func (t *HyperlogTransform) NegativeDecades() float64 { return t.negDecades }

// Apply fails with ErrNotImplemented.
func (t *HyperlogTransform) Apply(float64) (float64, error) {
	return 0, fmt.Errorf("%w: hyperlog forward transform", ErrNotImplemented)
}

// ApplyTo fails with ErrNotImplemented after validating the buffer.
func (t *HyperlogTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	return fmt.Errorf("%w: hyperlog forward transform", ErrNotImplemented)
}

// Clone returns a copy with a new identity.
func (t *HyperlogTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}
