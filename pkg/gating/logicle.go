package gating

import (
	"fmt"
	"math"
)

const (
	// logicleTaylorLength is the number of Taylor coefficients kept for the
	// biexponential expansion around x1.
	logicleTaylorLength = 16
	// logicleSolveIterations caps the Newton/bisection search for d.
	logicleSolveIterations = 20
	// logicleScaleIterations caps the Halley inversion per value.
	logicleScaleIterations = 10
)

// LogicleTransform is the biexponential scale of Parks, Roederer and Moore:
// logarithmic for large magnitudes, linear near zero, and symmetric around
// the transformed zero point. The forward direction (raw value to scale) is
// computed by numeric inversion of the closed-form biexponential.
//
// Parameters: T top of scale, W linear decades, M total decades, A extra
// negative decades. Constraints: T > 0, M > 0, 0 <= W <= M/2,
// -W <= A <= M - 2W.
type LogicleTransform struct {
	transformBase
	top        float64 // T
	width      float64 // W
	decades    float64 // M
	negDecades float64 // A

	// Derived constants of the biexponential
	// B(y) = a*exp(b*y) - c*exp(-d*y) + f, with B(x1) = 0 and B(1) = T.
	a, b, c, d, f float64
	w, x0, x1, x2 float64

	// Taylor expansion of B around x1, used below xTaylor where the direct
	// form suffers catastrophic cancellation.
	xTaylor float64
	taylor  [logicleTaylorLength]float64
}

// NewLogicleTransform validates the parameter constraints and derives the
// biexponential constants.
func NewLogicleTransform(top, width, decades, negDecades float64) (*LogicleTransform, error) {
	if err := checkBiexponentialParams("logicle", top, width, decades, negDecades); err != nil {
		return nil, err
	}
	t := &LogicleTransform{
		transformBase: newTransformBase(TransformLogicle),
		top:           top,
		width:         width,
		decades:       decades,
		negDecades:    negDecades,
	}
	t.initialize()
	return t, nil
}

// checkBiexponentialParams validates the shared Logicle/Hyperlog parameter
// inequalities. kind is used only for error text.
func checkBiexponentialParams(kind string, top, width, decades, negDecades float64) error {
	if !(top > 0) {
		return fmt.Errorf("%w: %s transform requires T > 0, got %g", ErrInvalidArgument, kind, top)
	}
	if !(decades > 0) {
		return fmt.Errorf("%w: %s transform requires M > 0, got %g", ErrInvalidArgument, kind, decades)
	}
	if width < 0 || width > decades/2 {
		return fmt.Errorf("%w: %s transform requires 0 <= W <= M/2, got W=%g M=%g", ErrInvalidArgument, kind, width, decades)
	}
	if negDecades < -width || negDecades > decades-2*width {
		return fmt.Errorf("%w: %s transform requires -W <= A <= M-2W, got A=%g W=%g M=%g", ErrInvalidArgument, kind, negDecades, width, decades)
	}
	return nil
}

func (t *LogicleTransform) initialize() {
	span := t.decades + t.negDecades
	t.w = t.width / span
	t.x2 = t.negDecades / span
	t.x1 = t.x2 + t.w
	t.x0 = t.x2 + 2*t.w
	t.b = span * math.Ln10
	t.d = solveLogicleD(t.b, t.w)

	cA := math.Exp(t.x0 * (t.b + t.d))
	mfA := math.Exp(t.b*t.x1) - cA/math.Exp(t.d*t.x1)
	t.a = t.top / ((math.Exp(t.b) - mfA) - cA/math.Exp(t.d))
	t.c = cA * t.a
	t.f = -mfA * t.a

	// Use the Taylor series near x1 (data zero) to avoid round-off in the
	// formal definition.
	t.xTaylor = t.x1 + t.w/4
	posCoef := t.a * math.Exp(t.b*t.x1)
	negCoef := -t.c / math.Exp(t.d*t.x1)
	for i := 0; i < logicleTaylorLength; i++ {
		posCoef *= t.b / float64(i+1)
		negCoef *= -t.d / float64(i+1)
		t.taylor[i] = posCoef + negCoef
	}
	// Exact result of the logicle condition: the second-order coefficient
	// vanishes at x1.
	t.taylor[1] = 0
}

// solveLogicleD finds d such that 2*(ln(d) - ln(b)) + w*(d + b) = 0 with a
// safeguarded Newton iteration bracketed by bisection (RTSAFE). When w is
// zero the root is b itself and no search runs. If the iteration budget is
// exhausted the best estimate so far is returned; the budget is more than
// sufficient for every valid parameter set.
func solveLogicleD(b, w float64) float64 {
	if w == 0 {
		return b
	}

	// Precision matches that of b.
	tolerance := 2 * ulp(b)

	dLo, dHi := 0.0, b
	d := (dLo + dHi) / 2
	lastDelta := dHi - dLo

	fB := -2*math.Log(b) + w*b
	f := 2*math.Log(d) + w*d + fB
	lastF := math.NaN()

	for i := 1; i < logicleSolveIterations; i++ {
		df := 2/d + w

		var delta float64
		if ((d-dHi)*df-f)*((d-dLo)*df-f) >= 0 || math.Abs(1.9*f) > math.Abs(lastDelta*df) {
			// Newton would step outside the bracket or is not shrinking
			// fast enough: bisect.
			delta = (dHi - dLo) / 2
			d = dLo + delta
			if d == dLo {
				return d
			}
		} else {
			delta = f / df
			prev := d
			d -= delta
			if d == prev {
				return d
			}
		}
		if math.Abs(delta) < tolerance {
			return d
		}
		lastDelta = delta

		f = 2*math.Log(d) + w*d + fB
		if f == 0 || f == lastF {
			return d
		}
		lastF = f

		if f < 0 {
			dLo = d
		} else {
			dHi = d
		}
	}
	return d
}

// ulp returns the distance from x to the next larger float64.
func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}

// seriesBiexponential evaluates the Taylor expansion of the biexponential
// at a scale position near x1. The second-order term is identically zero.
func (t *LogicleTransform) seriesBiexponential(scale float64) float64 {
	x := scale - t.x1
	sum := t.taylor[logicleTaylorLength-1] * x
	for i := logicleTaylorLength - 2; i >= 2; i-- {
		sum = (sum + t.taylor[i]) * x
	}
	return (sum*x + t.taylor[0]) * x
}

// scale maps a raw value onto [0,1] by inverting the biexponential with
// Halley's method. Exact zero maps to x1; negative values are reflected
// around x1. If the iteration budget is exhausted the best estimate is
// returned rather than an error.
func (t *LogicleTransform) scale(value float64) float64 {
	// Handle true zero separately: B(x1) == 0 by construction.
	if value == 0 {
		return t.x1
	}

	// Reflect negative values.
	negative := value < 0
	if negative {
		value = -value
	}

	// Initial guess: linear approximation in the quasi-linear region,
	// ordinary logarithm otherwise.
	var x float64
	if value < t.f {
		x = t.x1 + value/t.taylor[0]
	} else {
		x = math.Log(value/t.a) / t.b
	}

	// Aim for double precision unless in the extended range.
	tolerance := 3 * ulp(1.0)
	if x > 1 {
		tolerance = 3 * ulp(x)
	}

	for i := 0; i < logicleScaleIterations; i++ {
		ae2bx := t.a * math.Exp(t.b*x)
		ce2mdx := t.c / math.Exp(t.d*x)
		var y float64
		if x < t.xTaylor {
			// Near zero the direct form cancels catastrophically; use the
			// Taylor series instead.
			y = t.seriesBiexponential(x) - value
		} else {
			// This formulation has better round-off behavior than
			// B(x) - value evaluated naively.
			y = (ae2bx + t.f) - (ce2mdx + value)
		}
		abe2bx := t.b * ae2bx
		cde2mdx := t.d * ce2mdx
		dy := abe2bx + cde2mdx
		ddy := t.b*abe2bx - t.d*cde2mdx

		// Halley's method step, cubic convergence.
		delta := y / (dy * (1 - y*ddy/(2*dy*dy)))
		x -= delta
		if math.Abs(delta) < tolerance {
			break
		}
	}

	if negative {
		return 2*t.x1 - x
	}
	return x
}

// Top returns the top-of-scale parameter T.
func (t *LogicleTransform) Top() float64 { return t.top }

// Width returns the linear decades parameter W.
func (t *LogicleTransform) Width() float64 { return t.width }

// Decades returns the total decades parameter M.
func (t *LogicleTransform) Decades() float64 { return t.decades }

// NegativeDecades returns the extra negative decades parameter A.
func (t *LogicleTransform) NegativeDecades() float64 { return t.negDecades }

// Apply maps a single raw value.
func (t *LogicleTransform) Apply(value float64) (float64, error) {
	return t.scale(value), nil
}

// ApplyTo maps values in place.
func (t *LogicleTransform) ApplyTo(values []float64) error {
	if err := checkBulk(values); err != nil {
		return err
	}
	for i, v := range values {
		values[i] = t.scale(v)
	}
	return nil
}

// Clone returns a copy with a new identity. Derived constants are copied as
// is; they are deterministic in the validated parameters.
func (t *LogicleTransform) Clone() Transform {
	cp := *t
	cp.transformBase = t.cloneBase()
	return &cp
}
