package gating

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func mustLogicle(t *testing.T, top, width, decades, negDecades float64) *LogicleTransform {
	t.Helper()
	lt, err := NewLogicleTransform(top, width, decades, negDecades)
	if err != nil {
		t.Fatalf("new logicle(T=%g W=%g M=%g A=%g): %v", top, width, decades, negDecades, err)
	}
	return lt
}

func TestLogicleZeroFixedPoint(t *testing.T) {
	cases := []struct{ top, width, decades, negDecades float64 }{
		{262144, 0.5, 4.5, 0},
		{262144, 1.0, 4.5, 0},
		{262144, 0.5, 4.5, 0.5},
		{10000, 0.25, 4.0, -0.1},
		{1000, 0, 4.0, 1.0},
	}
	for _, tc := range cases {
		lt := mustLogicle(t, tc.top, tc.width, tc.decades, tc.negDecades)
		got, err := lt.Apply(0)
		if err != nil {
			t.Fatalf("apply(0): %v", err)
		}
		// Exact by the documented zero special case, not approximate.
		if got != lt.x1 {
			t.Errorf("apply(0) = %v, want x1 = %v for T=%g W=%g M=%g A=%g", got, lt.x1, tc.top, tc.width, tc.decades, tc.negDecades)
		}
	}
}

func TestLogicleDefaultReferenceValues(t *testing.T) {
	// T=262144, A=0, M=4.5, W=0.5 are the documented defaults. The zero
	// point is (A+W)/(M+A) = 1/9 and the top of scale maps to 1 by
	// construction of the biexponential.
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)

	zero, err := lt.Apply(0)
	if err != nil {
		t.Fatalf("apply(0): %v", err)
	}
	if diff := math.Abs(zero - 1.0/9.0); diff > 1e-14 {
		t.Errorf("apply(0) = %.17g, want 1/9 (diff %g)", zero, diff)
	}

	top, err := lt.Apply(262144)
	if err != nil {
		t.Fatalf("apply(T): %v", err)
	}
	if diff := math.Abs(top - 1.0); diff > 1e-9 {
		t.Errorf("apply(T) = %.17g, want 1.0 (diff %g)", top, diff)
	}
}

func TestLogicleNegativeReflection(t *testing.T) {
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	for _, v := range []float64{0.5, 1, 10, 123.25, 5000, 262144} {
		pos, err := lt.Apply(v)
		if err != nil {
			t.Fatalf("apply(%g): %v", v, err)
		}
		neg, err := lt.Apply(-v)
		if err != nil {
			t.Fatalf("apply(%g): %v", -v, err)
		}
		if want := 2*lt.x1 - pos; neg != want {
			t.Errorf("apply(%g) = %.17g, want 2*x1 - apply(%g) = %.17g", -v, neg, v, want)
		}
	}
}

func TestLogicleMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		decades := 3 + 2.5*rng.Float64()
		width := rng.Float64() * decades / 2
		negDecades := -width + rng.Float64()*(decades-2*width+width)
		top := math.Pow(10, 3+3*rng.Float64())

		lt, err := NewLogicleTransform(top, width, decades, negDecades)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}

		prevX := math.Inf(-1)
		prevY := math.Inf(-1)
		for i := 0; i <= 400; i++ {
			x := -top/2 + 1.5*top*float64(i)/400
			y, err := lt.Apply(x)
			if err != nil {
				t.Fatalf("trial %d apply(%g): %v", trial, x, err)
			}
			if y < prevY-1e-12 {
				t.Fatalf("trial %d (T=%g W=%g M=%g A=%g): apply(%g)=%.17g < apply(%g)=%.17g",
					trial, top, width, decades, negDecades, x, y, prevX, prevY)
			}
			prevX, prevY = x, y
		}
	}
}

func TestLogicleSolveDRoot(t *testing.T) {
	for _, tc := range []struct{ decades, negDecades, width float64 }{
		{4.5, 0, 0.5},
		{4.5, 0.5, 1.0},
		{4.0, 0, 2.0},
		{5.0, 1.0, 0.1},
	} {
		b := (tc.decades + tc.negDecades) * math.Ln10
		w := tc.width / (tc.decades + tc.negDecades)
		d := solveLogicleD(b, w)
		if d <= 0 || d >= b {
			t.Fatalf("d = %g outside (0, b=%g)", d, b)
		}
		residual := 2*(math.Log(d)-math.Log(b)) + w*(d+b)
		if math.Abs(residual) > 1e-9 {
			t.Errorf("residual %g for b=%g w=%g (d=%g)", residual, b, w, d)
		}
	}
}

func TestLogicleSolveDZeroWidth(t *testing.T) {
	b := 4.5 * math.Ln10
	if d := solveLogicleD(b, 0); d != b {
		t.Errorf("solveLogicleD(b, 0) = %g, want b = %g", d, b)
	}
}

func TestLogicleZeroWidthTransform(t *testing.T) {
	// W=0 degenerates the solve to d=b; the transform must still be a
	// valid monotone scale.
	lt := mustLogicle(t, 1000, 0, 4, 1)
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		x := -100 + 1100*float64(i)/100
		y, err := lt.Apply(x)
		if err != nil {
			t.Fatalf("apply(%g): %v", x, err)
		}
		if y < prev-1e-12 {
			t.Fatalf("apply(%g) = %g not monotone", x, y)
		}
		prev = y
	}
}

func TestLogicleExtremeValuesReturnEstimate(t *testing.T) {
	// Iteration budgets return the best estimate instead of failing; even
	// absurd magnitudes must come back finite and error-free.
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	for _, v := range []float64{1e30, -1e30, 1e300, -1e300} {
		got, err := lt.Apply(v)
		if err != nil {
			t.Fatalf("apply(%g): %v", v, err)
		}
		if math.IsNaN(got) {
			t.Errorf("apply(%g) = NaN", v)
		}
	}
}

func TestLogicleApplyToMatchesApply(t *testing.T) {
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	values := []float64{-5000, -1, 0, 0.25, 10, 1024, 262144}
	want := make([]float64, len(values))
	for i, v := range values {
		var err error
		if want[i], err = lt.Apply(v); err != nil {
			t.Fatalf("apply(%g): %v", v, err)
		}
	}
	if err := lt.ApplyTo(values); err != nil {
		t.Fatalf("apply to: %v", err)
	}
	for i := range values {
		if values[i] != want[i] {
			t.Errorf("bulk[%d] = %.17g, want %.17g", i, values[i], want[i])
		}
	}
}

func TestLogicleApplyToEmptyBuffer(t *testing.T) {
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	if err := lt.ApplyTo(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("apply to nil buffer: err = %v, want ErrInvalidArgument", err)
	}
	if err := lt.ApplyTo([]float64{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("apply to empty buffer: err = %v, want ErrInvalidArgument", err)
	}
}

func TestLogicleTaylorLinearTermZero(t *testing.T) {
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	if lt.taylor[1] != 0 {
		t.Errorf("taylor[1] = %g, want exactly 0", lt.taylor[1])
	}
	// The series and the direct form must agree where their domains meet.
	at := lt.xTaylor
	series := lt.seriesBiexponential(at)
	direct := lt.a*math.Exp(lt.b*at) - lt.c/math.Exp(lt.d*at) + lt.f
	if diff := math.Abs(series - direct); diff > 1e-9*math.Max(1, math.Abs(direct)) {
		t.Errorf("series %g vs direct %g at xTaylor (diff %g)", series, direct, diff)
	}
}

func TestLogicleCloneIndependent(t *testing.T) {
	lt := mustLogicle(t, 262144, 0.5, 4.5, 0)
	lt.SetName("logicle default")
	lt.SetOriginalID("tf-1")

	clone := lt.Clone().(*LogicleTransform)
	if clone.ID() == lt.ID() {
		t.Fatalf("clone kept identity %d", lt.ID())
	}
	if clone.Name() != lt.Name() || clone.OriginalID() != lt.OriginalID() {
		t.Errorf("clone annotation differs: %q/%q vs %q/%q", clone.Name(), clone.OriginalID(), lt.Name(), lt.OriginalID())
	}
	for _, v := range []float64{-10, 0, 3.5, 100000} {
		a, _ := lt.Apply(v)
		b, _ := clone.Apply(v)
		if a != b {
			t.Errorf("clone apply(%g) = %g, original %g", v, b, a)
		}
	}
}
