package gating_test

import (
	"errors"
	"testing"

	"cytogate/pkg/gating"
	"cytogate/testutil"
)

func mustBoolean(t *testing.T, op gating.BooleanOperator) *gating.BooleanGate {
	t.Helper()
	g, err := gating.NewBooleanGate(op)
	if err != nil {
		t.Fatalf("new boolean(%s): %v", op, err)
	}
	return g
}

func TestBooleanGateOperators(t *testing.T) {
	for _, op := range []gating.BooleanOperator{gating.BooleanAnd, gating.BooleanOr, gating.BooleanNot} {
		g := mustBoolean(t, op)
		if g.Operator() != op {
			t.Errorf("operator = %q, want %q", g.Operator(), op)
		}
		if g.Kind() != gating.GateBoolean {
			t.Errorf("kind = %q, want boolean", g.Kind())
		}
	}
}

func TestBooleanNotAcceptsExactlyOneChild(t *testing.T) {
	g := mustBoolean(t, gating.BooleanNot)
	a := mustCustomGate(t, 1)
	b := mustCustomGate(t, 1)

	if err := g.AppendChild(a); err != nil {
		t.Fatalf("first child: %v", err)
	}
	if err := g.AppendChild(b); !errors.Is(err, gating.ErrInvalidArgument) {
		t.Fatalf("second child err = %v, want ErrInvalidArgument", err)
	}
	if b.HasParent() {
		t.Error("rejected child reports a parent")
	}

	// Removing the child makes room again.
	if err := g.RemoveChild(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := g.AppendChild(b); err != nil {
		t.Fatalf("replacement child: %v", err)
	}
}

func TestBooleanNegateFlagsTrackChildren(t *testing.T) {
	g := mustBoolean(t, gating.BooleanAnd)
	a := mustCustomGate(t, 1)
	b := mustCustomGate(t, 1)
	c := mustCustomGate(t, 1)

	if err := g.AppendChild(a); err != nil {
		t.Fatalf("append a: %v", err)
	}
	if err := g.AppendChildNegated(b, true); err != nil {
		t.Fatalf("append b negated: %v", err)
	}
	if err := g.AppendChild(c); err != nil {
		t.Fatalf("append c: %v", err)
	}

	wantFlags := []bool{false, true, false}
	if got := g.NegateFlags(); len(got) != 3 || got[0] != wantFlags[0] || got[1] != wantFlags[1] || got[2] != wantFlags[2] {
		t.Fatalf("negate flags = %v, want %v", got, wantFlags)
	}

	// Removing the first child shifts the flags with the children.
	if err := g.RemoveChildAt(0); err != nil {
		t.Fatalf("remove at 0: %v", err)
	}
	if neg, _ := g.ChildNegated(0); !neg {
		t.Error("flag did not follow child b after removal")
	}
	if neg, _ := g.ChildNegated(1); neg {
		t.Error("flag did not follow child c after removal")
	}
	if got := len(g.NegateFlags()); got != g.ChildCount() {
		t.Fatalf("flag count %d out of step with child count %d", got, g.ChildCount())
	}

	g.ClearChildren()
	if got := g.NegateFlags(); len(got) != 0 {
		t.Errorf("negate flags after clear = %v", got)
	}
}

func TestBooleanSetChildNegated(t *testing.T) {
	g := mustBoolean(t, gating.BooleanOr)
	a := mustCustomGate(t, 1)
	if err := g.AppendChild(a); err != nil {
		t.Fatalf("append: %v", err)
	}
	rec := &testutil.RecordingState{}
	g.SetState(rec)

	if err := g.SetChildNegated(0, true); err != nil {
		t.Fatalf("set negated: %v", err)
	}
	if neg, _ := g.ChildNegated(0); !neg {
		t.Error("flag not set")
	}
	// Unchanged value fires nothing.
	if err := g.SetChildNegated(0, true); err != nil {
		t.Fatalf("set negated again: %v", err)
	}
	if got := rec.Ops(); len(got) != 1 || got[0] != gating.OpGateChildNegatedSet {
		t.Fatalf("ops = %v, want exactly one %s", got, gating.OpGateChildNegatedSet)
	}

	if err := g.SetChildNegated(1, true); !errors.Is(err, gating.ErrIndexOutOfRange) {
		t.Errorf("out of range err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := g.ChildNegated(-1); !errors.Is(err, gating.ErrIndexOutOfRange) {
		t.Errorf("negative index err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestBooleanNegateFlagVisibleInCallback(t *testing.T) {
	// The flag must already be in place when the append callback fires.
	g := mustBoolean(t, gating.BooleanAnd)
	var observed []bool
	rec := &flagProbe{gate: g, flags: &observed}
	g.SetState(rec)

	a := mustCustomGate(t, 1)
	if err := g.AppendChildNegated(a, true); err != nil {
		t.Fatalf("append negated: %v", err)
	}
	if len(observed) != 1 || !observed[0] {
		t.Fatalf("flags observed during callback = %v, want [true]", observed)
	}
}

// flagProbe reads the boolean gate's negate flags from inside the
// child-appended callback.
type flagProbe struct {
	gating.NoopGateState
	gate  *gating.BooleanGate
	flags *[]bool
}

func (p *flagProbe) GateChildAppended(gating.Gate, gating.Gate) {
	flags := p.gate.NegateFlags()
	*p.flags = append(*p.flags, flags[len(flags)-1])
}

func TestBooleanCloneKeepsNegateFlags(t *testing.T) {
	g := mustBoolean(t, gating.BooleanAnd)
	a := mustCustomGate(t, 1)
	b := mustCustomGate(t, 1)
	if err := g.AppendChildNegated(a, true); err != nil {
		t.Fatalf("append a: %v", err)
	}
	if err := g.AppendChild(b); err != nil {
		t.Fatalf("append b: %v", err)
	}

	clone := g.Clone().(*gating.BooleanGate)
	if clone.Operator() != gating.BooleanAnd {
		t.Errorf("clone operator = %q", clone.Operator())
	}
	got := clone.NegateFlags()
	if len(got) != 2 || !got[0] || got[1] {
		t.Fatalf("clone negate flags = %v, want [true false]", got)
	}
	if clone.ChildCount() != 2 {
		t.Fatalf("clone child count = %d", clone.ChildCount())
	}
	if kids := clone.Children(); kids[0] == gating.Gate(a) {
		t.Error("clone shares a child with the original")
	}
}
