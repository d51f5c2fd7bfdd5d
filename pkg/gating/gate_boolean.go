package gating

import (
	"fmt"
	"slices"
)

// BooleanOperator combines the results of a boolean gate's children.
type BooleanOperator string

// Supported boolean operators.
const (
	BooleanAnd BooleanOperator = "and"
	BooleanOr  BooleanOperator = "or"
	BooleanNot BooleanOperator = "not"
)

// BooleanGate combines child gates with a boolean operator. It has no
// dimensions of its own and does not support additional clustering
// parameters. Each child carries a negate flag kept in lock-step with the
// children list; the Not operator accepts exactly one child.
type BooleanGate struct {
	gateBase
	operator BooleanOperator
	negated  []bool
}

// NewBooleanGate builds a boolean gate with the given operator.
func NewBooleanGate(operator BooleanOperator) (*BooleanGate, error) {
	switch operator {
	case BooleanAnd, BooleanOr, BooleanNot:
	default:
		return nil, fmt.Errorf("%w: unknown boolean operator %q", ErrInvalidArgument, operator)
	}
	g := &BooleanGate{operator: operator}
	g.gateBase = newGateBase(g, GateBoolean, 0, false)
	return g, nil
}

// Operator returns the boolean operator, fixed at construction.
func (g *BooleanGate) Operator() BooleanOperator { return g.operator }

// AppendChild attaches child with the negate flag unset.
func (g *BooleanGate) AppendChild(child Gate) error {
	return g.AppendChildNegated(child, false)
}

// AppendChildNegated attaches child with an explicit negate flag.
func (g *BooleanGate) AppendChildNegated(child Gate, negated bool) error {
	if g.operator == BooleanNot && len(g.children) >= 1 {
		return fmt.Errorf("%w: not gates accept exactly one child", ErrInvalidArgument)
	}
	if err := g.checkAppendChild(child); err != nil {
		return err
	}
	g.negated = append(g.negated, negated)
	g.appendChild(child)
	return nil
}

// RemoveChildAt detaches the child at index and drops its negate flag.
func (g *BooleanGate) RemoveChildAt(index int) error {
	if index < 0 || index >= len(g.children) {
		return fmt.Errorf("%w: child %d outside [0,%d)", ErrIndexOutOfRange, index, len(g.children))
	}
	g.negated = append(g.negated[:index], g.negated[index+1:]...)
	g.removeChildAt(index)
	return nil
}

// RemoveChild detaches the given child and drops its negate flag.
func (g *BooleanGate) RemoveChild(child Gate) error {
	index := g.childIndex(child)
	if index < 0 {
		return fmt.Errorf("%w: gate is not a child of gate %d", ErrInvalidArgument, g.id)
	}
	return g.RemoveChildAt(index)
}

// ClearChildren detaches every child and drops all negate flags.
func (g *BooleanGate) ClearChildren() {
	g.negated = nil
	g.clearChildren()
}

// ChildNegated reports the negate flag of the child at index.
func (g *BooleanGate) ChildNegated(index int) (bool, error) {
	if index < 0 || index >= len(g.negated) {
		return false, fmt.Errorf("%w: child %d outside [0,%d)", ErrIndexOutOfRange, index, len(g.negated))
	}
	return g.negated[index], nil
}

// SetChildNegated assigns the negate flag of the child at index. Setting an
// unchanged value is a no-op and fires no callback.
func (g *BooleanGate) SetChildNegated(index int, negated bool) error {
	if index < 0 || index >= len(g.negated) {
		return fmt.Errorf("%w: child %d outside [0,%d)", ErrIndexOutOfRange, index, len(g.negated))
	}
	if g.negated[index] == negated {
		return nil
	}
	g.negated[index] = negated
	if g.state != nil {
		g.state.GateChildNegatedSet(g, index, negated)
	}
	return nil
}

// NegateFlags returns a copy of the per-child negate flags.
func (g *BooleanGate) NegateFlags() []bool { return slices.Clone(g.negated) }

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *BooleanGate) Clone() Gate {
	cp := &BooleanGate{
		operator: g.operator,
		negated:  slices.Clone(g.negated),
	}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
