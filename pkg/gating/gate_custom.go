package gating

import "fmt"

// CustomGate is the escape hatch for gate definitions that interchange
// formats carry under unknown kind names. It has a fixed dimension count
// and the full shared machinery but no geometry of its own.
type CustomGate struct {
	gateBase
}

// NewCustomGate builds a custom gate with the given dimension count.
func NewCustomGate(dimensionCount int) (*CustomGate, error) {
	if dimensionCount < 0 {
		return nil, fmt.Errorf("%w: negative dimension count %d", ErrInvalidArgument, dimensionCount)
	}
	g := &CustomGate{}
	g.gateBase = newGateBase(g, GateCustomKind, dimensionCount, true)
	return g, nil
}

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *CustomGate) Clone() Gate {
	cp := &CustomGate{}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
