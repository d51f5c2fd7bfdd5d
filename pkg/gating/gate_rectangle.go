package gating

import (
	"fmt"
	"slices"
)

// RectangleGate is an axis-aligned region with a (min, max) pair per
// dimension.
type RectangleGate struct {
	gateBase
	mins []float64
	maxs []float64
}

// NewRectangleGate builds a rectangle gate with one dimension per
// (mins[i], maxs[i]) pair. The lists must be non-empty and of equal length.
func NewRectangleGate(mins, maxs []float64) (*RectangleGate, error) {
	if len(mins) == 0 {
		return nil, fmt.Errorf("%w: rectangle gate requires at least one dimension", ErrInvalidArgument)
	}
	if len(mins) != len(maxs) {
		return nil, fmt.Errorf("%w: rectangle gate min/max lists differ in length (%d vs %d)", ErrInvalidArgument, len(mins), len(maxs))
	}
	g := &RectangleGate{
		mins: slices.Clone(mins),
		maxs: slices.Clone(maxs),
	}
	g.gateBase = newGateBase(g, GateRectangle, len(mins), true)
	return g, nil
}

// DimensionBounds returns the (min, max) pair of the given dimension.
func (g *RectangleGate) DimensionBounds(dimension int) (float64, float64, error) {
	if err := g.checkDimension(dimension); err != nil {
		return 0, 0, err
	}
	return g.mins[dimension], g.maxs[dimension], nil
}

// Mins returns a copy of the per-dimension minimums.
func (g *RectangleGate) Mins() []float64 { return slices.Clone(g.mins) }

// Maxs returns a copy of the per-dimension maximums.
func (g *RectangleGate) Maxs() []float64 { return slices.Clone(g.maxs) }

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *RectangleGate) Clone() Gate {
	cp := &RectangleGate{
		mins: slices.Clone(g.mins),
		maxs: slices.Clone(g.maxs),
	}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
