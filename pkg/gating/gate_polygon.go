package gating

import (
	"fmt"
	"slices"
)

// PolygonGate is a two-dimensional region bounded by a closed polygon given
// as parallel X and Y coordinate sequences. At least three vertices are
// expected for a meaningful region, but the count is not enforced here;
// gating engines decide how to treat degenerate polygons.
type PolygonGate struct {
	gateBase
	xs []float64
	ys []float64
}

// NewPolygonGate builds a polygon gate over two dimensions from parallel
// coordinate lists of equal length.
func NewPolygonGate(xs, ys []float64) (*PolygonGate, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: polygon gate coordinate lists differ in length (%d vs %d)", ErrInvalidArgument, len(xs), len(ys))
	}
	g := &PolygonGate{
		xs: slices.Clone(xs),
		ys: slices.Clone(ys),
	}
	g.gateBase = newGateBase(g, GatePolygon, 2, true)
	return g, nil
}

// VertexCount returns the number of polygon vertices.
func (g *PolygonGate) VertexCount() int { return len(g.xs) }

// Vertex returns the coordinates of the vertex at index.
func (g *PolygonGate) Vertex(index int) (float64, float64, error) {
	if index < 0 || index >= len(g.xs) {
		return 0, 0, fmt.Errorf("%w: vertex %d outside [0,%d)", ErrIndexOutOfRange, index, len(g.xs))
	}
	return g.xs[index], g.ys[index], nil
}

// XCoordinates returns a copy of the vertex X sequence.
func (g *PolygonGate) XCoordinates() []float64 { return slices.Clone(g.xs) }

// YCoordinates returns a copy of the vertex Y sequence.
func (g *PolygonGate) YCoordinates() []float64 { return slices.Clone(g.ys) }

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *PolygonGate) Clone() Gate {
	cp := &PolygonGate{
		xs: slices.Clone(g.xs),
		ys: slices.Clone(g.ys),
	}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
