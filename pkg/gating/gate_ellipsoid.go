package gating

import (
	"fmt"
	"slices"
)

// EllipsoidGate is a region bounded by the squared Mahalanobis distance
// around a center: events with (x-center)' C^-1 (x-center) below the
// distance are inside. The covariance matrix is stored row-major.
type EllipsoidGate struct {
	gateBase
	center          []float64
	covariance      []float64
	distanceSquared float64
}

// NewEllipsoidGate builds an ellipsoid gate. The center must span at least
// two dimensions, covariance must hold dim*dim entries, and the squared
// Mahalanobis distance must be positive.
func NewEllipsoidGate(center, covariance []float64, distanceSquared float64) (*EllipsoidGate, error) {
	dim := len(center)
	if dim < 2 {
		return nil, fmt.Errorf("%w: ellipsoid gate requires at least two dimensions, got %d", ErrInvalidArgument, dim)
	}
	if len(covariance) != dim*dim {
		return nil, fmt.Errorf("%w: ellipsoid gate covariance must hold %d entries for %d dimensions, got %d", ErrInvalidArgument, dim*dim, dim, len(covariance))
	}
	if !(distanceSquared > 0) {
		return nil, fmt.Errorf("%w: ellipsoid gate requires a positive squared distance, got %g", ErrInvalidArgument, distanceSquared)
	}
	g := &EllipsoidGate{
		center:          slices.Clone(center),
		covariance:      slices.Clone(covariance),
		distanceSquared: distanceSquared,
	}
	g.gateBase = newGateBase(g, GateEllipsoid, dim, true)
	return g, nil
}

// Center returns a copy of the center vector.
func (g *EllipsoidGate) Center() []float64 { return slices.Clone(g.center) }

// Covariance returns a copy of the row-major covariance matrix.
func (g *EllipsoidGate) Covariance() []float64 { return slices.Clone(g.covariance) }

// DistanceSquared returns the squared Mahalanobis distance bound.
func (g *EllipsoidGate) DistanceSquared() float64 { return g.distanceSquared }

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *EllipsoidGate) Clone() Gate {
	cp := &EllipsoidGate{
		center:          slices.Clone(g.center),
		covariance:      slices.Clone(g.covariance),
		distanceSquared: g.distanceSquared,
	}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
