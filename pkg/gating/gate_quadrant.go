package gating

import (
	"fmt"
	"slices"
)

// QuadrantDivider splits one axis into regions at one or more division
// points. Dividers map one-to-one onto the gate's dimensions: divider i uses
// the parameter name and transform of dimension i.
type QuadrantDivider struct {
	// ID is the divider identity quadrants reference. It round-trips
	// through interchange formats.
	ID string
	// Divisions are the axis values the divider splits at.
	Divisions []float64
}

// Quadrant names one combination of regions across a subset of dividers. A
// representative position per referenced divider selects the region on that
// axis.
type Quadrant struct {
	ID         string
	DividerIDs []string
	Positions  []float64
}

// QuadrantGate splits its axes with dividers and names specific region
// combinations as quadrants.
type QuadrantGate struct {
	gateBase
	dividers  []QuadrantDivider
	quadrants []Quadrant
}

// NewQuadrantGate builds a quadrant gate with one dimension per divider.
// Every divider needs a unique non-empty ID and at least one division
// point. Quadrants are appended afterwards with AppendQuadrant.
func NewQuadrantGate(dividers []QuadrantDivider) (*QuadrantGate, error) {
	if len(dividers) == 0 {
		return nil, fmt.Errorf("%w: quadrant gate requires at least one divider", ErrInvalidArgument)
	}
	seen := make(map[string]struct{}, len(dividers))
	copied := make([]QuadrantDivider, len(dividers))
	for i, d := range dividers {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: quadrant gate divider %d has an empty ID", ErrInvalidArgument, i)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate divider ID %q", ErrInvalidArgument, d.ID)
		}
		seen[d.ID] = struct{}{}
		if len(d.Divisions) == 0 {
			return nil, fmt.Errorf("%w: divider %q has no division points", ErrInvalidArgument, d.ID)
		}
		copied[i] = QuadrantDivider{ID: d.ID, Divisions: slices.Clone(d.Divisions)}
	}
	g := &QuadrantGate{dividers: copied}
	g.gateBase = newGateBase(g, GateQuadrant, len(dividers), true)
	return g, nil
}

// Dividers returns a deep copy of the divider list.
func (g *QuadrantGate) Dividers() []QuadrantDivider {
	out := make([]QuadrantDivider, len(g.dividers))
	for i, d := range g.dividers {
		out[i] = QuadrantDivider{ID: d.ID, Divisions: slices.Clone(d.Divisions)}
	}
	return out
}

// DividerIndex returns the dimension index of the divider with the given
// ID, or -1 when absent.
func (g *QuadrantGate) DividerIndex(id string) int {
	for i, d := range g.dividers {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Quadrants returns a deep copy of the named quadrant list.
func (g *QuadrantGate) Quadrants() []Quadrant {
	out := make([]Quadrant, len(g.quadrants))
	for i, q := range g.quadrants {
		out[i] = cloneQuadrant(q)
	}
	return out
}

func cloneQuadrant(q Quadrant) Quadrant {
	return Quadrant{
		ID:         q.ID,
		DividerIDs: slices.Clone(q.DividerIDs),
		Positions:  slices.Clone(q.Positions),
	}
}

// AppendQuadrant adds a named quadrant. Its ID must be unique and non-empty
// and every divider reference must resolve, without duplicates, to a
// divider of this gate with exactly one position per reference.
func (g *QuadrantGate) AppendQuadrant(q Quadrant) error {
	if q.ID == "" {
		return fmt.Errorf("%w: quadrant with empty ID", ErrInvalidArgument)
	}
	for _, existing := range g.quadrants {
		if existing.ID == q.ID {
			return fmt.Errorf("%w: quadrant %q already present", ErrInvalidArgument, q.ID)
		}
	}
	if len(q.DividerIDs) == 0 {
		return fmt.Errorf("%w: quadrant %q references no dividers", ErrInvalidArgument, q.ID)
	}
	if len(q.DividerIDs) != len(q.Positions) {
		return fmt.Errorf("%w: quadrant %q has %d divider references but %d positions", ErrInvalidArgument, q.ID, len(q.DividerIDs), len(q.Positions))
	}
	seen := make(map[string]struct{}, len(q.DividerIDs))
	for _, id := range q.DividerIDs {
		if g.DividerIndex(id) < 0 {
			return fmt.Errorf("%w: quadrant %q references unknown divider %q", ErrInvalidArgument, q.ID, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: quadrant %q references divider %q twice", ErrInvalidArgument, q.ID, id)
		}
		seen[id] = struct{}{}
	}
	g.quadrants = append(g.quadrants, cloneQuadrant(q))
	if g.state != nil {
		g.state.GateQuadrantAppended(g, q.ID)
	}
	return nil
}

// Clone deep-copies the gate and its subtree with fresh identities.
func (g *QuadrantGate) Clone() Gate {
	cp := &QuadrantGate{
		dividers:  g.Dividers(),
		quadrants: g.Quadrants(),
	}
	cp.gateBase = g.cloneBase(cp)
	return cp
}
