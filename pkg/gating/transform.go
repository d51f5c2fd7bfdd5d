package gating

import (
	"fmt"
	"strings"
)

// TransformKind identifies the concrete type of a transform. The string
// values are stable and used by interchange formats.
type TransformKind string

// Supported transform kind identifiers.
const (
	TransformLinear      TransformKind = "linear"
	TransformLogarithmic TransformKind = "log"
	TransformAsinh       TransformKind = "inverse_hyperbolic_sine"
	TransformLogicle     TransformKind = "logicle"
	TransformHyperlog    TransformKind = "hyperlog"
	TransformCustomKind  TransformKind = "custom"
)

// ParseTransformKind maps a codec-facing kind name to a TransformKind.
// Unknown names decode to TransformCustomKind.
func ParseTransformKind(name string) TransformKind {
	switch TransformKind(strings.ToLower(name)) {
	case TransformLinear, TransformLogarithmic, TransformAsinh, TransformLogicle, TransformHyperlog:
		return TransformKind(strings.ToLower(name))
	default:
		return TransformCustomKind
	}
}

// Transform is a pure numeric mapping from a raw axis value to a display or
// analysis value. Numeric parameters are validated at construction and
// immutable afterwards; annotation fields remain mutable. A transform may be
// shared read-only by any number of gate dimensions.
type Transform interface {
	// ID returns the process-unique identity assigned at construction.
	ID() int64
	// Kind returns the concrete kind, fixed at construction.
	Kind() TransformKind

	OriginalID() string
	SetOriginalID(originalID string)
	Name() string
	SetName(name string)
	Description() string
	SetDescription(description string)

	// Apply maps a single raw value.
	Apply(value float64) (float64, error)
	// ApplyTo maps every element of values in place. Results are
	// numerically identical to repeated Apply calls. It fails with
	// ErrInvalidArgument on a nil or empty buffer.
	ApplyTo(values []float64) error

	// Clone returns a deep copy with a new identity and identical
	// parameters and annotation.
	Clone() Transform
}

// transformBase carries the identity and annotation shared by every
// transform kind.
type transformBase struct {
	id          int64
	kind        TransformKind
	originalID  string
	name        string
	description string
}

func newTransformBase(kind TransformKind) transformBase {
	return transformBase{id: nextID(), kind: kind}
}

func (b *transformBase) ID() int64           { return b.id }
func (b *transformBase) Kind() TransformKind { return b.kind }

func (b *transformBase) OriginalID() string              { return b.originalID }
func (b *transformBase) SetOriginalID(originalID string) { b.originalID = originalID }
func (b *transformBase) Name() string                    { return b.name }
func (b *transformBase) SetName(name string)             { b.name = name }
func (b *transformBase) Description() string             { return b.description }
func (b *transformBase) SetDescription(d string)         { b.description = d }

// cloneBase copies annotation and assigns a fresh identity.
func (b *transformBase) cloneBase() transformBase {
	cp := *b
	cp.id = nextID()
	return cp
}

// checkBulk validates the buffer handed to a bulk transform.
func checkBulk(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty transform buffer", ErrInvalidArgument)
	}
	return nil
}
