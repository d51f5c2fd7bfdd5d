package gating

import (
	"fmt"
	"strings"
)

// GateKind identifies the concrete type of a gate. The string values are
// stable and used by interchange formats.
type GateKind string

// Supported gate kind identifiers.
const (
	GateRectangle  GateKind = "rectangle"
	GatePolygon    GateKind = "polygon"
	GateEllipsoid  GateKind = "ellipsoid"
	GateQuadrant   GateKind = "quadrant"
	GateBoolean    GateKind = "boolean"
	GateCustomKind GateKind = "custom"
)

// ParseGateKind maps a codec-facing kind name to a GateKind. Unknown names
// decode to GateCustomKind.
func ParseGateKind(name string) GateKind {
	switch GateKind(strings.ToLower(name)) {
	case GateRectangle, GatePolygon, GateEllipsoid, GateQuadrant, GateBoolean:
		return GateKind(strings.ToLower(name))
	default:
		return GateCustomKind
	}
}

// GatingMethod selects how a gating engine evaluates a gate.
type GatingMethod string

// Supported gating methods.
const (
	// GatingMethodEventValue tests individual event values against the
	// gate region. This is the default.
	GatingMethodEventValue GatingMethod = "event"
	// GatingMethodClusterCentroid tests cluster centroids instead of raw
	// events.
	GatingMethodClusterCentroid GatingMethod = "cluster"
	// GatingMethodCustom marks an engine-specific method.
	GatingMethodCustom GatingMethod = "custom"
)

// ParseGatingMethod maps a codec-facing method name to a GatingMethod:
// "event" and "manual" decode to event-value gating, "dafi" and "cluster"
// to cluster-centroid gating, anything else to custom.
func ParseGatingMethod(name string) GatingMethod {
	switch strings.ToLower(name) {
	case "event", "manual":
		return GatingMethodEventValue
	case "dafi", "cluster":
		return GatingMethodClusterCentroid
	default:
		return GatingMethodCustom
	}
}

// ClusteringParameter is an additional (parameter name, optional transform)
// pair consumed only by clustering-based gating.
type ClusteringParameter struct {
	Name      string
	Transform Transform
}

// Gate is a classification region or expression over one or more event
// parameter axes. The kind set is closed: Rectangle, Polygon, Ellipsoid,
// Quadrant, Boolean and Custom, each a concrete struct in this package.
//
// A gate has a fixed dimension count, one parameter name and optional
// shared transform per dimension, annotation fields, an ordered children
// list with single-parent enforcement, and an optional observer that is
// invoked after every mutation.
type Gate interface {
	// ID returns the process-unique identity assigned at construction.
	ID() int64
	// Kind returns the concrete kind, fixed at construction.
	Kind() GateKind
	// DimensionCount returns the number of dimensions, fixed at
	// construction (zero for Boolean gates).
	DimensionCount() int

	DimensionParameterName(dimension int) (string, error)
	SetDimensionParameterName(dimension int, name string) error
	DimensionTransform(dimension int) (Transform, error)
	SetDimensionTransform(dimension int, transform Transform) error

	// Children returns a copy of the ordered children list.
	Children() []Gate
	ChildAt(index int) (Gate, error)
	ChildCount() int
	// AppendChild attaches child. It fails if child is nil, already has a
	// parent, or the attachment would create a cycle.
	AppendChild(child Gate) error
	RemoveChildAt(index int) error
	RemoveChild(child Gate) error
	ClearChildren()
	// HasParent reports whether the gate is currently attached to a
	// parent's children list.
	HasParent() bool

	ClusteringParameters() []ClusteringParameter
	AppendClusteringParameter(name string, transform Transform) error
	RemoveClusteringParameter(name string) error
	ClearClusteringParameters() error
	SetClusteringParameterTransform(name string, transform Transform) error

	OriginalID() string
	SetOriginalID(originalID string)
	Name() string
	SetName(name string)
	Description() string
	SetDescription(description string)
	// Notes may carry personal or health information and is the target of
	// de-identification.
	Notes() string
	SetNotes(notes string)
	GatingMethod() GatingMethod
	SetGatingMethod(method GatingMethod)
	ReportPriority() uint32
	SetReportPriority(priority uint32)

	// State returns the attached observer, nil when none is attached.
	State() GateState
	SetState(state GateState)

	// FindDescendantGates lists every descendant in pre-order: each gate
	// appears before any of its own descendants. The receiver is not
	// included.
	FindDescendantGates() []Gate
	// FindTransformByID scans this gate's dimension transforms, then its
	// clustering-parameter transforms. It does not recurse.
	FindTransformByID(id int64) Transform
	FindNumberOfDescendantGates() int
	// FindNumberOfDescendantTransforms counts the transform references
	// held by this gate and every descendant; shared transforms count once
	// per reference.
	FindNumberOfDescendantTransforms() int

	// Clone deep-copies the gate and its descendant subtree with fresh
	// identities. Transforms are shared, the observer is not copied.
	Clone() Gate

	// setHasParent is unexported to seal the kind set to this package.
	setHasParent(attached bool)
}

type gateDimension struct {
	parameterName string
	transform     Transform
}

// gateBase carries the identity, dimensions, children, clustering
// parameters, and annotation shared by every gate kind. self points at the
// embedding concrete gate so observer callbacks and traversal dispatch
// polymorphically.
type gateBase struct {
	id   int64
	kind GateKind
	self Gate

	dims      []gateDimension
	children  []Gate
	hasParent bool

	clustering        []ClusteringParameter
	clusteringAllowed bool

	originalID  string
	name        string
	description string
	notes       string
	method      GatingMethod
	priority    uint32

	state GateState
}

func newGateBase(self Gate, kind GateKind, dimensionCount int, clusteringAllowed bool) gateBase {
	return gateBase{
		id:                nextID(),
		kind:              kind,
		self:              self,
		dims:              make([]gateDimension, dimensionCount),
		clusteringAllowed: clusteringAllowed,
		method:            GatingMethodEventValue,
		priority:          1,
	}
}

func (b *gateBase) ID() int64           { return b.id }
func (b *gateBase) Kind() GateKind      { return b.kind }
func (b *gateBase) DimensionCount() int { return len(b.dims) }

func (b *gateBase) checkDimension(dimension int) error {
	if dimension < 0 || dimension >= len(b.dims) {
		return fmt.Errorf("%w: dimension %d outside [0,%d)", ErrIndexOutOfRange, dimension, len(b.dims))
	}
	return nil
}

// DimensionParameterName returns the parameter name of the given dimension;
// the name may be unset.
func (b *gateBase) DimensionParameterName(dimension int) (string, error) {
	if err := b.checkDimension(dimension); err != nil {
		return "", err
	}
	return b.dims[dimension].parameterName, nil
}

// SetDimensionParameterName assigns the parameter name of the given
// dimension. Setting an unchanged value is a no-op and fires no callback.
func (b *gateBase) SetDimensionParameterName(dimension int, name string) error {
	if err := b.checkDimension(dimension); err != nil {
		return err
	}
	if b.dims[dimension].parameterName == name {
		return nil
	}
	b.dims[dimension].parameterName = name
	if b.state != nil {
		b.state.GateDimensionParameterNameSet(b.self, dimension, name)
	}
	return nil
}

// DimensionTransform returns the transform of the given dimension, nil when
// none is assigned.
func (b *gateBase) DimensionTransform(dimension int) (Transform, error) {
	if err := b.checkDimension(dimension); err != nil {
		return nil, err
	}
	return b.dims[dimension].transform, nil
}

// SetDimensionTransform assigns the transform of the given dimension; nil
// clears it. Setting an unchanged value is a no-op and fires no callback.
func (b *gateBase) SetDimensionTransform(dimension int, transform Transform) error {
	if err := b.checkDimension(dimension); err != nil {
		return err
	}
	if b.dims[dimension].transform == transform {
		return nil
	}
	b.dims[dimension].transform = transform
	if b.state != nil {
		b.state.GateDimensionTransformSet(b.self, dimension, transform)
	}
	return nil
}

func (b *gateBase) hasDimensionParameter(name string) bool {
	for _, d := range b.dims {
		if d.parameterName == name {
			return true
		}
	}
	return false
}

// Children returns a copy of the ordered children list.
func (b *gateBase) Children() []Gate {
	return append([]Gate(nil), b.children...)
}

// ChildCount returns the number of direct children.
func (b *gateBase) ChildCount() int { return len(b.children) }

// ChildAt returns the child at index.
func (b *gateBase) ChildAt(index int) (Gate, error) {
	if index < 0 || index >= len(b.children) {
		return nil, fmt.Errorf("%w: child %d outside [0,%d)", ErrIndexOutOfRange, index, len(b.children))
	}
	return b.children[index], nil
}

// HasParent reports whether the gate is attached to a parent.
func (b *gateBase) HasParent() bool { return b.hasParent }

func (b *gateBase) setHasParent(attached bool) { b.hasParent = attached }

// checkAppendChild validates the single-parent and acyclicity invariants.
func (b *gateBase) checkAppendChild(child Gate) error {
	if child == nil {
		return fmt.Errorf("%w: nil child gate", ErrInvalidArgument)
	}
	if child.HasParent() {
		return fmt.Errorf("%w: gate %d already has a parent", ErrInvalidArgument, child.ID())
	}
	if child == b.self {
		return fmt.Errorf("%w: gate %d cannot be its own child", ErrInvalidArgument, child.ID())
	}
	for _, g := range child.FindDescendantGates() {
		if g == b.self {
			return fmt.Errorf("%w: gate %d is a descendant of gate %d, attaching it would create a cycle", ErrInvalidArgument, b.id, child.ID())
		}
	}
	return nil
}

// appendChild mutates and fires; callers validate with checkAppendChild.
func (b *gateBase) appendChild(child Gate) {
	b.children = append(b.children, child)
	child.setHasParent(true)
	if b.state != nil {
		b.state.GateChildAppended(b.self, child)
	}
}

// AppendChild attaches child at the end of the children list. A gate may be
// a child of at most one parent at a time.
func (b *gateBase) AppendChild(child Gate) error {
	if err := b.checkAppendChild(child); err != nil {
		return err
	}
	b.appendChild(child)
	return nil
}

// removeChildAt mutates and fires; callers validate the index.
func (b *gateBase) removeChildAt(index int) {
	child := b.children[index]
	b.children = append(b.children[:index], b.children[index+1:]...)
	child.setHasParent(false)
	if b.state != nil {
		b.state.GateChildRemoved(b.self, index, child)
	}
}

// RemoveChildAt detaches the child at index, clearing its parent flag so it
// can be attached elsewhere.
func (b *gateBase) RemoveChildAt(index int) error {
	if index < 0 || index >= len(b.children) {
		return fmt.Errorf("%w: child %d outside [0,%d)", ErrIndexOutOfRange, index, len(b.children))
	}
	b.removeChildAt(index)
	return nil
}

func (b *gateBase) childIndex(child Gate) int {
	for i, c := range b.children {
		if c == child {
			return i
		}
	}
	return -1
}

// RemoveChild detaches the given child.
func (b *gateBase) RemoveChild(child Gate) error {
	index := b.childIndex(child)
	if index < 0 {
		return fmt.Errorf("%w: gate is not a child of gate %d", ErrInvalidArgument, b.id)
	}
	b.removeChildAt(index)
	return nil
}

// clearChildren mutates and fires.
func (b *gateBase) clearChildren() {
	if len(b.children) == 0 {
		return
	}
	for _, c := range b.children {
		c.setHasParent(false)
	}
	b.children = nil
	if b.state != nil {
		b.state.GateChildrenCleared(b.self)
	}
}

// ClearChildren detaches every child. Clearing an empty list is a no-op and
// fires no callback.
func (b *gateBase) ClearChildren() {
	b.clearChildren()
}

// ClusteringParameters returns a copy of the additional clustering
// parameter list.
func (b *gateBase) ClusteringParameters() []ClusteringParameter {
	return append([]ClusteringParameter(nil), b.clustering...)
}

func (b *gateBase) checkClusteringSupported() error {
	if !b.clusteringAllowed {
		return fmt.Errorf("%w: %s gates do not support additional clustering parameters", ErrInvalidArgument, b.kind)
	}
	return nil
}

func (b *gateBase) clusteringIndex(name string) int {
	for i, p := range b.clustering {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// AppendClusteringParameter adds a (name, transform) pair for
// clustering-based gating. The name must be non-empty, must not collide
// with a dimension parameter, and must not already be in the list.
func (b *gateBase) AppendClusteringParameter(name string, transform Transform) error {
	if err := b.checkClusteringSupported(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: empty clustering parameter name", ErrInvalidArgument)
	}
	if b.hasDimensionParameter(name) {
		return fmt.Errorf("%w: %q is already a dimension parameter of gate %d", ErrInvalidArgument, name, b.id)
	}
	if b.clusteringIndex(name) >= 0 {
		return fmt.Errorf("%w: clustering parameter %q already present on gate %d", ErrInvalidArgument, name, b.id)
	}
	b.clustering = append(b.clustering, ClusteringParameter{Name: name, Transform: transform})
	if b.state != nil {
		b.state.GateClusteringParameterAppended(b.self, name, transform)
	}
	return nil
}

// RemoveClusteringParameter removes the pair with the given name.
func (b *gateBase) RemoveClusteringParameter(name string) error {
	if err := b.checkClusteringSupported(); err != nil {
		return err
	}
	index := b.clusteringIndex(name)
	if index < 0 {
		return fmt.Errorf("%w: no clustering parameter %q on gate %d", ErrInvalidArgument, name, b.id)
	}
	b.clustering = append(b.clustering[:index], b.clustering[index+1:]...)
	if b.state != nil {
		b.state.GateClusteringParameterRemoved(b.self, name)
	}
	return nil
}

// ClearClusteringParameters removes every pair. Clearing an empty list is a
// no-op and fires no callback.
func (b *gateBase) ClearClusteringParameters() error {
	if err := b.checkClusteringSupported(); err != nil {
		return err
	}
	if len(b.clustering) == 0 {
		return nil
	}
	b.clustering = nil
	if b.state != nil {
		b.state.GateClusteringParametersCleared(b.self)
	}
	return nil
}

// SetClusteringParameterTransform assigns the transform of the named pair.
// Setting an unchanged value is a no-op and fires no callback.
func (b *gateBase) SetClusteringParameterTransform(name string, transform Transform) error {
	if err := b.checkClusteringSupported(); err != nil {
		return err
	}
	index := b.clusteringIndex(name)
	if index < 0 {
		return fmt.Errorf("%w: no clustering parameter %q on gate %d", ErrInvalidArgument, name, b.id)
	}
	if b.clustering[index].Transform == transform {
		return nil
	}
	b.clustering[index].Transform = transform
	if b.state != nil {
		b.state.GateClusteringParameterTransformSet(b.self, name, transform)
	}
	return nil
}

func (b *gateBase) OriginalID() string { return b.originalID }

// SetOriginalID assigns the interchange-format identity. Unchanged values
// are a no-op.
func (b *gateBase) SetOriginalID(originalID string) {
	if b.originalID == originalID {
		return
	}
	b.originalID = originalID
	if b.state != nil {
		b.state.GateOriginalIDSet(b.self, originalID)
	}
}

func (b *gateBase) Name() string { return b.name }

// SetName assigns the display name. Unchanged values are a no-op.
func (b *gateBase) SetName(name string) {
	if b.name == name {
		return
	}
	b.name = name
	if b.state != nil {
		b.state.GateNameSet(b.self, name)
	}
}

func (b *gateBase) Description() string { return b.description }

// SetDescription assigns the description. Unchanged values are a no-op.
func (b *gateBase) SetDescription(description string) {
	if b.description == description {
		return
	}
	b.description = description
	if b.state != nil {
		b.state.GateDescriptionSet(b.self, description)
	}
}

func (b *gateBase) Notes() string { return b.notes }

// SetNotes assigns the privacy-sensitive notes field. Unchanged values are
// a no-op.
func (b *gateBase) SetNotes(notes string) {
	if b.notes == notes {
		return
	}
	b.notes = notes
	if b.state != nil {
		b.state.GateNotesSet(b.self, notes)
	}
}

func (b *gateBase) GatingMethod() GatingMethod { return b.method }

// SetGatingMethod assigns the gating method. Unchanged values are a no-op.
func (b *gateBase) SetGatingMethod(method GatingMethod) {
	if b.method == method {
		return
	}
	b.method = method
	if b.state != nil {
		b.state.GateGatingMethodSet(b.self, method)
	}
}

func (b *gateBase) ReportPriority() uint32 { return b.priority }

// SetReportPriority assigns the report priority. Unchanged values are a
// no-op.
func (b *gateBase) SetReportPriority(priority uint32) {
	if b.priority == priority {
		return
	}
	b.priority = priority
	if b.state != nil {
		b.state.GateReportPrioritySet(b.self, priority)
	}
}

func (b *gateBase) State() GateState { return b.state }

// SetState attaches an observer; nil detaches. Attachment itself is not an
// observed mutation.
func (b *gateBase) SetState(state GateState) { b.state = state }

// FindDescendantGates lists descendants in pre-order, parents before
// children. The receiver is not included.
func (b *gateBase) FindDescendantGates() []Gate {
	var out []Gate
	for _, child := range b.children {
		out = append(out, child)
		out = append(out, child.FindDescendantGates()...)
	}
	return out
}

// FindTransformByID scans this gate's dimension transforms, then its
// clustering-parameter transforms. It does not recurse into children.
func (b *gateBase) FindTransformByID(id int64) Transform {
	for _, d := range b.dims {
		if d.transform != nil && d.transform.ID() == id {
			return d.transform
		}
	}
	for _, p := range b.clustering {
		if p.Transform != nil && p.Transform.ID() == id {
			return p.Transform
		}
	}
	return nil
}

// FindNumberOfDescendantGates counts every descendant gate.
func (b *gateBase) FindNumberOfDescendantGates() int {
	n := len(b.children)
	for _, c := range b.children {
		n += c.FindNumberOfDescendantGates()
	}
	return n
}

func (b *gateBase) numberOfOwnTransforms() int {
	n := 0
	for _, d := range b.dims {
		if d.transform != nil {
			n++
		}
	}
	for _, p := range b.clustering {
		if p.Transform != nil {
			n++
		}
	}
	return n
}

// FindNumberOfDescendantTransforms counts the transform references held by
// this gate and every descendant.
func (b *gateBase) FindNumberOfDescendantTransforms() int {
	n := b.numberOfOwnTransforms()
	for _, c := range b.children {
		n += c.FindNumberOfDescendantTransforms()
	}
	return n
}

// cloneBase deep-copies the shared state for a clone rooted at self: fresh
// identity, cloned children subtrees, shared transforms, no observer, no
// parent.
func (b *gateBase) cloneBase(self Gate) gateBase {
	cp := *b
	cp.id = nextID()
	cp.self = self
	cp.state = nil
	cp.hasParent = false
	cp.dims = append([]gateDimension(nil), b.dims...)
	cp.clustering = append([]ClusteringParameter(nil), b.clustering...)
	cp.children = make([]Gate, len(b.children))
	for i, c := range b.children {
		cc := c.Clone()
		cc.setHasParent(true)
		cp.children[i] = cc
	}
	return cp
}
