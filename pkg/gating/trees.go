package gating

import "fmt"

// GateTrees is a forest: an ordered list of root gates, none of which has a
// parent, plus forest-level annotation and an optional observer. The forest
// exclusively owns its roots list; removing a root does not alter the
// root's descendants.
type GateTrees struct {
	roots []Gate

	name                string
	description         string
	notes               string
	fileName            string
	fcsFileName         string
	creatorSoftwareName string

	state GateTreesState
}

// NewGateTrees constructs an empty forest.
func NewGateTrees() *GateTrees { return &GateTrees{} }

// Roots returns a copy of the ordered roots list.
func (t *GateTrees) Roots() []Gate {
	return append([]Gate(nil), t.roots...)
}

// RootCount returns the number of roots.
func (t *GateTrees) RootCount() int { return len(t.roots) }

// RootAt returns the root at index.
func (t *GateTrees) RootAt(index int) (Gate, error) {
	if index < 0 || index >= len(t.roots) {
		return nil, fmt.Errorf("%w: root %d outside [0,%d)", ErrIndexOutOfRange, index, len(t.roots))
	}
	return t.roots[index], nil
}

// AppendRoot adds a root gate. The gate must not have a parent and must not
// already be a root of this forest.
func (t *GateTrees) AppendRoot(root Gate) error {
	if root == nil {
		return fmt.Errorf("%w: nil root gate", ErrInvalidArgument)
	}
	if root.HasParent() {
		return fmt.Errorf("%w: gate %d has a parent and cannot be a root", ErrInvalidArgument, root.ID())
	}
	for _, r := range t.roots {
		if r == root {
			return fmt.Errorf("%w: gate %d is already a root of this forest", ErrInvalidArgument, root.ID())
		}
	}
	t.roots = append(t.roots, root)
	if t.state != nil {
		t.state.GateTreesRootAppended(t, root)
	}
	return nil
}

// RemoveRootAt removes the root at index. Its descendants are untouched.
func (t *GateTrees) RemoveRootAt(index int) error {
	if index < 0 || index >= len(t.roots) {
		return fmt.Errorf("%w: root %d outside [0,%d)", ErrIndexOutOfRange, index, len(t.roots))
	}
	root := t.roots[index]
	t.roots = append(t.roots[:index], t.roots[index+1:]...)
	if t.state != nil {
		t.state.GateTreesRootRemoved(t, index, root)
	}
	return nil
}

// RemoveRoot removes the given root gate.
func (t *GateTrees) RemoveRoot(root Gate) error {
	for i, r := range t.roots {
		if r == root {
			return t.RemoveRootAt(i)
		}
	}
	return fmt.Errorf("%w: gate is not a root of this forest", ErrInvalidArgument)
}

// ClearRoots removes every root. Clearing an empty forest is a no-op and
// fires no callback.
func (t *GateTrees) ClearRoots() {
	if len(t.roots) == 0 {
		return
	}
	t.roots = nil
	if t.state != nil {
		t.state.GateTreesRootsCleared(t)
	}
}

func (t *GateTrees) Name() string { return t.name }

// SetName assigns the forest name. Unchanged values are a no-op.
func (t *GateTrees) SetName(name string) {
	if t.name == name {
		return
	}
	t.name = name
	if t.state != nil {
		t.state.GateTreesNameSet(t, name)
	}
}

func (t *GateTrees) Description() string { return t.description }

// SetDescription assigns the forest description. Unchanged values are a
// no-op.
func (t *GateTrees) SetDescription(description string) {
	if t.description == description {
		return
	}
	t.description = description
	if t.state != nil {
		t.state.GateTreesDescriptionSet(t, description)
	}
}

func (t *GateTrees) Notes() string { return t.notes }

// SetNotes assigns the privacy-sensitive forest notes. Unchanged values are
// a no-op.
func (t *GateTrees) SetNotes(notes string) {
	if t.notes == notes {
		return
	}
	t.notes = notes
	if t.state != nil {
		t.state.GateTreesNotesSet(t, notes)
	}
}

func (t *GateTrees) FileName() string { return t.fileName }

// SetFileName assigns the gating file name. Unchanged values are a no-op.
func (t *GateTrees) SetFileName(fileName string) {
	if t.fileName == fileName {
		return
	}
	t.fileName = fileName
	if t.state != nil {
		t.state.GateTreesFileNameSet(t, fileName)
	}
}

func (t *GateTrees) FCSFileName() string { return t.fcsFileName }

// SetFCSFileName assigns the FCS template file name. The field may identify
// a sample and is cleared by Deidentify. Unchanged values are a no-op.
func (t *GateTrees) SetFCSFileName(fcsFileName string) {
	if t.fcsFileName == fcsFileName {
		return
	}
	t.fcsFileName = fcsFileName
	if t.state != nil {
		t.state.GateTreesFCSFileNameSet(t, fcsFileName)
	}
}

func (t *GateTrees) CreatorSoftwareName() string { return t.creatorSoftwareName }

// SetCreatorSoftwareName assigns the creating software name. Unchanged
// values are a no-op.
func (t *GateTrees) SetCreatorSoftwareName(creatorSoftwareName string) {
	if t.creatorSoftwareName == creatorSoftwareName {
		return
	}
	t.creatorSoftwareName = creatorSoftwareName
	if t.state != nil {
		t.state.GateTreesCreatorSoftwareNameSet(t, creatorSoftwareName)
	}
}

// State returns the attached observer, nil when none is attached.
func (t *GateTrees) State() GateTreesState { return t.state }

// SetState attaches an observer; nil detaches. Attachment itself is not an
// observed mutation.
func (t *GateTrees) SetState(state GateTreesState) { t.state = state }

// FindDescendantGates lists every gate in the forest in pre-order: each
// root followed by its descendants, parents before children.
func (t *GateTrees) FindDescendantGates() []Gate {
	var out []Gate
	for _, root := range t.roots {
		out = append(out, root)
		out = append(out, root.FindDescendantGates()...)
	}
	return out
}

// FindGateByID returns the gate with the given identity, nil when the
// forest holds no such gate.
func (t *GateTrees) FindGateByID(id int64) Gate {
	for _, g := range t.FindDescendantGates() {
		if g.ID() == id {
			return g
		}
	}
	return nil
}

// FindTransformByID returns the first transform with the given identity
// referenced by any gate in the forest, nil when absent.
func (t *GateTrees) FindTransformByID(id int64) Transform {
	for _, g := range t.FindDescendantGates() {
		if tf := g.FindTransformByID(id); tf != nil {
			return tf
		}
	}
	return nil
}

// FindParentGate returns the parent of gate within the forest, or nil when
// gate is a root. It fails when gate is not part of the forest at all.
func (t *GateTrees) FindParentGate(gate Gate) (Gate, error) {
	if gate == nil {
		return nil, fmt.Errorf("%w: nil gate", ErrInvalidArgument)
	}
	for _, r := range t.roots {
		if r == gate {
			return nil, nil
		}
	}
	for _, g := range t.FindDescendantGates() {
		for _, c := range g.Children() {
			if c == gate {
				return g, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: gate %d is not part of this forest", ErrInvalidArgument, gate.ID())
}

// FindNumberOfGates counts every gate in the forest.
func (t *GateTrees) FindNumberOfGates() int {
	n := len(t.roots)
	for _, root := range t.roots {
		n += root.FindNumberOfDescendantGates()
	}
	return n
}

// FindNumberOfTransforms counts the transform references held by every gate
// in the forest; shared transforms count once per reference.
func (t *GateTrees) FindNumberOfTransforms() int {
	n := 0
	for _, root := range t.roots {
		n += root.FindNumberOfDescendantTransforms()
	}
	return n
}

// Deidentify removes the fields documented as potentially carrying personal
// or health information: the FCS template file name, the forest notes, and
// the notes of every gate in the forest. Nothing else is touched; names,
// descriptions, and original IDs survive byte for byte. Each cleared field
// fires its usual callback.
func (t *GateTrees) Deidentify() {
	t.SetFCSFileName("")
	t.SetNotes("")
	for _, g := range t.FindDescendantGates() {
		g.SetNotes("")
	}
}

// Clone deep-copies the forest: every root subtree is duplicated through
// the gates' own clone operations, annotation is copied, and the observer
// is not.
func (t *GateTrees) Clone() *GateTrees {
	cp := &GateTrees{
		name:                t.name,
		description:         t.description,
		notes:               t.notes,
		fileName:            t.fileName,
		fcsFileName:         t.fcsFileName,
		creatorSoftwareName: t.creatorSoftwareName,
	}
	cp.roots = make([]Gate, len(t.roots))
	for i, root := range t.roots {
		cp.roots[i] = root.Clone()
	}
	return cp
}
