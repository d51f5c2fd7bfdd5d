// Package testutil provides shared helpers for exercising the gating model
// in tests.
package testutil

import "cytogate/pkg/gating"

// StateCall is one recorded observer callback: the operation name and the
// exact arguments the model passed.
type StateCall struct {
	Op   string
	Args []any
}

// RecordingState captures gate and forest observer callbacks in call order
// with their original arguments, so tests can assert that mutations fire
// exactly one matching callback each.
type RecordingState struct {
	Calls []StateCall
}

var (
	_ gating.GateState      = (*RecordingState)(nil)
	_ gating.GateTreesState = (*RecordingState)(nil)
)

// Ops returns the recorded operation names in call order.
func (r *RecordingState) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

// Reset discards all recorded calls.
func (r *RecordingState) Reset() { r.Calls = nil }

func (r *RecordingState) record(op string, args ...any) {
	r.Calls = append(r.Calls, StateCall{Op: op, Args: args})
}

func (r *RecordingState) GateOriginalIDSet(gate gating.Gate, originalID string) {
	r.record(gating.OpGateOriginalIDSet, gate, originalID)
}

func (r *RecordingState) GateNameSet(gate gating.Gate, name string) {
	r.record(gating.OpGateNameSet, gate, name)
}

func (r *RecordingState) GateDescriptionSet(gate gating.Gate, description string) {
	r.record(gating.OpGateDescriptionSet, gate, description)
}

func (r *RecordingState) GateNotesSet(gate gating.Gate, notes string) {
	r.record(gating.OpGateNotesSet, gate, notes)
}

func (r *RecordingState) GateGatingMethodSet(gate gating.Gate, method gating.GatingMethod) {
	r.record(gating.OpGateGatingMethodSet, gate, method)
}

func (r *RecordingState) GateReportPrioritySet(gate gating.Gate, priority uint32) {
	r.record(gating.OpGateReportPrioritySet, gate, priority)
}

func (r *RecordingState) GateDimensionParameterNameSet(gate gating.Gate, dimension int, name string) {
	r.record(gating.OpGateDimensionParameterNameSet, gate, dimension, name)
}

func (r *RecordingState) GateDimensionTransformSet(gate gating.Gate, dimension int, transform gating.Transform) {
	r.record(gating.OpGateDimensionTransformSet, gate, dimension, transform)
}

func (r *RecordingState) GateClusteringParameterAppended(gate gating.Gate, name string, transform gating.Transform) {
	r.record(gating.OpGateClusteringParameterAppended, gate, name, transform)
}

func (r *RecordingState) GateClusteringParameterRemoved(gate gating.Gate, name string) {
	r.record(gating.OpGateClusteringParameterRemoved, gate, name)
}

func (r *RecordingState) GateClusteringParametersCleared(gate gating.Gate) {
	r.record(gating.OpGateClusteringParametersCleared, gate)
}

func (r *RecordingState) GateClusteringParameterTransformSet(gate gating.Gate, name string, transform gating.Transform) {
	r.record(gating.OpGateClusteringParamTransformSet, gate, name, transform)
}

func (r *RecordingState) GateChildAppended(gate gating.Gate, child gating.Gate) {
	r.record(gating.OpGateChildAppended, gate, child)
}

func (r *RecordingState) GateChildRemoved(gate gating.Gate, index int, child gating.Gate) {
	r.record(gating.OpGateChildRemoved, gate, index, child)
}

func (r *RecordingState) GateChildrenCleared(gate gating.Gate) {
	r.record(gating.OpGateChildrenCleared, gate)
}

func (r *RecordingState) GateChildNegatedSet(gate gating.Gate, index int, negated bool) {
	r.record(gating.OpGateChildNegatedSet, gate, index, negated)
}

func (r *RecordingState) GateQuadrantAppended(gate gating.Gate, quadrantID string) {
	r.record(gating.OpGateQuadrantAppended, gate, quadrantID)
}

func (r *RecordingState) GateTreesNameSet(trees *gating.GateTrees, name string) {
	r.record(gating.OpGateTreesNameSet, trees, name)
}

func (r *RecordingState) GateTreesDescriptionSet(trees *gating.GateTrees, description string) {
	r.record(gating.OpGateTreesDescriptionSet, trees, description)
}

func (r *RecordingState) GateTreesNotesSet(trees *gating.GateTrees, notes string) {
	r.record(gating.OpGateTreesNotesSet, trees, notes)
}

func (r *RecordingState) GateTreesFileNameSet(trees *gating.GateTrees, fileName string) {
	r.record(gating.OpGateTreesFileNameSet, trees, fileName)
}

func (r *RecordingState) GateTreesFCSFileNameSet(trees *gating.GateTrees, fcsFileName string) {
	r.record(gating.OpGateTreesFCSFileNameSet, trees, fcsFileName)
}

func (r *RecordingState) GateTreesCreatorSoftwareNameSet(trees *gating.GateTrees, creatorSoftwareName string) {
	r.record(gating.OpGateTreesCreatorSoftwareNameSet, trees, creatorSoftwareName)
}

func (r *RecordingState) GateTreesRootAppended(trees *gating.GateTrees, root gating.Gate) {
	r.record(gating.OpGateTreesRootAppended, trees, root)
}

func (r *RecordingState) GateTreesRootRemoved(trees *gating.GateTrees, index int, root gating.Gate) {
	r.record(gating.OpGateTreesRootRemoved, trees, index, root)
}

func (r *RecordingState) GateTreesRootsCleared(trees *gating.GateTrees) {
	r.record(gating.OpGateTreesRootsCleared, trees)
}
