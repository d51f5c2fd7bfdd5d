package gating

import "encoding/json"

// Operation names recorded by ChangeLog and exported by metrics consumers.
// One name per observable mutation.
const (
	OpGateOriginalIDSet               = "gate_original_id_set"
	OpGateNameSet                     = "gate_name_set"
	OpGateDescriptionSet              = "gate_description_set"
	OpGateNotesSet                    = "gate_notes_set"
	OpGateGatingMethodSet             = "gate_gating_method_set"
	OpGateReportPrioritySet           = "gate_report_priority_set"
	OpGateDimensionParameterNameSet   = "gate_dimension_parameter_name_set"
	OpGateDimensionTransformSet       = "gate_dimension_transform_set"
	OpGateClusteringParameterAppended = "gate_clustering_parameter_appended"
	OpGateClusteringParameterRemoved  = "gate_clustering_parameter_removed"
	OpGateClusteringParametersCleared = "gate_clustering_parameters_cleared"
	OpGateClusteringParamTransformSet = "gate_clustering_parameter_transform_set"
	OpGateChildAppended               = "gate_child_appended"
	OpGateChildRemoved                = "gate_child_removed"
	OpGateChildrenCleared             = "gate_children_cleared"
	OpGateChildNegatedSet             = "gate_child_negated_set"
	OpGateQuadrantAppended            = "gate_quadrant_appended"
	OpGateTreesNameSet                = "trees_name_set"
	OpGateTreesDescriptionSet         = "trees_description_set"
	OpGateTreesNotesSet               = "trees_notes_set"
	OpGateTreesFileNameSet            = "trees_file_name_set"
	OpGateTreesFCSFileNameSet         = "trees_fcs_file_name_set"
	OpGateTreesCreatorSoftwareNameSet = "trees_creator_software_name_set"
	OpGateTreesRootAppended           = "trees_root_appended"
	OpGateTreesRootRemoved            = "trees_root_removed"
	OpGateTreesRootsCleared           = "trees_roots_cleared"
)

// Change is a JSON snapshot of one observed model mutation. GateID is zero
// for forest-level mutations.
type Change struct {
	Operation string          `json:"operation"`
	GateID    int64           `json:"gate_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// ChangeLog records every observer callback it receives, in call order. It
// implements both GateState and GateTreesState, so one log can watch a
// forest and all of its gates. Like the model it observes, it is not safe
// for concurrent use.
type ChangeLog struct {
	changes []Change
}

var (
	_ GateState      = (*ChangeLog)(nil)
	_ GateTreesState = (*ChangeLog)(nil)
)

// NewChangeLog constructs an empty change log.
func NewChangeLog() *ChangeLog { return &ChangeLog{} }

// Changes returns a copy of the recorded changes in call order.
func (l *ChangeLog) Changes() []Change {
	return append([]Change(nil), l.changes...)
}

// Len returns the number of recorded changes.
func (l *ChangeLog) Len() int { return len(l.changes) }

// Reset discards all recorded changes.
func (l *ChangeLog) Reset() { l.changes = nil }

func (l *ChangeLog) record(operation string, gateID int64, payload any) {
	change := Change{Operation: operation, GateID: gateID}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			change.Payload = raw
		}
	}
	l.changes = append(l.changes, change)
}

func transformID(transform Transform) int64 {
	if transform == nil {
		return 0
	}
	return transform.ID()
}

func (l *ChangeLog) GateOriginalIDSet(gate Gate, originalID string) {
	l.record(OpGateOriginalIDSet, gate.ID(), map[string]string{"original_id": originalID})
}

func (l *ChangeLog) GateNameSet(gate Gate, name string) {
	l.record(OpGateNameSet, gate.ID(), map[string]string{"name": name})
}

func (l *ChangeLog) GateDescriptionSet(gate Gate, description string) {
	l.record(OpGateDescriptionSet, gate.ID(), map[string]string{"description": description})
}

func (l *ChangeLog) GateNotesSet(gate Gate, notes string) {
	l.record(OpGateNotesSet, gate.ID(), map[string]string{"notes": notes})
}

func (l *ChangeLog) GateGatingMethodSet(gate Gate, method GatingMethod) {
	l.record(OpGateGatingMethodSet, gate.ID(), map[string]GatingMethod{"method": method})
}

func (l *ChangeLog) GateReportPrioritySet(gate Gate, priority uint32) {
	l.record(OpGateReportPrioritySet, gate.ID(), map[string]uint32{"priority": priority})
}

func (l *ChangeLog) GateDimensionParameterNameSet(gate Gate, dimension int, name string) {
	l.record(OpGateDimensionParameterNameSet, gate.ID(), map[string]any{"dimension": dimension, "name": name})
}

func (l *ChangeLog) GateDimensionTransformSet(gate Gate, dimension int, transform Transform) {
	l.record(OpGateDimensionTransformSet, gate.ID(), map[string]any{"dimension": dimension, "transform_id": transformID(transform)})
}

func (l *ChangeLog) GateClusteringParameterAppended(gate Gate, name string, transform Transform) {
	l.record(OpGateClusteringParameterAppended, gate.ID(), map[string]any{"name": name, "transform_id": transformID(transform)})
}

func (l *ChangeLog) GateClusteringParameterRemoved(gate Gate, name string) {
	l.record(OpGateClusteringParameterRemoved, gate.ID(), map[string]string{"name": name})
}

func (l *ChangeLog) GateClusteringParametersCleared(gate Gate) {
	l.record(OpGateClusteringParametersCleared, gate.ID(), nil)
}

func (l *ChangeLog) GateClusteringParameterTransformSet(gate Gate, name string, transform Transform) {
	l.record(OpGateClusteringParamTransformSet, gate.ID(), map[string]any{"name": name, "transform_id": transformID(transform)})
}

func (l *ChangeLog) GateChildAppended(gate Gate, child Gate) {
	l.record(OpGateChildAppended, gate.ID(), map[string]int64{"child_id": child.ID()})
}

func (l *ChangeLog) GateChildRemoved(gate Gate, index int, child Gate) {
	l.record(OpGateChildRemoved, gate.ID(), map[string]any{"index": index, "child_id": child.ID()})
}

func (l *ChangeLog) GateChildrenCleared(gate Gate) {
	l.record(OpGateChildrenCleared, gate.ID(), nil)
}

func (l *ChangeLog) GateChildNegatedSet(gate Gate, index int, negated bool) {
	l.record(OpGateChildNegatedSet, gate.ID(), map[string]any{"index": index, "negated": negated})
}

func (l *ChangeLog) GateQuadrantAppended(gate Gate, quadrantID string) {
	l.record(OpGateQuadrantAppended, gate.ID(), map[string]string{"quadrant_id": quadrantID})
}

func (l *ChangeLog) GateTreesNameSet(_ *GateTrees, name string) {
	l.record(OpGateTreesNameSet, 0, map[string]string{"name": name})
}

func (l *ChangeLog) GateTreesDescriptionSet(_ *GateTrees, description string) {
	l.record(OpGateTreesDescriptionSet, 0, map[string]string{"description": description})
}

func (l *ChangeLog) GateTreesNotesSet(_ *GateTrees, notes string) {
	l.record(OpGateTreesNotesSet, 0, map[string]string{"notes": notes})
}

func (l *ChangeLog) GateTreesFileNameSet(_ *GateTrees, fileName string) {
	l.record(OpGateTreesFileNameSet, 0, map[string]string{"file_name": fileName})
}

func (l *ChangeLog) GateTreesFCSFileNameSet(_ *GateTrees, fcsFileName string) {
	l.record(OpGateTreesFCSFileNameSet, 0, map[string]string{"fcs_file_name": fcsFileName})
}

func (l *ChangeLog) GateTreesCreatorSoftwareNameSet(_ *GateTrees, creatorSoftwareName string) {
	l.record(OpGateTreesCreatorSoftwareNameSet, 0, map[string]string{"creator_software_name": creatorSoftwareName})
}

func (l *ChangeLog) GateTreesRootAppended(_ *GateTrees, root Gate) {
	l.record(OpGateTreesRootAppended, 0, map[string]int64{"root_id": root.ID()})
}

func (l *ChangeLog) GateTreesRootRemoved(_ *GateTrees, index int, root Gate) {
	l.record(OpGateTreesRootRemoved, 0, map[string]any{"index": index, "root_id": root.ID()})
}

func (l *ChangeLog) GateTreesRootsCleared(*GateTrees) {
	l.record(OpGateTreesRootsCleared, 0, nil)
}
