package gating

// GateState is the observer contract for a single gate. Every mutating gate
// operation invokes exactly one matching callback after the change has been
// applied, if and only if an observer is attached. Callbacks are synchronous
// in-process notifications: they must not fail and must not mutate the
// model; they exist so external caches, indexes, and UIs can stay
// synchronized without the model depending on them.
//
// Embed NoopGateState to implement only the callbacks of interest.
type GateState interface {
	GateOriginalIDSet(gate Gate, originalID string)
	GateNameSet(gate Gate, name string)
	GateDescriptionSet(gate Gate, description string)
	GateNotesSet(gate Gate, notes string)
	GateGatingMethodSet(gate Gate, method GatingMethod)
	GateReportPrioritySet(gate Gate, priority uint32)

	GateDimensionParameterNameSet(gate Gate, dimension int, name string)
	GateDimensionTransformSet(gate Gate, dimension int, transform Transform)

	GateClusteringParameterAppended(gate Gate, name string, transform Transform)
	GateClusteringParameterRemoved(gate Gate, name string)
	GateClusteringParametersCleared(gate Gate)
	GateClusteringParameterTransformSet(gate Gate, name string, transform Transform)

	GateChildAppended(gate Gate, child Gate)
	GateChildRemoved(gate Gate, index int, child Gate)
	GateChildrenCleared(gate Gate)
	GateChildNegatedSet(gate Gate, index int, negated bool)

	GateQuadrantAppended(gate Gate, quadrantID string)
}

// GateTreesState is the observer contract for a forest. Semantics match
// GateState: one callback per mutation, fired after the change, never
// failing.
type GateTreesState interface {
	GateTreesNameSet(trees *GateTrees, name string)
	GateTreesDescriptionSet(trees *GateTrees, description string)
	GateTreesNotesSet(trees *GateTrees, notes string)
	GateTreesFileNameSet(trees *GateTrees, fileName string)
	GateTreesFCSFileNameSet(trees *GateTrees, fcsFileName string)
	GateTreesCreatorSoftwareNameSet(trees *GateTrees, creatorSoftwareName string)

	GateTreesRootAppended(trees *GateTrees, root Gate)
	GateTreesRootRemoved(trees *GateTrees, index int, root Gate)
	GateTreesRootsCleared(trees *GateTrees)
}

// NoopGateState implements GateState with empty callbacks.
type NoopGateState struct{}

var _ GateState = NoopGateState{}

func (NoopGateState) GateOriginalIDSet(Gate, string)                              {}
func (NoopGateState) GateNameSet(Gate, string)                                    {}
func (NoopGateState) GateDescriptionSet(Gate, string)                             {}
func (NoopGateState) GateNotesSet(Gate, string)                                   {}
func (NoopGateState) GateGatingMethodSet(Gate, GatingMethod)                      {}
func (NoopGateState) GateReportPrioritySet(Gate, uint32)                          {}
func (NoopGateState) GateDimensionParameterNameSet(Gate, int, string)             {}
func (NoopGateState) GateDimensionTransformSet(Gate, int, Transform)              {}
func (NoopGateState) GateClusteringParameterAppended(Gate, string, Transform)     {}
func (NoopGateState) GateClusteringParameterRemoved(Gate, string)                 {}
func (NoopGateState) GateClusteringParametersCleared(Gate)                        {}
func (NoopGateState) GateClusteringParameterTransformSet(Gate, string, Transform) {}
func (NoopGateState) GateChildAppended(Gate, Gate)                                {}
func (NoopGateState) GateChildRemoved(Gate, int, Gate)                            {}
func (NoopGateState) GateChildrenCleared(Gate)                                    {}
func (NoopGateState) GateChildNegatedSet(Gate, int, bool)                         {}
func (NoopGateState) GateQuadrantAppended(Gate, string)                           {}

// NoopGateTreesState implements GateTreesState with empty callbacks.
type NoopGateTreesState struct{}

var _ GateTreesState = NoopGateTreesState{}

func (NoopGateTreesState) GateTreesNameSet(*GateTrees, string)                {}
func (NoopGateTreesState) GateTreesDescriptionSet(*GateTrees, string)         {}
func (NoopGateTreesState) GateTreesNotesSet(*GateTrees, string)               {}
func (NoopGateTreesState) GateTreesFileNameSet(*GateTrees, string)            {}
func (NoopGateTreesState) GateTreesFCSFileNameSet(*GateTrees, string)         {}
func (NoopGateTreesState) GateTreesCreatorSoftwareNameSet(*GateTrees, string) {}
func (NoopGateTreesState) GateTreesRootAppended(*GateTrees, Gate)             {}
func (NoopGateTreesState) GateTreesRootRemoved(*GateTrees, int, Gate)         {}
func (NoopGateTreesState) GateTreesRootsCleared(*GateTrees)                   {}
