package metrics

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"cytogate/pkg/gating"
)

var expvarSeq uint64

// ExpvarRecorder publishes per-operation mutation totals via expvar, for
// deployments that prefer process-local metrics without an external
// scrape target. It implements gating.GateState and gating.GateTreesState.
type ExpvarRecorder struct {
	name string
	mu   sync.Mutex
	ops  map[string]int64
}

var (
	_ gating.GateState      = (*ExpvarRecorder)(nil)
	_ gating.GateTreesState = (*ExpvarRecorder)(nil)
)

// ExpvarSnapshot captures a read-only view of the recorded totals.
type ExpvarSnapshot struct {
	Mutations  map[string]int64 `json:"mutations_total"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// NewExpvarRecorder constructs a recorder and publishes it under the
// supplied name. When name is empty, a unique identifier is generated.
func NewExpvarRecorder(name string) *ExpvarRecorder {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("gating_model_metrics_%d", id)
	}
	rec := &ExpvarRecorder{
		name: name,
		ops:  make(map[string]int64),
	}
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name associated with the recorder.
func (r *ExpvarRecorder) Name() string { return r.name }

// Snapshot returns an immutable copy of the aggregated totals.
func (r *ExpvarRecorder) Snapshot() ExpvarSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make(map[string]int64, len(r.ops))
	for op, total := range r.ops {
		ops[op] = total
	}
	return ExpvarSnapshot{
		Mutations:  ops,
		RecordedAt: time.Now().UTC(),
	}
}

func (r *ExpvarRecorder) observe(operation string) {
	r.mu.Lock()
	r.ops[operation]++
	r.mu.Unlock()
}

func (r *ExpvarRecorder) GateOriginalIDSet(gating.Gate, string) {
	r.observe(gating.OpGateOriginalIDSet)
}
func (r *ExpvarRecorder) GateNameSet(gating.Gate, string) { r.observe(gating.OpGateNameSet) }
func (r *ExpvarRecorder) GateDescriptionSet(gating.Gate, string) {
	r.observe(gating.OpGateDescriptionSet)
}
func (r *ExpvarRecorder) GateNotesSet(gating.Gate, string) { r.observe(gating.OpGateNotesSet) }
func (r *ExpvarRecorder) GateGatingMethodSet(gating.Gate, gating.GatingMethod) {
	r.observe(gating.OpGateGatingMethodSet)
}
func (r *ExpvarRecorder) GateReportPrioritySet(gating.Gate, uint32) {
	r.observe(gating.OpGateReportPrioritySet)
}
func (r *ExpvarRecorder) GateDimensionParameterNameSet(gating.Gate, int, string) {
	r.observe(gating.OpGateDimensionParameterNameSet)
}
func (r *ExpvarRecorder) GateDimensionTransformSet(gating.Gate, int, gating.Transform) {
	r.observe(gating.OpGateDimensionTransformSet)
}
func (r *ExpvarRecorder) GateClusteringParameterAppended(gating.Gate, string, gating.Transform) {
	r.observe(gating.OpGateClusteringParameterAppended)
}
func (r *ExpvarRecorder) GateClusteringParameterRemoved(gating.Gate, string) {
	r.observe(gating.OpGateClusteringParameterRemoved)
}
func (r *ExpvarRecorder) GateClusteringParametersCleared(gating.Gate) {
	r.observe(gating.OpGateClusteringParametersCleared)
}
func (r *ExpvarRecorder) GateClusteringParameterTransformSet(gating.Gate, string, gating.Transform) {
	r.observe(gating.OpGateClusteringParamTransformSet)
}
func (r *ExpvarRecorder) GateChildAppended(gating.Gate, gating.Gate) {
	r.observe(gating.OpGateChildAppended)
}
func (r *ExpvarRecorder) GateChildRemoved(gating.Gate, int, gating.Gate) {
	r.observe(gating.OpGateChildRemoved)
}
func (r *ExpvarRecorder) GateChildrenCleared(gating.Gate) {
	r.observe(gating.OpGateChildrenCleared)
}
func (r *ExpvarRecorder) GateChildNegatedSet(gating.Gate, int, bool) {
	r.observe(gating.OpGateChildNegatedSet)
}
func (r *ExpvarRecorder) GateQuadrantAppended(gating.Gate, string) {
	r.observe(gating.OpGateQuadrantAppended)
}

func (r *ExpvarRecorder) GateTreesNameSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesNameSet)
}
func (r *ExpvarRecorder) GateTreesDescriptionSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesDescriptionSet)
}
func (r *ExpvarRecorder) GateTreesNotesSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesNotesSet)
}
func (r *ExpvarRecorder) GateTreesFileNameSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesFileNameSet)
}
func (r *ExpvarRecorder) GateTreesFCSFileNameSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesFCSFileNameSet)
}
func (r *ExpvarRecorder) GateTreesCreatorSoftwareNameSet(*gating.GateTrees, string) {
	r.observe(gating.OpGateTreesCreatorSoftwareNameSet)
}
func (r *ExpvarRecorder) GateTreesRootAppended(*gating.GateTrees, gating.Gate) {
	r.observe(gating.OpGateTreesRootAppended)
}
func (r *ExpvarRecorder) GateTreesRootRemoved(*gating.GateTrees, int, gating.Gate) {
	r.observe(gating.OpGateTreesRootRemoved)
}
func (r *ExpvarRecorder) GateTreesRootsCleared(*gating.GateTrees) {
	r.observe(gating.OpGateTreesRootsCleared)
}
