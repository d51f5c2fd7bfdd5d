package gating_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cytogate/pkg/gating"
)

func TestChangeLogRecordsGateMutations(t *testing.T) {
	log := gating.NewChangeLog()
	g := mustRectangle(t, []float64{0}, []float64{10})
	g.SetState(log)

	tf, err := gating.NewLinearTransform(262144, 0)
	if err != nil {
		t.Fatalf("new linear: %v", err)
	}

	g.SetName("lymphocytes")
	if err := g.SetDimensionParameterName(0, "FSC-A"); err != nil {
		t.Fatalf("set parameter name: %v", err)
	}
	if err := g.SetDimensionTransform(0, tf); err != nil {
		t.Fatalf("set transform: %v", err)
	}
	g.SetGatingMethod(gating.GatingMethodClusterCentroid)

	changes := log.Changes()
	wantOps := []string{
		gating.OpGateNameSet,
		gating.OpGateDimensionParameterNameSet,
		gating.OpGateDimensionTransformSet,
		gating.OpGateGatingMethodSet,
	}
	var gotOps []string
	for _, c := range changes {
		gotOps = append(gotOps, c.Operation)
		if c.GateID != g.ID() {
			t.Errorf("%s: gate id = %d, want %d", c.Operation, c.GateID, g.ID())
		}
	}
	if diff := cmp.Diff(wantOps, gotOps); diff != "" {
		t.Fatalf("operation sequence mismatch (-want +got):\n%s", diff)
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(changes[0].Payload, &named); err != nil {
		t.Fatalf("decode name payload: %v", err)
	}
	if named.Name != "lymphocytes" {
		t.Errorf("name payload = %q", named.Name)
	}

	var dimTf struct {
		Dimension   int   `json:"dimension"`
		TransformID int64 `json:"transform_id"`
	}
	if err := json.Unmarshal(changes[2].Payload, &dimTf); err != nil {
		t.Fatalf("decode transform payload: %v", err)
	}
	if dimTf.Dimension != 0 || dimTf.TransformID != tf.ID() {
		t.Errorf("transform payload = %+v", dimTf)
	}
}

func TestChangeLogRecordsForestMutations(t *testing.T) {
	log := gating.NewChangeLog()
	trees := gating.NewGateTrees()
	trees.SetState(log)

	root := mustCustomGate(t, 1)
	trees.SetName("panel A")
	if err := trees.AppendRoot(root); err != nil {
		t.Fatalf("append root: %v", err)
	}
	if err := trees.RemoveRootAt(0); err != nil {
		t.Fatalf("remove root: %v", err)
	}

	changes := log.Changes()
	wantOps := []string{
		gating.OpGateTreesNameSet,
		gating.OpGateTreesRootAppended,
		gating.OpGateTreesRootRemoved,
	}
	var gotOps []string
	for _, c := range changes {
		gotOps = append(gotOps, c.Operation)
		// Forest-level records carry no gate identity of their own.
		if c.GateID != 0 {
			t.Errorf("%s: gate id = %d, want 0", c.Operation, c.GateID)
		}
	}
	if diff := cmp.Diff(wantOps, gotOps); diff != "" {
		t.Fatalf("operation sequence mismatch (-want +got):\n%s", diff)
	}

	var appended struct {
		RootID int64 `json:"root_id"`
	}
	if err := json.Unmarshal(changes[1].Payload, &appended); err != nil {
		t.Fatalf("decode root payload: %v", err)
	}
	if appended.RootID != root.ID() {
		t.Errorf("root payload id = %d, want %d", appended.RootID, root.ID())
	}
}

func TestChangeLogNilTransformRecordsZeroID(t *testing.T) {
	log := gating.NewChangeLog()
	g := mustRectangle(t, []float64{0}, []float64{10})
	tf, _ := gating.NewLinearTransform(262144, 0)
	if err := g.SetDimensionTransform(0, tf); err != nil {
		t.Fatalf("set transform: %v", err)
	}
	g.SetState(log)
	if err := g.SetDimensionTransform(0, nil); err != nil {
		t.Fatalf("clear transform: %v", err)
	}

	changes := log.Changes()
	if len(changes) != 1 {
		t.Fatalf("recorded %d changes, want 1", len(changes))
	}
	var payload struct {
		TransformID int64 `json:"transform_id"`
	}
	if err := json.Unmarshal(changes[0].Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.TransformID != 0 {
		t.Errorf("cleared transform id = %d, want 0", payload.TransformID)
	}
}

func TestChangeLogReset(t *testing.T) {
	log := gating.NewChangeLog()
	g := mustCustomGate(t, 1)
	g.SetState(log)
	g.SetName("a")
	g.SetName("b")
	if log.Len() != 2 {
		t.Fatalf("len = %d, want 2", log.Len())
	}
	log.Reset()
	if log.Len() != 0 {
		t.Fatalf("len after reset = %d", log.Len())
	}
}
