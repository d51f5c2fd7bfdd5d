package metrics

import (
	"expvar"
	"testing"

	"cytogate/pkg/gating"
)

func TestExpvarRecorderSnapshots(t *testing.T) {
	rec := NewExpvarRecorder("")
	gate, err := gating.NewCustomGate(1)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	gate.SetState(rec)
	trees := gating.NewGateTrees()
	trees.SetState(rec)

	gate.SetName("lymphocytes")
	gate.SetName("renamed")
	if err := trees.AppendRoot(gate); err != nil {
		t.Fatalf("append root: %v", err)
	}

	snap := rec.Snapshot()
	if got := snap.Mutations[gating.OpGateNameSet]; got != 2 {
		t.Errorf("%s = %d, want 2", gating.OpGateNameSet, got)
	}
	if got := snap.Mutations[gating.OpGateTreesRootAppended]; got != 1 {
		t.Errorf("%s = %d, want 1", gating.OpGateTreesRootAppended, got)
	}
	if snap.RecordedAt.IsZero() {
		t.Error("snapshot carries no timestamp")
	}

	// Snapshots are copies; mutating one must not reach the recorder.
	snap.Mutations[gating.OpGateNameSet] = 100
	if got := rec.Snapshot().Mutations[gating.OpGateNameSet]; got != 2 {
		t.Errorf("snapshot mutation leaked into recorder: %d", got)
	}
}

func TestExpvarRecorderPublishes(t *testing.T) {
	rec := NewExpvarRecorder("")
	if rec.Name() == "" {
		t.Fatal("empty generated name")
	}
	if v := expvar.Get(rec.Name()); v == nil {
		t.Fatalf("recorder %q not published", rec.Name())
	}

	// Generated names are unique across recorders.
	other := NewExpvarRecorder("")
	if other.Name() == rec.Name() {
		t.Errorf("generated names collide: %q", rec.Name())
	}
}
