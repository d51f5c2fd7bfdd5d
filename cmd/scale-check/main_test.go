package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cytogate/pkg/gating"
)

func TestRunPrintsReferenceTable(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "logicle", 262144, 0.5, 4.5, 0, 8); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// One header plus steps+1 rows.
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "# logicle T=262144") {
		t.Errorf("header = %q", lines[0])
	}
	for _, line := range lines[1:] {
		if len(strings.Fields(line)) != 2 {
			t.Errorf("malformed row %q", line)
		}
	}
}

func TestRunValidation(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "logicle", 262144, 0.5, 4.5, 0, 0); err == nil {
		t.Error("steps=0 accepted")
	}
	if err := run(&buf, "unheard-of", 262144, 0.5, 4.5, 0, 4); err == nil {
		t.Error("unknown kind accepted")
	}
	if err := run(&buf, "logicle", -1, 0.5, 4.5, 0, 4); !errors.Is(err, gating.ErrInvalidArgument) {
		t.Errorf("bad parameters err = %v, want ErrInvalidArgument", err)
	}
}

func TestBuildTransformKinds(t *testing.T) {
	for _, kind := range []string{"linear", "log", "inverse_hyperbolic_sine", "logicle"} {
		tf, err := buildTransform(kind, 262144, 0.5, 4.5, 0)
		if err != nil {
			t.Fatalf("build %s: %v", kind, err)
		}
		if string(tf.Kind()) != kind {
			t.Errorf("kind = %q, want %q", tf.Kind(), kind)
		}
	}
}
