package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDirectImportViolations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.go", "package x\n\nimport \"fmt\"\n\nvar _ = fmt.Sprint\n")
	writeFile(t, dir, "dirty.go", "package x\n\nimport (\n\t\"fmt\"\n\t\"example.com/mod/internal/secret\"\n)\n\nvar _ = fmt.Sprint\nvar _ = secret.X\n")
	writeFile(t, dir, "dirty_test.go", "package x\n\nimport \"example.com/mod/internal/secret\"\n\nvar _ = secret.X\n")

	viols, err := directImportViolations(dir, InternalImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// Test files are exempt; only dirty.go counts.
	if len(viols) != 1 {
		t.Fatalf("violations = %v, want exactly one", viols)
	}
	if viols[0] != "example.com/mod/internal/secret (in dirty.go)" {
		t.Errorf("violation = %q", viols[0])
	}
}

func TestObservabilityImportForbidden(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"cytogate/pkg/metrics", true},
		{"github.com/prometheus/client_golang/prometheus", true},
		{"expvar", true},
		{"cytogate/pkg/gating", false},
		{"fmt", false},
		{"golang.org/x/sync/errgroup", false},
	}
	for _, tc := range cases {
		if got := ObservabilityImportForbidden(tc.path); got != tc.want {
			t.Errorf("ObservabilityImportForbidden(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestAssertNoDirectImportsPasses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.go", "package x\n\nimport \"fmt\"\n\nvar _ = fmt.Sprint\n")
	AssertNoDirectImports(t, dir, InternalImportForbidden, "no internal imports")
}
