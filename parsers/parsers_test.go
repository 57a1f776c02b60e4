package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kael-hart/dpll/internal/sat"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	return path
}

func TestLoadStrict_plain(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "test.cnf", "c comment\np cnf 3 2\n1 2 0\n-2 3 0\n")

	f, err := LoadStrict(path, false)
	if err != nil {
		t.Fatalf("LoadStrict(): %s", err)
	}
	if f.N != 3 {
		t.Errorf("N = %d, want 3", f.N)
	}
	if len(f.Clauses) != 2 {
		t.Errorf("len(Clauses) = %d, want 2", len(f.Clauses))
	}
}

func TestLoadStrict_clauseCountMismatchIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "test.cnf", "p cnf 2 5\n1 2 0\n")

	if _, err := LoadStrict(path, false); err == nil {
		t.Error("LoadStrict(): want error on clause count mismatch in strict mode")
	}
}

func TestLoadStrict_tautologyDropped(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "test.cnf", "p cnf 2 2\n1 -1 0\n2 0\n")

	f, err := LoadStrict(path, false)
	if err != nil {
		t.Fatalf("LoadStrict(): %s", err)
	}
	if len(f.Clauses) != 1 {
		t.Errorf("len(Clauses) = %d, want 1 (tautology dropped)", len(f.Clauses))
	}
	if f.Value(1) != sat.Unassigned {
		t.Error("variable 1 should be left unconstrained by the dropped tautology")
	}
}

func TestLoadStrict_noFile(t *testing.T) {
	if _, err := LoadStrict(filepath.Join(t.TempDir(), "missing.cnf"), false); err == nil {
		t.Error("LoadStrict(): want error for a missing file")
	}
}

func TestReadModels(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "models.txt", "1 -2 3 0\n-1 2 -3 0\n")

	models, err := ReadModels(path)
	if err != nil {
		t.Fatalf("ReadModels(): %s", err)
	}
	if len(models) != 2 {
		t.Fatalf("len(models) = %d, want 2", len(models))
	}
	want := []bool{true, false, true}
	for i, b := range want {
		if models[0][i] != b {
			t.Errorf("models[0][%d] = %v, want %v", i, models[0][i], b)
		}
	}
}
