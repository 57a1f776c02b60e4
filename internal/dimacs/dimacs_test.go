package dimacs

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/kael-hart/dpll/internal/sat"
)

const testCNF = `c a small test instance
p cnf 5 4
1 2 4 0
-1 2 5 0
1 -2 4 0
2 -3 4 0
`

func writeTemp(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %s", path, err)
	}
	return path
}

func TestLoadLenient_plain(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "test.cnf", []byte(testCNF))

	f, err := LoadLenient(path, false)
	if err != nil {
		t.Fatalf("LoadLenient(): want no error, got %s", err)
	}
	if f.N != 5 {
		t.Errorf("N = %d, want 5", f.N)
	}
	if len(f.Clauses) != 4 {
		t.Errorf("len(Clauses) = %d, want 4", len(f.Clauses))
	}
}

func TestLoadLenient_gzip(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(testCNF)); err != nil {
		t.Fatalf("gzip.Write: %s", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip.Close: %s", err)
	}
	path := writeTemp(t, dir, "test.cnf.gz", buf.Bytes())

	f, err := LoadLenient(path, true)
	if err != nil {
		t.Fatalf("LoadLenient(): want no error, got %s", err)
	}
	if f.N != 5 {
		t.Errorf("N = %d, want 5", f.N)
	}
}

func TestLoadLenient_noFile(t *testing.T) {
	if _, err := LoadLenient(filepath.Join(t.TempDir(), "missing.cnf"), false); err == nil {
		t.Error("LoadLenient(): want error, got none")
	}
}

func TestLoadLenient_notGzip(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "test.cnf", []byte(testCNF))

	if _, err := LoadLenient(path, true); err == nil {
		t.Error("LoadLenient(): want error, got none")
	}
}

func TestLoadLenient_toleratesClauseCountMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "test.cnf", []byte("p cnf 2 100\n1 2 0\n"))

	f, err := LoadLenient(path, false)
	if err != nil {
		t.Fatalf("LoadLenient(): want no error in lenient mode, got %s", err)
	}
	if len(f.Clauses) != 1 {
		t.Errorf("len(Clauses) = %d, want 1", len(f.Clauses))
	}
}

func TestLoadLenient_tautologyDropped(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "test.cnf", []byte("p cnf 2 2\n1 -1 0\n2 0\n"))

	f, err := LoadLenient(path, false)
	if err != nil {
		t.Fatalf("LoadLenient(): want no error, got %s", err)
	}
	if len(f.Clauses) != 1 {
		t.Errorf("len(Clauses) = %d, want 1 (tautology dropped)", len(f.Clauses))
	}
	if f.Value(1) != sat.Unassigned {
		t.Errorf("variable 1 should be left unconstrained by the dropped tautology")
	}
}
