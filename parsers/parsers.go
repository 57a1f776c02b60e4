// Package parsers implements the strict-mode DIMACS CNF reader (spec.md
// §6.1): it drives the external github.com/rhartert/dimacs reader and then
// checks that the problem line's declared clause count matches the clauses
// actually read, treating any deviation as fatal. This is the
// counterpart to the lenient-mode reader in internal/dimacs, which tolerates
// exactly that mismatch.
package parsers

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/kael-hart/dpll/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sat.ErrFileNotFound, err)
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", sat.ErrFileUnreadable, err)
		}
	}
	return rc, nil
}

// LoadStrict parses the DIMACS CNF file at filename into a new formula,
// failing on any mismatch between the problem line's declared clause count
// and the number of clauses actually read (spec.md §6.1 strict mode).
func LoadStrict(filename string, gzipped bool) (*sat.Formula, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, formatReadErr(err)
	}
	if b.formula == nil {
		return nil, sat.NewFormatError(sat.FormatMissingProblemLine, "")
	}
	if b.nClauses != b.wantClauses {
		return nil, sat.NewFormatError(
			sat.FormatClauseCountMismatch,
			fmt.Sprintf("declared %d, read %d", b.wantClauses, b.nClauses),
		)
	}
	return b.formula, nil
}

// formatReadErr wraps an error surfaced by dimacs.ReadBuilder, which reports
// malformed input as a plain error rather than one of sat's FormatSubkind
// values. Since the Builder callbacks below already return sat.FormatError
// for every case they can detect, anything reaching here is a lower-level
// tokenizing failure internal to the dimacs package.
func formatReadErr(err error) error {
	var fe *sat.FormatError
	if errors.As(err, &fe) {
		return fe
	}
	return sat.NewFormatError(sat.FormatMalformedProblemLine, err.Error())
}

// formulaBuilder implements dimacs.Builder, feeding the problem line and
// clauses it is handed directly into a *sat.Formula (mirroring the teacher's
// builder in spirit, but constructing the formula itself instead of
// delegating to a caller-supplied SATSolver, since N is known as soon as the
// problem line arrives).
type formulaBuilder struct {
	formula     *sat.Formula
	wantClauses int
	nClauses    int
}

func (b *formulaBuilder) Problem(problem string, nVars int, nClauses int) error {
	if b.formula != nil {
		return sat.NewFormatError(sat.FormatDuplicateProblemLine, problem)
	}
	if problem != "cnf" {
		return sat.NewFormatError(sat.FormatMalformedProblemLine, problem)
	}
	b.formula = sat.NewFormula(nVars)
	b.wantClauses = nClauses
	return nil
}

func (b *formulaBuilder) Clause(tmpClause []int) error {
	if b.formula == nil {
		return sat.NewFormatError(sat.FormatMissingProblemLine, "")
	}
	if len(tmpClause) == 0 {
		return sat.NewFormatError(sat.FormatEmptyClause, "")
	}

	literals := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l == 0 || l < -b.formula.N || l > b.formula.N {
			return sat.NewFormatError(sat.FormatLiteralOutOfRange, fmt.Sprintf("%d", l))
		}
		literals[i] = sat.Literal(l)
	}

	b.nClauses++
	return b.formula.AddClause(literals)
}

func (b *formulaBuilder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// model file — one []bool per line, true meaning the variable at that
// position is assigned true. No test in this repository compares solver
// models against a model file; ReadModels is exercised by its own unit test.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// modelBuilder implements dimacs.Builder to collect model lines; it rejects
// problem lines since model files never carry one.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
