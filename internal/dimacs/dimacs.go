// Package dimacs implements the lenient-mode DIMACS CNF reader (spec.md
// §6.1): a hand-rolled bufio.Scanner-based parser that tolerates a
// mismatched clause count instead of treating it as fatal. This is one of
// two DIMACS front ends this repository carries, the other being the
// strict-mode parser in the root parsers package built on the external
// github.com/rhartert/dimacs library, which enforces the count exactly.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

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

// LoadLenient parses the DIMACS CNF file at filename into a new formula,
// tolerating a clause count on the problem line that does not match the
// number of clause lines actually present (spec.md §6.1 lenient mode).
// Tautological clauses are dropped and duplicate literals within a clause
// collapsed, same as strict mode. Two things differ: the clause count is not
// checked, and an empty clause is dropped here instead of being rejected.
func LoadLenient(filename string, gzipped bool) (*sat.Formula, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var formula *sat.Formula
	litBuf := make([]sat.Literal, 0, 32)
	foundProblemLine := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue // comment
		case 'p':
			if foundProblemLine {
				return nil, sat.NewFormatError(sat.FormatDuplicateProblemLine, line)
			}
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return nil, sat.NewFormatError(sat.FormatMalformedProblemLine, line)
			}
			nVars, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, sat.NewFormatError(sat.FormatMalformedProblemLine, line)
			}
			formula = sat.NewFormula(nVars)
			foundProblemLine = true
		default:
			if !foundProblemLine {
				return nil, sat.NewFormatError(sat.FormatMissingProblemLine, line)
			}
			litBuf = litBuf[:0]
			terminated := false
			for _, p := range strings.Fields(line) {
				n, err := strconv.Atoi(p)
				if err != nil {
					return nil, sat.NewFormatError(sat.FormatNonIntegerToken, p)
				}
				if n == 0 {
					terminated = true
					break
				}
				if n < -formula.N || n > formula.N {
					return nil, sat.NewFormatError(sat.FormatLiteralOutOfRange, p)
				}
				litBuf = append(litBuf, sat.Literal(n))
			}
			if !terminated {
				return nil, sat.NewFormatError(sat.FormatClauseNotTerminated, line)
			}
			if len(litBuf) == 0 {
				continue // lenient mode: drop, don't fail, on an empty clause
			}
			if err := formula.AddClause(litBuf); err != nil {
				return nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", sat.ErrFileUnreadable, err)
	}
	if !foundProblemLine {
		return nil, sat.NewFormatError(sat.FormatMissingProblemLine, "")
	}

	return formula, nil
}
