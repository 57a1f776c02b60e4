package sat

import "strings"

// Clause is an ordered sequence of literals. Order carries no semantics
// beyond iteration stability (spec.md §3).
type Clause struct {
	literals []Literal
}

// newClause builds a Clause from tmpLiterals, collapsing duplicate literals
// and rejecting tautologies at ingest (spec.md §3, §4.1). The returned bool
// is false if the clause is a tautology and must not be stored. tmpLiterals
// is consumed by copy; the caller's slice is left untouched so it can be
// reused as scratch space, mirroring the teacher's NewClause in
// internal/sat/clauses.go.
func newClause(tmpLiterals []Literal) (*Clause, bool) {
	seen := make(map[Literal]bool, len(tmpLiterals))
	lits := make([]Literal, 0, len(tmpLiterals))

	for _, l := range tmpLiterals {
		if seen[l.Negate()] {
			return nil, false // tautology: drop the whole clause
		}
		if seen[l] {
			continue // duplicate literal, collapse
		}
		seen[l] = true
		lits = append(lits, l)
	}

	return &Clause{literals: lits}, true
}

// Literals returns the clause's literals. The caller must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Satisfied reports whether some literal of c evaluates to true under the
// given assignment (spec.md §4.1).
func (c *Clause) Satisfied(assign []Value) bool {
	for _, l := range c.literals {
		if l.value(assign[l.Var()]) == True {
			return true
		}
	}
	return false
}

// Conflicting reports whether every literal of c evaluates to false under
// the given assignment (spec.md §4.1).
func (c *Clause) Conflicting(assign []Value) bool {
	for _, l := range c.literals {
		if l.value(assign[l.Var()]) != False {
			return false
		}
	}
	return true
}

// Unit reports whether c is not satisfied, has exactly one unassigned
// literal, and every other literal is false; it returns that literal
// (spec.md §4.1).
func (c *Clause) Unit(assign []Value) (Literal, bool) {
	var unit Literal
	nUnassigned := 0

	for _, l := range c.literals {
		switch l.value(assign[l.Var()]) {
		case True:
			return 0, false // satisfied
		case Unassigned:
			nUnassigned++
			if nUnassigned > 1 {
				return 0, false
			}
			unit = l
		}
	}

	return unit, nUnassigned == 1
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
