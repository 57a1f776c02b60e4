package sat

import "testing"

func newTestAssigner(f *Formula) *Assigner {
	return NewAssigner(f, NewTrail(f.N))
}

func TestUnitPropagate_chain(t *testing.T) {
	f := NewFormula(3)
	f.AddClause([]Literal{1})
	f.AddClause([]Literal{-1, 2})
	f.AddClause([]Literal{-2, 3})
	a := newTestAssigner(f)

	outcome, n := UnitPropagate(f, a)
	if outcome != Fixed {
		t.Fatalf("UnitPropagate() outcome = %v, want Fixed", outcome)
	}
	if n != 3 {
		t.Errorf("UnitPropagate() pushes = %d, want 3", n)
	}
	if f.Value(1) != True || f.Value(2) != True || f.Value(3) != True {
		t.Errorf("assignment = %v, %v, %v, want all true", f.Value(1), f.Value(2), f.Value(3))
	}
}

func TestUnitPropagate_conflict(t *testing.T) {
	f := NewFormula(1)
	f.AddClause([]Literal{1})
	f.AddClause([]Literal{-1})
	a := newTestAssigner(f)

	outcome, _ := UnitPropagate(f, a)
	if outcome != Conflict {
		t.Fatalf("UnitPropagate() outcome = %v, want Conflict", outcome)
	}
}

func TestUnitPropagate_idempotentAtFixedPoint(t *testing.T) {
	f := NewFormula(2)
	f.AddClause([]Literal{1})
	f.AddClause([]Literal{2})
	a := newTestAssigner(f)

	if _, n := UnitPropagate(f, a); n != 2 {
		t.Fatalf("first pass pushes = %d, want 2", n)
	}
	outcome, n := UnitPropagate(f, a)
	if outcome != Fixed || n != 0 {
		t.Errorf("second pass = (%v, %d), want (Fixed, 0): propagation must be idempotent at a fixed point", outcome, n)
	}
}

func TestPureLiteralEliminate_assignsPureVariable(t *testing.T) {
	f := NewFormula(2)
	f.AddClause([]Literal{1, 2})
	f.AddClause([]Literal{1, -2})
	a := newTestAssigner(f)
	pos, neg := newResetSet(f.N), newResetSet(f.N)

	outcome, n := PureLiteralEliminate(f, a, pos, neg)
	if outcome != Fixed {
		t.Fatalf("PureLiteralEliminate() outcome = %v, want Fixed", outcome)
	}
	if n != 1 {
		t.Fatalf("PureLiteralEliminate() pushes = %d, want 1", n)
	}
	if f.Value(1) != True {
		t.Errorf("variable 1 (pure positive) = %s, want true", f.Value(1))
	}
	if f.Value(2) != Unassigned {
		t.Errorf("variable 2 (mixed polarity) = %s, want unassigned", f.Value(2))
	}
}

func TestPureLiteralEliminate_noopOnceSatisfied(t *testing.T) {
	f := NewFormula(2)
	f.AddClause([]Literal{1, 2})
	a := newTestAssigner(f)
	a.Assign(1, True, true)
	a.Assign(2, False, false)

	pos, neg := newResetSet(f.N), newResetSet(f.N)
	_, n := PureLiteralEliminate(f, a, pos, neg)
	if n != 0 {
		t.Errorf("PureLiteralEliminate() on an already-satisfied clause set pushed %d, want 0", n)
	}
}
