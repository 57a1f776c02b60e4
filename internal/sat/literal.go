package sat

import "fmt"

// Literal is a nonzero signed integer: its absolute value names a variable in
// [1, N], its sign the polarity. The zero value never denotes a literal; it
// is reserved on input as a clause terminator.
type Literal int

// Var returns the variable named by l, irrespective of polarity.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l asserts its variable rather than its negation.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

// value returns the Value l evaluates to when its variable is assigned v.
func (l Literal) value(v Value) Value {
	if v == Unassigned {
		return Unassigned
	}
	if l.IsPositive() {
		return v
	}
	return v.Negate()
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}
