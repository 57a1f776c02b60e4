package sat

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec.md §7. Callers wrap these with
// fmt.Errorf("...: %w", err) the way the teacher wraps os.Open/scanner
// failures in internal/dimacs/dimacs.go, so errors.Is still matches.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileUnreadable    = errors.New("file unreadable")
	ErrOutOfMemory       = errors.New("out of memory")
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// FormatSubkind enumerates the malformed-input cases spec.md §6.1 and §7
// distinguish.
type FormatSubkind int

const (
	FormatMissingProblemLine FormatSubkind = iota
	FormatDuplicateProblemLine
	FormatMalformedProblemLine
	FormatNonIntegerToken
	FormatLiteralOutOfRange
	FormatClauseNotTerminated
	FormatEmptyClause
	FormatClauseCountMismatch
)

func (k FormatSubkind) String() string {
	switch k {
	case FormatMissingProblemLine:
		return "missing problem line"
	case FormatDuplicateProblemLine:
		return "duplicate problem line"
	case FormatMalformedProblemLine:
		return "malformed problem line"
	case FormatNonIntegerToken:
		return "non-integer token"
	case FormatLiteralOutOfRange:
		return "literal out of range"
	case FormatClauseNotTerminated:
		return "clause not terminated"
	case FormatEmptyClause:
		return "empty clause"
	case FormatClauseCountMismatch:
		return "clause count mismatch"
	default:
		return "unknown format error"
	}
}

// FormatError reports a malformed DIMACS CNF input (spec.md §6.1).
type FormatError struct {
	Subkind FormatSubkind
	Detail  string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("format error: %s", e.Subkind)
	}
	return fmt.Sprintf("format error: %s: %s", e.Subkind, e.Detail)
}

// NewFormatError builds a FormatError with the given subkind and detail.
func NewFormatError(k FormatSubkind, detail string) *FormatError {
	return &FormatError{Subkind: k, Detail: detail}
}
