package sat

import (
	"math/rand/v2"

	"github.com/rhartert/yagh"
)

// Strategy names the four decision heuristics of spec.md §4.4.
type Strategy int

const (
	StrategyFirstUnassigned Strategy = iota
	StrategyMostFrequent
	StrategyJeroslowWang
	StrategyRandom
)

func (s Strategy) String() string {
	switch s {
	case StrategyFirstUnassigned:
		return "first"
	case StrategyMostFrequent:
		return "frequent"
	case StrategyJeroslowWang:
		return "jw"
	case StrategyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Heuristic selects the next unassigned variable to branch on. All four
// strategies scan only currently Unassigned variables and return 0 — the
// sentinel for "none left" — once every variable is assigned (spec.md
// §4.4).
type Heuristic interface {
	Select(f *Formula) int
}

// unassignNotifiee is implemented by heuristics that must be told when a
// variable becomes Unassigned again (i.e. on backtrack), so they can make it
// a candidate again. Only FirstUnassigned needs this: it is the only
// strategy backed by a persistent structure rather than a per-call scan.
type unassignNotifiee interface {
	notifyUnassigned(v int)
}

// NewHeuristic builds the Heuristic for the given strategy, bound to a
// formula with n variables. seed configures StrategyRandom; it is ignored
// by the other strategies.
func NewHeuristic(s Strategy, n int, seed uint64) Heuristic {
	switch s {
	case StrategyFirstUnassigned:
		return newFirstUnassigned(n)
	case StrategyMostFrequent:
		return &mostFrequent{}
	case StrategyJeroslowWang:
		return &jeroslowWang{}
	case StrategyRandom:
		return newRandomHeuristic(seed)
	default:
		return newFirstUnassigned(n)
	}
}

// notifyUnassigned forwards a backtrack-driven unassignment to h if it cares
// (only FirstUnassigned does). Called by the solver's Assigner wrapper.
func notifyUnassigned(h Heuristic, v int) {
	if n, ok := h.(unassignNotifiee); ok {
		n.notifyUnassigned(v)
	}
}

// firstUnassigned implements strategy 1: the smallest unassigned variable
// index, deterministic. Rather than rescanning [1, N] on every decision, it
// keeps unassigned candidates in a min-heap keyed by variable id (priority
// equals the id itself), adapted from the teacher's activity-ordered
// VarOrder (internal/sat/ordering.go) but with a fixed priority instead of
// a bumped activity score. Entries are popped lazily: a variable that was
// assigned by propagation rather than by Select is only discarded from the
// heap the next time it is popped, exactly as the teacher's NextDecision
// discards stale entries. Re-assignability on backtrack is restored via
// notifyUnassigned, mirroring the teacher's order.Undo/Reinsert.
type firstUnassigned struct {
	heap *yagh.IntMap[int]
}

func newFirstUnassigned(n int) *firstUnassigned {
	h := yagh.New[int](0)
	h.GrowBy(n + 1) // ids 0..n; 0 is never put
	for v := 1; v <= n; v++ {
		h.Put(v, v)
	}
	return &firstUnassigned{heap: h}
}

func (fu *firstUnassigned) Select(f *Formula) int {
	for {
		e, ok := fu.heap.Pop()
		if !ok {
			return 0
		}
		v := e.Elem
		if f.Value(v) == Unassigned {
			return v
		}
		// Stale: v was assigned by propagation/elimination since it was
		// inserted. Drop it; notifyUnassigned will bring it back if it's
		// ever unassigned again.
	}
}

func (fu *firstUnassigned) notifyUnassigned(v int) {
	fu.heap.Put(v, v)
}

// mostFrequent implements strategy 2: the unassigned variable maximizing
// occ+(v) + occ-(v) over clauses that are not currently satisfied, ties
// broken by smallest index (spec.md §4.4). Scores are recomputed from
// scratch on every call — per spec.md's Design Notes, cached hints are
// optional and correctness must never depend on their freshness, and here
// the set of "not currently satisfied" clauses changes on every
// assign/unassign, so a fresh linear pass is the simplest correct choice.
type mostFrequent struct{}

func (mostFrequent) Select(f *Formula) int {
	occ := make([]int, f.N+1)
	assign := f.Assignment()

	for _, c := range f.Clauses {
		if c.Satisfied(assign) {
			continue
		}
		for _, l := range c.Literals() {
			occ[l.Var()]++
		}
	}

	return bestScoring(f, occ)
}

// jeroslowWang implements strategy 3: the unassigned variable maximizing
// Σ 2^-|C| over not-currently-satisfied clauses containing it in either
// polarity, ties broken by smallest index (spec.md §4.4).
type jeroslowWang struct{}

func (jeroslowWang) Select(f *Formula) int {
	score := make([]float64, f.N+1)
	assign := f.Assignment()

	for _, c := range f.Clauses {
		if c.Satisfied(assign) {
			continue
		}
		w := 1.0
		for i := 0; i < c.Len(); i++ {
			w /= 2
		}
		for _, l := range c.Literals() {
			score[l.Var()] += w
		}
	}

	return bestScoringFloat(f, score)
}

// bestScoring returns the unassigned variable with the largest integer
// score, ties broken by smallest index. Shared by mostFrequent.
func bestScoring(f *Formula, score []int) int {
	best, bestScore := 0, -1
	for v := 1; v <= f.N; v++ {
		if f.Value(v) != Unassigned {
			continue
		}
		if score[v] > bestScore {
			best, bestScore = v, score[v]
		}
	}
	return best
}

// bestScoringFloat is bestScoring's float64 counterpart, used by
// jeroslowWang.
func bestScoringFloat(f *Formula, score []float64) int {
	best := 0
	bestScore := -1.0
	for v := 1; v <= f.N; v++ {
		if f.Value(v) != Unassigned {
			continue
		}
		if score[v] > bestScore {
			best, bestScore = v, score[v]
		}
	}
	return best
}

// randomHeuristic implements strategy 4: a uniform random pick among
// unassigned variables, using a solver-owned deterministic PRNG seeded from
// configuration or, failing that, wall time (spec.md §4.4, Design Notes).
// No ecosystem RNG library appears anywhere in the retrieved corpus, so this
// is the one component of the decision stack built directly on the standard
// library (math/rand/v2) — see DESIGN.md.
type randomHeuristic struct {
	rng *rand.Rand
}

func newRandomHeuristic(seed uint64) *randomHeuristic {
	return &randomHeuristic{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *randomHeuristic) Select(f *Formula) int {
	chosen := 0
	seen := 0
	assign := f.Assignment()
	for v := 1; v <= f.N; v++ {
		if assign[v] != Unassigned {
			continue
		}
		seen++
		if seen == 1 || r.rng.IntN(seen) == 0 {
			chosen = v
		}
	}
	return chosen
}
