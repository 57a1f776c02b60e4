package sat

import "time"

// Status is the solver's terminal verdict.
type Status int

const (
	StatusUnknown Status = iota
	StatusSAT
	StatusUNSAT
)

func (s Status) String() string {
	switch s {
	case StatusSAT:
		return "SATISFIABLE"
	case StatusUNSAT:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Config configures a solve. Following the Design Notes' resolution of the
// source's silent-override behavior, a zero Timeout or MaxDecisions means
// unlimited — it is never implicitly replaced with a default budget.
type Config struct {
	Strategy Strategy

	// Timeout is the wall-clock deadline for the whole solve. Zero means no
	// deadline.
	Timeout time.Duration

	// MaxDecisions caps the number of branching decisions. Zero means no
	// cap.
	MaxDecisions int64

	// Seed, when SeedSet, seeds StrategyRandom deterministically. Otherwise
	// the random heuristic seeds itself from wall time.
	Seed    uint64
	SeedSet bool

	// DisablePropagation and DisablePureLiteral turn off the two
	// simplification passes of the main loop (spec.md §4.6 steps 4-5).
	// Both default to enabled (false); they exist mainly so tests can
	// isolate the bare DPLL splitting rule from the engine's eager
	// inference.
	DisablePropagation bool
	DisablePureLiteral bool

	// EnableRestarts turns on the restart policy of spec.md §4.6. Restarts
	// preserve no learned information in this design — they are a pure
	// search-space escape, mirroring the teacher's TotalRestarts counter
	// without any of the clause-learning machinery that makes a CDCL
	// restart valuable.
	EnableRestarts   bool
	RestartThreshold int64
}

// Result bundles the solver's verdict with the decoded model (valid only
// when Status == StatusSAT) and its search statistics.
type Result struct {
	Status Status
	Model  []Value // index 1..N; index 0 unused

	Decisions    int64
	Propagations int64
	Eliminations int64
	Conflicts    int64
	Restarts     int64
	Backtracks   int64
	Elapsed      time.Duration
}

// Solver runs the chronological DPLL search of spec.md §4.6 over a Formula.
// The solver owns the trail and the configuration; it mutates but does not
// own the formula's assignment vector for the duration of Solve (spec.md
// §3 Ownership and lifecycle).
type Solver struct {
	f         *Formula
	cfg       Config
	trail     *Trail
	asg       *Assigner
	heuristic Heuristic

	posSeen *resetSet
	negSeen *resetSet

	startTime time.Time

	decisions             int64
	propagations          int64
	eliminations          int64
	conflicts             int64
	restarts              int64
	backtracks            int64
	conflictsSinceRestart int64
}

// NewSolver returns a solver bound to f with the given configuration.
func NewSolver(f *Formula, cfg Config) *Solver {
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	trail := NewTrail(f.N)
	return &Solver{
		f:         f,
		cfg:       cfg,
		trail:     trail,
		asg:       NewAssigner(f, trail),
		heuristic: NewHeuristic(cfg.Strategy, f.N, seed),
		posSeen:   newResetSet(f.N),
		negSeen:   newResetSet(f.N),
	}
}

// unassign pops the trail's top entry, clears its slot, and tells the
// heuristic the variable is a candidate again (spec.md §9 — assignment
// vector and trail are one structure; the heuristic's candidate pool is
// kept in sync the same way).
func (s *Solver) unassign() Entry {
	e := s.asg.Unassign()
	notifyUnassigned(s.heuristic, e.Var)
	return e
}

// backtrackTo pops entries until the last remaining entry has level <= L
// (spec.md §4.3), keeping the heuristic's candidate pool in sync.
func (s *Solver) backtrackTo(level int) {
	for {
		last, ok := s.trail.Last()
		if !ok || last.Level <= level {
			return
		}
		s.unassign()
	}
}

// preprocess runs unit propagation and pure-literal elimination to a fixed
// point at decision level 0, before the main loop starts (spec.md §4.6).
func (s *Solver) preprocess() Outcome {
	for {
		pr, n1 := UnitPropagate(s.f, s.asg)
		s.propagations += int64(n1)
		if pr == Conflict {
			return Conflict
		}

		er, n2 := PureLiteralEliminate(s.f, s.asg, s.posSeen, s.negSeen)
		s.eliminations += int64(n2)
		if er == Conflict {
			return Conflict
		}

		if n1 == 0 && n2 == 0 {
			return Fixed
		}
	}
}

// backtrack performs chronological backtracking (spec.md §4.6): it finds
// the most recent decision, undoes everything back through it, and
// re-applies the decision with its value flipped — still marked as a
// decision, so a later conflict can backtrack through it again. It reports
// false if there was no decision left to undo (the formula is UNSAT).
func (s *Solver) backtrack() bool {
	if s.trail.lastDecisionIndex() == -1 {
		return false
	}

	var decision Entry
	for {
		e := s.unassign()
		if e.IsDecision {
			decision = e
			break
		}
	}

	s.asg.Assign(decision.Var, decision.Value.Negate(), true)
	return true
}

// maybeRestart applies the restart policy of spec.md §4.6: if enabled and
// the conflict count since the last restart has reached the threshold, pop
// to decision level 0 and reset the counter.
func (s *Solver) maybeRestart() {
	if !s.cfg.EnableRestarts {
		return
	}
	if s.conflictsSinceRestart < s.cfg.RestartThreshold {
		return
	}
	s.backtrackTo(0)
	s.conflictsSinceRestart = 0
	s.restarts++
}

func (s *Solver) budgetExhausted() bool {
	if s.cfg.Timeout > 0 && time.Since(s.startTime) >= s.cfg.Timeout {
		return true
	}
	if s.cfg.MaxDecisions > 0 && s.decisions >= s.cfg.MaxDecisions {
		return true
	}
	return false
}

// Solve runs the DPLL search loop of spec.md §4.6 to completion, timeout, or
// decision budget and returns the verdict, model (if SAT), and statistics.
func (s *Solver) Solve() Result {
	s.startTime = time.Now()

	if pr := s.preprocess(); pr == Conflict {
		return s.finish(StatusUNSAT)
	}
	if len(s.f.Clauses) == 0 || s.f.IsSatisfied() {
		return s.finish(StatusSAT)
	}
	if s.f.HasConflict() {
		return s.finish(StatusUNSAT)
	}

	for {
		if s.budgetExhausted() {
			return s.finish(StatusUnknown)
		}

		if s.f.IsSatisfied() {
			return s.finish(StatusSAT)
		}

		progressed := false

		if s.f.HasConflict() {
			s.conflicts++
			s.conflictsSinceRestart++
			if !s.backtrack() {
				return s.finish(StatusUNSAT)
			}
			s.backtracks++
			s.maybeRestart()
			continue
		}

		if !s.cfg.DisablePropagation {
			pr, n := UnitPropagate(s.f, s.asg)
			s.propagations += int64(n)
			if n > 0 {
				progressed = true
			}
			if pr == Conflict {
				continue
			}
		}

		if !s.cfg.DisablePureLiteral {
			er, n := PureLiteralEliminate(s.f, s.asg, s.posSeen, s.negSeen)
			s.eliminations += int64(n)
			if n > 0 {
				// A sweep changed state: re-test satisfaction/conflict
				// before deciding (spec.md §4.6 step 5).
				continue
			}
			if er == Conflict {
				continue
			}
		}

		v := s.heuristic.Select(s.f)
		if v == 0 {
			if s.f.IsSatisfied() {
				return s.finish(StatusSAT)
			}
			return s.finish(StatusUNSAT)
		}

		s.asg.Assign(v, True, true)
		s.decisions++
		progressed = true

		if s.cfg.MaxDecisions > 0 && s.decisions >= s.cfg.MaxDecisions {
			return s.finish(StatusUnknown)
		}

		if !progressed {
			// Defensive livelock bound (spec.md §4.6, §9): a correctly
			// implemented loop never reaches this.
			return s.finish(StatusUnknown)
		}
	}
}

func (s *Solver) finish(status Status) Result {
	r := Result{
		Status:       status,
		Decisions:    s.decisions,
		Propagations: s.propagations,
		Eliminations: s.eliminations,
		Conflicts:    s.conflicts,
		Restarts:     s.restarts,
		Backtracks:   s.backtracks,
		Elapsed:      time.Since(s.startTime),
	}
	if status == StatusSAT {
		model := make([]Value, s.f.N+1)
		copy(model, s.f.Assignment())
		r.Model = model
	}
	return r
}
