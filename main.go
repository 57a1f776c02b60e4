package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kael-hart/dpll/internal/dimacs"
	"github.com/kael-hart/dpll/internal/sat"
	"github.com/kael-hart/dpll/parsers"
)

var (
	flagVerbose    = flag.Bool("verbose", false, "enable progress logging")
	flagAssignment = flag.Bool("assignment", false, "print the decoded model in human-readable form when SAT")
	flagStats      = flag.Bool("stats", false, "print decisions, propagations, conflicts, restarts, elapsed time")
	flagTimeout    = flag.Float64("timeout", 0, "wall-clock deadline in seconds; 0 means none")
	flagDecisions  = flag.Int64("decisions", 0, "decision budget; 0 means none")
	flagStrategy   = flag.String("strategy", "jw", "decision heuristic: first, frequent, jw, random")
	flagLenient    = flag.Bool("lenient", false, "tolerate a mismatched clause count on the problem line")
	flagSeed       = flag.Int64("seed", 0, "seed for the random strategy; 0 means seed from wall time")
	flagRestarts   = flag.Bool("restarts", false, "enable the restart policy")
	flagRestartAt  = flag.Int64("restart-threshold", 100, "conflicts since the last restart before restarting again")
	flagHelp       = flag.Bool("help", false, "print help and exit")
)

func init() {
	flag.BoolVar(flagVerbose, "v", false, "shorthand for -verbose")
	flag.BoolVar(flagAssignment, "a", false, "shorthand for -assignment")
	flag.BoolVar(flagStats, "s", false, "shorthand for -stats")
	flag.Float64Var(flagTimeout, "t", 0, "shorthand for -timeout")
	flag.Int64Var(flagDecisions, "d", 0, "shorthand for -decisions")
	flag.BoolVar(flagHelp, "h", false, "shorthand for -help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decides the satisfiability of a DIMACS CNF instance using\n")
		fmt.Fprintf(os.Stderr, "chronological DPLL search.\n\n")
		flag.PrintDefaults()
	}
}

type cliConfig struct {
	instanceFile string
	lenient      bool
	verbose      bool
	assignment   bool
	stats        bool
	solve        sat.Config
}

func parseStrategy(s string) (sat.Strategy, error) {
	switch strings.ToLower(s) {
	case "first":
		return sat.StrategyFirstUnassigned, nil
	case "frequent":
		return sat.StrategyMostFrequent, nil
	case "jw":
		return sat.StrategyJeroslowWang, nil
	case "random":
		return sat.StrategyRandom, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want first, frequent, jw, or random)", s)
	}
}

// errHelp signals that -h/--help was given; main exits 0 on this, unlike any
// other parseConfig error (spec.md §6.4 only assigns exit 1 to parse/IO/
// internal errors, not to a successful help request).
var errHelp = fmt.Errorf("help requested")

func parseConfig() (*cliConfig, error) {
	flag.Parse()

	if *flagHelp {
		return nil, errHelp
	}

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	strategy, err := parseStrategy(*flagStrategy)
	if err != nil {
		return nil, err
	}

	cfg := &cliConfig{
		instanceFile: flag.Arg(0),
		lenient:      *flagLenient,
		verbose:      *flagVerbose,
		assignment:   *flagAssignment,
		stats:        *flagStats,
		solve: sat.Config{
			Strategy:         strategy,
			Timeout:          time.Duration(*flagTimeout * float64(time.Second)),
			MaxDecisions:     *flagDecisions,
			EnableRestarts:   *flagRestarts,
			RestartThreshold: *flagRestartAt,
		},
	}
	if *flagSeed != 0 {
		cfg.solve.Seed = uint64(*flagSeed)
		cfg.solve.SeedSet = true
	}
	return cfg, nil
}

func loadFormula(cfg *cliConfig) (*sat.Formula, error) {
	gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
	if cfg.lenient {
		return dimacs.LoadLenient(cfg.instanceFile, gzipped)
	}
	return parsers.LoadStrict(cfg.instanceFile, gzipped)
}

// exitCode maps a solver verdict to the process exit code of spec.md §6.4.
func exitCode(status sat.Status) int {
	switch status {
	case sat.StatusSAT:
		return 10
	case sat.StatusUNSAT:
		return 20
	default:
		return 0
	}
}

func run(cfg *cliConfig, logger *log.Logger) (int, error) {
	f, err := loadFormula(cfg)
	if err != nil {
		return 1, fmt.Errorf("could not parse instance: %w", err)
	}
	logger.Printf("c variables: %d", f.N)
	logger.Printf("c clauses:   %d", len(f.Clauses))
	logger.Printf("c strategy:  %s", cfg.solve.Strategy)

	s := sat.NewSolver(f, cfg.solve)
	result := s.Solve()

	logger.Printf("c time (sec): %f", result.Elapsed.Seconds())
	logger.Printf("c decisions:  %d", result.Decisions)
	logger.Printf("c conflicts:  %d", result.Conflicts)

	fmt.Printf("s %s\n", result.Status)

	if result.Status == sat.StatusSAT {
		for v := 1; v <= f.N; v++ {
			fmt.Printf("%d = %d\n", v, result.Model[v].Bit())
		}
		if cfg.assignment {
			printHumanAssignment(result.Model)
		}
	}

	if cfg.stats {
		printStats(result)
	}

	return exitCode(result.Status), nil
}

func printHumanAssignment(model []sat.Value) {
	var b strings.Builder
	b.WriteString("c assignment:")
	for v := 1; v < len(model); v++ {
		truth := "false"
		if model[v] == sat.True {
			truth = "true"
		}
		fmt.Fprintf(&b, " %d=%s", v, truth)
	}
	fmt.Println(b.String())
}

func printStats(r sat.Result) {
	fmt.Printf("c decisions:    %d\n", r.Decisions)
	fmt.Printf("c propagations: %d\n", r.Propagations)
	fmt.Printf("c eliminations: %d\n", r.Eliminations)
	fmt.Printf("c conflicts:    %d\n", r.Conflicts)
	fmt.Printf("c restarts:     %d\n", r.Restarts)
	fmt.Printf("c backtracks:   %d\n", r.Backtracks)
	fmt.Printf("c time (sec):   %f\n", r.Elapsed.Seconds())
}

func main() {
	cfg, err := parseConfig()
	if err == errHelp {
		flag.Usage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	code, err := run(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}
