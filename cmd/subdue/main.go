// Command subdue is a thin driver wiring the graphio, discover, match,
// eval, and compress packages onto the CLI flags of spec.md §6. It
// makes no discovery decisions of its own: every choice is delegated
// to discover.Run/discover.Iterate, predefined.Find, or compress.Compress.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gromgull/subdue-sub001/compress"
	"github.com/gromgull/subdue-sub001/discover"
	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/graphio"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
	"github.com/gromgull/subdue-sub001/match"
	"github.com/gromgull/subdue-sub001/predefined"
)

// flagSet collects every flag of spec.md §6 onto one struct, shared by
// run, runDiscover and runPredefined.
type flagSet struct {
	limit       int
	numBestSubs int
	beam        int
	maxVertices int
	minVertices int
	iterations  int
	threshold   float64
	overlap     bool
	undirected  bool
	evalName    string
	prune       bool
	recursion   bool
	psFile      string
	outFile     string
	dotFile     string
	output      int
}

func newRootCmd() *cobra.Command {
	f := &flagSet{}

	cmd := &cobra.Command{
		Use:          "subdue <graph-file>",
		Short:        "Discover recurring substructures in a labeled graph",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.limit, "limit", 0, "maximum number of substructures considered (0 = unbounded)")
	flags.IntVar(&f.numBestSubs, "numBestSubs", 3, "number of best substructures to report")
	flags.IntVar(&f.beam, "beam", 4, "beam width")
	flags.IntVar(&f.maxVertices, "maxVertices", 0, "maximum substructure size in vertices (0 = unbounded)")
	flags.IntVar(&f.minVertices, "minVertices", 1, "minimum substructure size in vertices")
	flags.IntVar(&f.iterations, "iterations", 1, "number of iterative-compression passes")
	flags.Float64Var(&f.threshold, "threshold", 0, "inexact match cost threshold")
	flags.BoolVar(&f.overlap, "overlap", false, "keep overlapping instances of -ps patterns instead of filtering them (discovery mode never filters overlapping instances)")
	flags.BoolVar(&f.undirected, "undirected", false, "treat 'e' edges as undirected")
	flags.StringVar(&f.evalName, "eval", "mdl", "evaluator: mdl|size|setcover")
	flags.BoolVar(&f.prune, "prune", false, "discard children whose value is lower than their parent's")
	flags.BoolVar(&f.recursion, "recursion", false, "detect recursive substructures")
	flags.StringVar(&f.psFile, "ps", "", "predefined-substructures file (switches to predefined-pattern mode)")
	flags.StringVar(&f.outFile, "out", "", "output substructures file (default: stdout)")
	flags.StringVar(&f.dotFile, "dot", "", "optional Graphviz DOT dump of the best substructure's definition")
	flags.IntVar(&f.output, "output", 1, "verbosity, 1-5")

	return cmd
}

func run(cmd *cobra.Command, graphFile string, f *flagSet) error {
	logger := newLogger(f.output)

	in, err := os.Open(graphFile)
	if err != nil {
		return err
	}
	defer in.Close()

	pos, neg, labels, err := graphio.ReadGraphs(in, f.undirected)
	if err != nil {
		return err
	}
	if pos == nil {
		return fmt.Errorf("subdue: %s declares no positive example (XP)", graphFile)
	}

	if f.psFile != "" {
		return runPredefined(cmd, f, pos, neg, labels, logger)
	}

	return runDiscover(cmd, f, pos, neg, labels, logger)
}

func runDiscover(cmd *cobra.Command, f *flagSet, pos, neg *graphstore.Graph, labels *label.Table, logger zerolog.Logger) error {
	evaluator, err := resolveEvaluator(f.evalName)
	if err != nil {
		return err
	}

	opts := discover.Options{
		Threshold:   f.threshold,
		BeamWidth:   f.beam,
		MaxVertices: f.maxVertices,
		MinVertices: f.minVertices,
		Limit:       f.limit,
		NumBestSubs: f.numBestSubs,
		Prune:       f.prune,
		Eval:        evaluator,
		CostFn:      match.DefaultCost,
		Logger:      &logger,
	}

	best := discover.Iterate(pos, neg, labels, opts, f.iterations)
	if f.recursion {
		for _, sub := range best {
			discover.BuildRecursive(pos, sub, labels, opts)
		}
	}

	if len(best) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no substructures found")
		return nil
	}

	if err := writeResults(cmd, f, best, labels); err != nil {
		return err
	}

	return nil
}

func runPredefined(cmd *cobra.Command, f *flagSet, pos, neg *graphstore.Graph, labels *label.Table, logger zerolog.Logger) error {
	psIn, err := os.Open(f.psFile)
	if err != nil {
		return err
	}
	defer psIn.Close()

	patterns, err := graphio.ReadPredefined(psIn, labels, f.undirected)
	if err != nil {
		return err
	}

	var best []*discover.Substructure
	for _, pattern := range patterns {
		insts := predefined.Find(pos, pattern, labels, match.DefaultCost, f.threshold, !f.overlap)
		if len(insts) == 0 {
			continue
		}
		best = append(best, &discover.Substructure{Definition: pattern, Positive: insts})
	}

	if len(best) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no substructures found")
		return nil
	}

	return writeResults(cmd, f, best, labels)
}

func writeResults(cmd *cobra.Command, f *flagSet, best []*discover.Substructure, labels *label.Table) error {
	out := cmd.OutOrStdout()
	if f.outFile != "" {
		file, err := os.Create(f.outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	if err := graphio.WriteSubstructures(out, best, labels); err != nil {
		return err
	}

	if f.dotFile != "" {
		dotOut, err := os.Create(f.dotFile)
		if err != nil {
			return err
		}
		defer dotOut.Close()

		if err := writeDOT(dotOut, best[0].Definition, labels); err != nil {
			return err
		}
	}

	return nil
}

func resolveEvaluator(name string) (eval.Evaluator, error) {
	switch name {
	case "mdl":
		return eval.MDL, nil
	case "size":
		return eval.Size, nil
	case "setcover":
		return eval.SetCover(1.0), nil
	default:
		return nil, fmt.Errorf("subdue: unknown -eval %q, want mdl|size|setcover", name)
	}
}

func newLogger(verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 5:
		level = zerolog.TraceLevel
	case verbosity >= 4:
		level = zerolog.DebugLevel
	case verbosity >= 3:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.WarnLevel
	default:
		level = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// compress is imported for its side-effect of being wired into the
// iterative-compression path inside discover.Iterate; referenced here
// so the thin driver's import graph documents the dependency even
// though it never calls the package directly.
var _ = compress.CompressedSize
