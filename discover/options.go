package discover

import (
	"github.com/rs/zerolog"

	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/match"
)

// Options configures Run, collecting the flags of spec.md §6 that bear
// on the beam search itself (graphio/cmd concerns — file paths, output
// format — live outside this package).
type Options struct {
	// Threshold is the inexact-match cost bound. The exact new-edge
	// fast path is tried first wherever the instance lineage allows it,
	// at any threshold; the inexact matcher decides the rest.
	Threshold float64

	// BeamWidth bounds the number of substructures carried from one
	// expansion round to the next.
	BeamWidth int

	// MaxVertices, if positive, discards any candidate whose definition
	// would exceed it.
	MaxVertices int

	// MinVertices is the smallest definition size eligible for
	// retirement into the discovered list.
	MinVertices int

	// Limit bounds the total number of substructures considered across
	// the whole run; 0 means unbounded.
	Limit int

	// NumBestSubs bounds the discovered list returned by Run.
	NumBestSubs int

	// Prune discards a child whose Value is lower than its parent's; a
	// child with an equal Value is kept.
	Prune bool

	// Eval scores each candidate; defaults to eval.MDL.
	Eval eval.Evaluator

	// CostFn is the label-similarity function passed to the inexact
	// matcher; defaults to match.DefaultCost.
	CostFn match.Cost

	PosExamples eval.Examples
	NegExamples eval.Examples

	// SubLabels names label indices that were introduced by a previous
	// compression pass (spec.md §4.6's SUB_n placeholders). A
	// single-vertex substructure whose only vertex carries one of these
	// labels is a trivial rename of an already-discovered substructure
	// and is never retired again.
	SubLabels map[int]bool

	// Logger receives one structured event per expansion round. A nil
	// Logger disables logging entirely; the core never requires one.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.BeamWidth <= 0 {
		o.BeamWidth = 4
	}
	if o.MinVertices <= 0 {
		o.MinVertices = 1
	}
	if o.NumBestSubs <= 0 {
		o.NumBestSubs = o.BeamWidth
	}
	if o.Eval == nil {
		o.Eval = eval.MDL
	}
	if o.CostFn == nil {
		o.CostFn = match.DefaultCost
	}

	return o
}
