package discover

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
	"github.com/gromgull/subdue-sub001/match"
)

// Run performs the beam search of spec.md §4.5: seed one-vertex
// substructures, then repeatedly extend every substructure on the
// beam, evaluate and optionally prune its children, and retire any
// substructure that has grown large enough to report. It returns the
// discovered list, best substructure first, bounded by
// Options.NumBestSubs.
func Run(pos, neg *graphstore.Graph, labels *label.Table, opts Options) *SubList {
	opts = opts.withDefaults()

	discovered := NewSubList(opts.NumBestSubs, opts.NumBestSubs)
	beam := seed(pos, neg, labels, opts)

	considered := beam.Len()
	round := 0
	for beam.Len() > 0 && (opts.Limit <= 0 || considered < opts.Limit) {
		round++
		next := NewSubList(opts.BeamWidth, opts.BeamWidth)

		for _, parent := range beam.Items() {
			if opts.Limit > 0 && considered >= opts.Limit {
				break
			}

			children := extendSub(parent, pos, neg, labels, opts)
			considered += len(children)

			for _, child := range children {
				if opts.MaxVertices > 0 && len(child.Definition.Vertices) > opts.MaxVertices {
					continue
				}
				if opts.Prune && child.Value < parent.Value {
					continue
				}
				if isDuplicateDefinition(next, child.Definition, labels, opts.CostFn) {
					continue
				}
				next.Insert(child)
			}

			if shouldRetire(parent, opts) && !isDuplicateDefinition(discovered, parent.Definition, labels, opts.CostFn) {
				discovered.Insert(parent)
			}
		}

		if opts.Logger != nil {
			opts.Logger.Debug().
				Int("round", round).
				Int("considered", considered).
				Int("beam", next.Len()).
				Msg("discover: expansion round")
		}

		beam = next
	}

	for _, parent := range beam.Items() {
		if shouldRetire(parent, opts) && !isDuplicateDefinition(discovered, parent.Definition, labels, opts.CostFn) {
			discovered.Insert(parent)
		}
	}

	return discovered
}

// isDuplicateDefinition reports whether def is isomorphic (exact,
// threshold-0 GraphMatch) to some definition already in list, the
// uniqueness property spec.md §8 requires of the discovered list: "for
// every pair of candidate substructures S1, S2 on the discovered list,
// GraphMatch(S1.def, S2.def, threshold=0) is false". Checked before
// every insertion into next/discovered, not just once at the end,
// since candidates spawned from different parents can converge on the
// same pattern within a single round.
func isDuplicateDefinition(list *SubList, def *graphstore.Graph, labels *label.Table, costFn match.Cost) bool {
	for _, existing := range list.Items() {
		if existing.Definition.NumVertices() != def.NumVertices() {
			continue
		}
		if existing.Definition.NumEdges() != def.NumEdges() {
			continue
		}
		if match.Inexact(existing.Definition, def, labels, costFn, 0, false).Matched {
			return true
		}
	}

	return false
}

// shouldRetire reports whether sub is large enough to report, recurs
// often enough to be worth reporting (spec.md §8 scenario 2: a
// candidate with only one instance is always rejected, no matter how
// many vertices its definition has), and is not merely a single-vertex
// rename of a substructure discovered by an earlier compression pass.
func shouldRetire(sub *Substructure, opts Options) bool {
	if sub.PosCount() <= 1 {
		return false
	}
	if len(sub.Definition.Vertices) < opts.MinVertices {
		return false
	}
	if len(sub.Definition.Vertices) == 1 && opts.SubLabels != nil {
		if opts.SubLabels[sub.Definition.Vertices[0].Label] {
			return false
		}
	}

	return true
}
