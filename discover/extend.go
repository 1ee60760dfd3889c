package discover

import (
	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
	"github.com/gromgull/subdue-sub001/match"
)

// extendSub computes ExtendSub(parent) of spec.md §4.5: the union, over
// parent's positive instances, of one-edge extensions (an occurrence
// reached from several parent instances is kept once), deduplicated by
// definition graph, with every matching instance (positive and
// negative) collected against each resulting definition.
//
// Duplicate suppression: the extension list is scanned once in order.
// An instance already claimed (Used) by an earlier candidate is
// skipped. An unclaimed instance is tested against every
// already-spawned candidate (matchesCandidate); if none matches, it
// spawns a new candidate and is immediately tested forward, against
// positions after its own (every position at or before it has already
// been tested against every candidate that exists so far), which is
// the O(N) pass spec.md §4.5 calls out as the alternative to the
// O(N^2) pairwise evaluation.
func extendSub(parent *Substructure, pos, neg *graphstore.Graph, labels *label.Table, opts Options) []*Substructure {
	posScratch := graphstore.NewScratch(pos)
	var extList []*instance.Instance
	for _, inst := range parent.Positive {
		extList = append(extList, instance.Extend(inst, pos, posScratch)...)
	}

	var negExtList []*instance.Instance
	if neg != nil && len(parent.Negative) > 0 {
		negScratch := graphstore.NewScratch(neg)
		for _, inst := range parent.Negative {
			negExtList = append(negExtList, instance.Extend(inst, neg, negScratch)...)
		}
	}

	// Extend dedups only within one call; two parent instances sharing
	// an edge reach the same occurrence, so keep its first copy only.
	dedup := func(insts []*instance.Instance) []*instance.Instance {
		var out []*instance.Instance
	next:
		for _, inst := range insts {
			for _, prev := range out {
				if instance.Equal(prev, inst) {
					continue next
				}
			}
			out = append(out, inst)
		}
		return out
	}
	extList = dedup(extList)
	negExtList = dedup(negExtList)

	var candidates []*Substructure
	for i, inst := range extList {
		if inst.Used {
			continue
		}

		matched := false
		for _, cand := range candidates {
			if matchesCandidate(pos, labels, opts, cand, inst) {
				cand.Positive = append(cand.Positive, inst)
				inst.Used = true
				inst.MinCost = 0
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		cand := &Substructure{Definition: inst.ToGraph(pos)}
		cand.Positive = append(cand.Positive, inst)
		inst.Used = true
		inst.MinCost = 0
		candidates = append(candidates, cand)

		for j := i + 1; j < len(extList); j++ {
			sib := extList[j]
			if sib.Used {
				continue
			}
			if matchesCandidate(pos, labels, opts, cand, sib) {
				cand.Positive = append(cand.Positive, sib)
				sib.Used = true
				sib.MinCost = 0
			}
		}
	}

	for _, cand := range candidates {
		for _, ninst := range negExtList {
			res := match.Inexact(cand.Definition, ninst.ToGraph(neg), labels, opts.CostFn, opts.Threshold, false)
			if res.Matched {
				cand.Negative = append(cand.Negative, ninst)
			}
		}
	}

	for _, cand := range candidates {
		cand.Value = opts.Eval(eval.Candidate{
			Host: pos, Negative: neg, Labels: labels,
			Definition:   cand.Definition,
			Positive:     cand.Positive,
			NegInstances: cand.Negative,
			PosExamples:  opts.PosExamples,
			NegExamples:  opts.NegExamples,
		})
	}

	return candidates
}

// matchesCandidate decides whether inst belongs to cand's definition:
// the exact new-edge fast path when inst and cand's first instance
// share a parent, falling back to the general inexact matcher (run at
// threshold 0, it is exact graph isomorphism) whenever the fast path
// cannot decide.
func matchesCandidate(host *graphstore.Graph, labels *label.Table, opts Options, cand *Substructure, inst *instance.Instance) bool {
	if len(cand.Positive) > 0 && match.NewEdgeMatch(host, inst, cand.Positive[0]) {
		return true
	}

	res := match.Inexact(cand.Definition, inst.ToGraph(host), labels, opts.CostFn, opts.Threshold, false)
	return res.Matched
}
