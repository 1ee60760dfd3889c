// Package match implements spec.md §4.3's two subgraph-matching entry
// points: the exact new-edge fast path used by the beam search when
// the match threshold is zero, and the general inexact
// branch-and-bound matcher used otherwise (and as the fast path's
// fallback).
package match

import "github.com/gromgull/subdue-sub001/label"

// Cost scores the similarity of two labels as a value in [0, 1], 1
// meaning identical. label-mismatch cost (spec.md §4.3) is
// 1 - Cost(a, b). The reference implementation only ever returns 1 on
// exact equality and 0 otherwise; Cost is exposed as an injectable
// hook so an inexact label-similarity metric (spec.md §4.3: "inexact
// label match is a reserved extension point") has a concrete seam.
type Cost func(a, b label.Label) float64

// DefaultCost is the reference-implementation label-similarity
// metric: 1 for equal labels, 0 otherwise.
func DefaultCost(a, b label.Label) float64 {
	if a == b {
		return 1
	}

	return 0
}
