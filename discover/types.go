// Package discover implements the beam-search outer loop of spec.md
// §4.5: seed from one-vertex substructures, repeatedly extend,
// evaluate and prune, and collect the best substructures found.
package discover

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
)

// Substructure is the discovery atom: a pattern graph together with
// its instances in the positive and (optionally) negative graphs.
type Substructure struct {
	Definition *graphstore.Graph

	Positive []*instance.Instance
	Negative []*instance.Instance

	// Value is the substructure's score; -1 means not yet evaluated.
	Value float64

	Recursive      bool
	RecurEdgeLabel int

	// IncrementValue accumulators are carried but never read/written by
	// this repository's core (SPEC_FULL.md §4.9).
	IncrementValue [2]float64
}

// PosCount and NegCount are the instance counts, matching spec.md §3's
// Substructure fields (kept as methods rather than duplicated ints so
// they can never drift from len(Positive)/len(Negative)).
func (s *Substructure) PosCount() int { return len(s.Positive) }
func (s *Substructure) NegCount() int { return len(s.Negative) }
