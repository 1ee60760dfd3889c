package eval

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
)

// Candidate bundles everything an Evaluator needs to score one
// substructure, so discover.Run can stay agnostic to which scoring
// function (spec.md §4.4's -eval mdl|setcover flag) is in effect.
type Candidate struct {
	Host, Negative *graphstore.Graph
	Labels         *label.Table
	Definition     *graphstore.Graph
	Positive       []*instance.Instance
	NegInstances   []*instance.Instance
	PosExamples    Examples
	NegExamples    Examples
}

// Evaluator scores a Candidate; larger is always better, matching
// both MDL's compression-ratio sense and set-cover's coverage-count
// sense.
type Evaluator func(Candidate) float64

// MDL is an Evaluator backed by MDLValue.
func MDL(c Candidate) float64 {
	return MDLValue(c.Host, c.Negative, c.Labels, c.Definition, c.Positive, c.NegInstances)
}

// SetCover is an Evaluator backed by SetCoverValue, with negFraction
// as the negative-coverage penalty fraction.
func SetCover(negFraction float64) Evaluator {
	return func(c Candidate) float64 {
		return SetCoverValue(c.PosExamples, c.NegExamples, c.Positive, c.NegInstances, negFraction)
	}
}

// Size is the cheapest Evaluator (spec.md §6's `-eval size`): a
// candidate's value is simply its positive instance count, penalized
// by however many of those instances recur in the negative graph. It
// never inspects label alphabets or builds a compressed graph, unlike
// MDL.
func Size(c Candidate) float64 {
	return float64(len(c.Positive) - len(c.NegInstances))
}
