package eval

import "github.com/gromgull/subdue-sub001/instance"

// Examples maps every host-graph vertex to the 0-based index of the
// example graph it belongs to, so set-cover scoring can ask "does any
// instance touch example i" without re-parsing the input.
type Examples struct {
	VertexExample []int
	NumExamples   int
}

// CoveredExamples returns the set of example indices touched by at
// least one instance in insts.
func CoveredExamples(ex Examples, insts []*instance.Instance) map[int]bool {
	covered := make(map[int]bool)
	for _, inst := range insts {
		if len(inst.Vertices) == 0 {
			continue
		}
		covered[ex.VertexExample[inst.Vertices[0]]] = true
	}

	return covered
}

// SetCoverValue computes the set-cover value of spec.md §4.4: the
// number of positive examples covered by at least one instance, minus
// negFraction times the number of negative examples covered.
func SetCoverValue(posEx, negEx Examples, posInsts, negInsts []*instance.Instance, negFraction float64) float64 {
	value := float64(len(CoveredExamples(posEx, posInsts)))
	if len(negInsts) > 0 {
		value -= negFraction * float64(len(CoveredExamples(negEx, negInsts)))
	}

	return value
}
