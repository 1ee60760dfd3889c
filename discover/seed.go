package discover

import (
	"sort"

	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
)

// seed builds the initial beam: one substructure per positive-graph
// vertex label occurring at least twice, its instances the one-vertex,
// zero-edge occurrences of that label in both graphs (spec.md §4.5
// step 1). Labels are visited in index order so two runs over the same
// input always seed in the same order.
func seed(pos, neg *graphstore.Graph, labels *label.Table, opts Options) *SubList {
	byLabel := make(map[int][]int)
	for v, vert := range pos.Vertices {
		byLabel[vert.Label] = append(byLabel[vert.Label], v)
	}

	var negByLabel map[int][]int
	if neg != nil {
		negByLabel = make(map[int][]int)
		for v, vert := range neg.Vertices {
			negByLabel[vert.Label] = append(negByLabel[vert.Label], v)
		}
	}

	lbls := make([]int, 0, len(byLabel))
	for lbl := range byLabel {
		lbls = append(lbls, lbl)
	}
	sort.Ints(lbls)

	beam := NewSubList(opts.BeamWidth, opts.BeamWidth)
	for _, lbl := range lbls {
		verts := byLabel[lbl]
		if len(verts) < 2 {
			continue
		}

		def := graphstore.NewGraph(graphstore.WithVertexCapacity(1))
		def.AddVertex(lbl)

		sub := &Substructure{Definition: def}
		for _, v := range verts {
			sub.Positive = append(sub.Positive, instance.NewSeed(v))
		}
		if negByLabel != nil {
			for _, v := range negByLabel[lbl] {
				sub.Negative = append(sub.Negative, instance.NewSeed(v))
			}
		}

		sub.Value = opts.Eval(eval.Candidate{
			Host: pos, Negative: neg, Labels: labels,
			Definition:   sub.Definition,
			Positive:     sub.Positive,
			NegInstances: sub.Negative,
			PosExamples:  opts.PosExamples,
			NegExamples:  opts.NegExamples,
		})

		beam.Insert(sub)
	}

	return beam
}
