package eval

import (
	"github.com/gromgull/subdue-sub001/compress"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
)

// subLabels is the number of synthetic labels DL(G|S) must account
// for: "SUB" always, "OVERLAP" only when the instances actually
// overlap (spec.md §4.4).
func subLabels(insts []*instance.Instance) int {
	for i := 0; i < len(insts); i++ {
		for j := i + 1; j < len(insts); j++ {
			if instance.Overlap(insts[i], insts[j]) {
				return 2
			}
		}
	}

	return 1
}

// dlGivenS computes DL(G|S): the description length of host
// compressed by a substructure whose instances are insts, under an
// alphabet enlarged by subLabels(insts), plus the extra bits needed to
// record which external edge attaches to which vertex inside each
// instance (approximated here as log2 of the instance's vertex count
// per external attachment, since each attachment must name one of the
// instance's internal vertices).
func dlGivenS(host *graphstore.Graph, labels *label.Table, insts []*instance.Instance) float64 {
	if len(insts) == 0 {
		return DescriptionLength(StatsOf(host, labels.Len()))
	}

	v, e := compress.CompressedSize(host, insts)
	stats := GraphStats{NumVertices: v, NumEdges: e, NumLabels: labels.Len() + subLabels(insts)}
	bits := DescriptionLength(stats)

	// Extra bits for external-edge attachment points: every edge
	// incident to an instance vertex but not part of the instance needs
	// log2 of the instance's size bits to record which internal vertex
	// it attaches to.
	for _, inst := range insts {
		if len(inst.Vertices) > 1 {
			bits += float64(externalDegree(host, inst)) * log2(float64(len(inst.Vertices)))
		}
	}

	return bits
}

func externalDegree(host *graphstore.Graph, inst *instance.Instance) int {
	inside := make(map[int]bool, len(inst.Vertices))
	for _, v := range inst.Vertices {
		inside[v] = true
	}
	insideEdge := make(map[int]bool, len(inst.Edges))
	for _, e := range inst.Edges {
		insideEdge[e] = true
	}

	count := 0
	for _, v := range inst.Vertices {
		for _, e := range host.Incident(v) {
			if insideEdge[e] {
				continue
			}
			count++
		}
	}

	return count
}

// MDLValue computes the MDL value of a candidate substructure (spec.md
// §4.4): DL(G) / (DL(S) + DL(G|S)), larger is better. When neg is
// non-nil, the negative graph's description length is added
// symmetrically: DL(neg) joins the numerator and (DL(neg) - DL(neg|S))
// the denominator, so a pattern that compresses the negative graph
// well is penalized and one that leaves the negative graph
// incompressible scores higher.
func MDLValue(host, neg *graphstore.Graph, labels *label.Table, def *graphstore.Graph, posInsts, negInsts []*instance.Instance) float64 {
	dlG := DescriptionLength(StatsOf(host, labels.Len()))
	dlS := DescriptionLength(StatsOf(def, labels.Len()))
	dlGS := dlGivenS(host, labels, posInsts)

	denom := dlS + dlGS
	numer := dlG

	if neg != nil {
		dlNeg := DescriptionLength(StatsOf(neg, labels.Len()))
		dlNegGS := dlGivenS(neg, labels, negInsts)
		numer += dlNeg
		denom += dlNeg - dlNegGS
	}

	if denom <= 0 {
		return 0
	}

	return numer / denom
}
