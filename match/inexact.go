package match

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

// Result is the outcome of an Inexact match attempt.
type Result struct {
	Matched bool
	Cost    float64
	// Mapping holds g1-local vertex index -> g2-local vertex index for
	// every g1 vertex that was mapped (not deleted). Populated only
	// when wantMapping was true.
	Mapping map[int]int
}

// Inexact searches for the minimum edit-cost mapping from g1's
// vertices into g2's vertices, by depth-first branch-and-bound over
// partial assignments: at each step, g1 vertex i is either mapped to
// an unused g2 vertex (tried in index order, the tie-break rule) or
// explicitly deleted. A branch is abandoned once its accumulated
// vertex-label cost already meets or exceeds the best complete cost
// found so far; until the first complete mapping exists, no branch is
// pruned.
//
// Edit cost sums: label-mismatch (1 - costFn(a,b)) per mapped vertex
// pair, 1 per deleted (unmapped) vertex on either side, 1 per g1
// edge that cannot be identified with a same-label, same-direction
// counterpart between the corresponding mapped endpoints in g2, and 1
// per g2 edge left without a g1 counterpart.
//
// threshold == 0 and a zero result is exactly graph isomorphism
// (spec.md §4.3).
func Inexact(g1, g2 *graphstore.Graph, labels *label.Table, costFn Cost, threshold float64, wantMapping bool) Result {
	if costFn == nil {
		costFn = DefaultCost
	}

	n1, n2 := g1.NumVertices(), g2.NumVertices()
	assign := make([]int, n1) // g1 vertex -> g2 vertex, or -1
	for i := range assign {
		assign[i] = -1
	}
	usedG2 := make([]bool, n2)

	haveBest := false
	bestCost := threshold
	var bestAssign []int

	var search func(i int, vertexCost float64)
	search = func(i int, vertexCost float64) {
		if haveBest && vertexCost >= bestCost {
			return
		}

		if i == n1 {
			total := vertexCost + deletedVertexCost(usedG2) + edgeCost(g1, g2, assign)
			if !haveBest || total < bestCost {
				haveBest = true
				bestCost = total
				bestAssign = append([]int(nil), assign...)
			}
			return
		}

		for j := 0; j < n2; j++ {
			if usedG2[j] {
				continue
			}
			lc := 1 - costFn(labels.At(g1.Vertices[i].Label), labels.At(g2.Vertices[j].Label))
			assign[i] = j
			usedG2[j] = true
			search(i+1, vertexCost+lc)
			usedG2[j] = false
			assign[i] = -1
		}

		// Delete g1 vertex i.
		search(i+1, vertexCost+1)
	}

	search(0, 0)

	if !haveBest {
		return Result{Matched: false, Cost: threshold}
	}

	result := Result{Matched: bestCost <= threshold, Cost: bestCost}
	if wantMapping {
		m := make(map[int]int)
		for i, j := range bestAssign {
			if j >= 0 {
				m[i] = j
			}
		}
		result.Mapping = m
	}

	return result
}

func deletedVertexCost(usedG2 []bool) float64 {
	var cost float64
	for _, u := range usedG2 {
		if !u {
			cost++
		}
	}

	return cost
}

// edgeCost counts, for every g1 edge, whether it survives under
// assign: both endpoints mapped and a same-label same-direction g2
// edge exists between the corresponding targets. Each g2 edge can
// satisfy at most one g1 edge: usedG2Edge is threaded through every
// findMatchingEdge call so two parallel g1 edges never both claim the
// same single g2 edge, which would otherwise under-cost multigraphs.
// Every g2 edge that no g1 edge claimed then costs 1 as well.
func edgeCost(g1, g2 *graphstore.Graph, assign []int) float64 {
	usedG2Edge := make([]bool, g2.NumEdges())

	var cost float64
	for _, e := range g1.Edges {
		if assign[e.Src] < 0 || assign[e.Tgt] < 0 {
			cost++
			continue
		}
		if idx, ok := findMatchingEdge(g2, assign[e.Src], assign[e.Tgt], e.Label, e.Directed, usedG2Edge); ok {
			usedG2Edge[idx] = true
		} else {
			cost++
		}
	}

	// An unclaimed g2 edge has no counterpart in g1 and is deleted too,
	// so a zero total means the edge sets correspond one-to-one.
	for _, u := range usedG2Edge {
		if !u {
			cost++
		}
	}

	return cost
}

// findMatchingEdge returns the index of an unused g2 edge between src
// and tgt (in that order if directed, either order if not) with the
// given label.
func findMatchingEdge(g2 *graphstore.Graph, src, tgt, lbl int, directed bool, used []bool) (int, bool) {
	for _, e := range g2.Incident(src) {
		if used[e] {
			continue
		}
		edge := g2.Edges[e]
		if edge.Label != lbl || edge.Directed != directed {
			continue
		}
		if directed {
			if edge.Src == src && edge.Tgt == tgt {
				return e, true
			}
			continue
		}
		if (edge.Src == src && edge.Tgt == tgt) || (edge.Src == tgt && edge.Tgt == src) {
			return e, true
		}
	}

	return 0, false
}
