// Package predefined implements the predefined-pattern finder of
// spec.md §4.7: given a pattern graph supplied up front (rather than
// discovered), locate every occurrence of it in a host graph.
package predefined

import (
	"sort"

	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
	"github.com/gromgull/subdue-sub001/match"
)

// patternStep is one edge of the pattern's breadth-first edge order,
// recording which endpoint was already assigned ("known") when the
// edge was first reached and whether the other endpoint is being
// visited for the first time.
type patternStep struct {
	edge     int
	known    int
	other    int
	otherNew bool
}

// patternOrder returns pattern's edges in breadth-first order starting
// at vertex 0 (spec.md §4.7's "breadth-first extension in pattern
// order"). A pattern with more than one connected component only
// orders the component containing vertex 0; Find requires a
// single-component pattern.
func patternOrder(pattern *graphstore.Graph) []patternStep {
	n := pattern.NumVertices()
	visited := make([]bool, n)
	seenEdge := make([]bool, pattern.NumEdges())

	var order []patternStep
	queue := []int{0}
	visited[0] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, e := range pattern.Incident(v) {
			if seenEdge[e] {
				continue
			}
			seenEdge[e] = true

			other := pattern.Other(e, v)
			isNew := !visited[other]
			order = append(order, patternStep{edge: e, known: v, other: other, otherNew: isNew})
			if isNew {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}

	return order
}

// assignment is the partial local-to-host vertex mapping built up by
// the backtracking search in extendMatch.
type assignment struct {
	localToHost map[int]int
	hostUsed    map[int]bool
	usedEdges   map[int]bool
}

// Find locates every occurrence of pattern in host (spec.md §4.7).
//
// The search walks pattern's edges in breadth-first order, at each
// step requiring an exact label and direction match between the
// pattern edge and a candidate host edge (a backtracking search, so
// every topological embedding is found, not just the first). Each
// complete embedding is then re-checked with the general inexact
// matcher at the given threshold: this is the "inexact-match
// filtering" spec.md §4.7 names. Because the walk already requires
// exact edge labels, edge directions and vertex labels, the re-check
// can only discard embeddings; label substitutions and vertex/edge
// deletions within the threshold are never found.
//
// When requireNonOverlap is true, the result is filtered to a greedy
// non-overlapping subset (spec.md §4.7's "optional non-overlap
// filtering"), keeping instances in the order Find produced them.
func Find(host, pattern *graphstore.Graph, labels *label.Table, costFn match.Cost, threshold float64, requireNonOverlap bool) []*instance.Instance {
	if pattern.NumVertices() == 0 {
		return nil
	}
	if costFn == nil {
		costFn = match.DefaultCost
	}

	steps := patternOrder(pattern)
	rootLabel := pattern.Vertices[0].Label

	var results []*instance.Instance
	for v := 0; v < host.NumVertices(); v++ {
		if host.Vertices[v].Label != rootLabel {
			continue
		}

		a := &assignment{
			localToHost: map[int]int{0: v},
			hostUsed:    map[int]bool{v: true},
			usedEdges:   map[int]bool{},
		}

		extendMatch(host, pattern, steps, 0, a, func(done *assignment) {
			inst := toInstance(done, pattern)
			res := match.Inexact(pattern, inst.ToGraph(host), labels, costFn, threshold, false)
			if res.Matched {
				results = append(results, inst)
			}
		})
	}

	if requireNonOverlap {
		results = filterNonOverlapping(results)
	}

	return results
}

// extendMatch extends the partial assignment a by pattern step
// steps[idx], trying every compatible host edge incident to the
// already-assigned endpoint, and calls emit once for every complete
// assignment reached.
func extendMatch(host, pattern *graphstore.Graph, steps []patternStep, idx int, a *assignment, emit func(*assignment)) {
	if idx == len(steps) {
		emit(a)
		return
	}

	step := steps[idx]
	edge := pattern.Edges[step.edge]
	knownHost := a.localToHost[step.known]

	for _, he := range host.Incident(knownHost) {
		if a.usedEdges[he] {
			continue
		}

		hostEdge := host.Edges[he]
		if hostEdge.Label != edge.Label || hostEdge.Directed != edge.Directed {
			continue
		}

		if edge.Directed && (edge.Src == step.known) != (hostEdge.Src == knownHost) {
			continue
		}

		far := host.Other(he, knownHost)

		if step.otherNew {
			if a.hostUsed[far] || host.Vertices[far].Label != pattern.Vertices[step.other].Label {
				continue
			}

			a.localToHost[step.other] = far
			a.hostUsed[far] = true
			a.usedEdges[he] = true

			extendMatch(host, pattern, steps, idx+1, a, emit)

			delete(a.localToHost, step.other)
			delete(a.hostUsed, far)
			delete(a.usedEdges, he)
			continue
		}

		if far != a.localToHost[step.other] {
			continue
		}

		a.usedEdges[he] = true
		extendMatch(host, pattern, steps, idx+1, a, emit)
		delete(a.usedEdges, he)
	}
}

func toInstance(a *assignment, pattern *graphstore.Graph) *instance.Instance {
	n := pattern.NumVertices()

	verts := make([]int, 0, n)
	mapping := make([]instance.VertexMap, 0, n)
	for local := 0; local < n; local++ {
		h := a.localToHost[local]
		verts = append(verts, h)
		mapping = append(mapping, instance.VertexMap{Local: local, Host: h})
	}
	sort.Ints(verts)

	edges := make([]int, 0, len(a.usedEdges))
	for e := range a.usedEdges {
		edges = append(edges, e)
	}
	sort.Ints(edges)

	return &instance.Instance{
		Vertices:  verts,
		Edges:     edges,
		Mapping:   mapping,
		MI1:       instance.NoPos,
		MI2:       instance.NoPos,
		NewVertex: instance.NoPos,
		NewEdge:   instance.NoPos,
	}
}

func filterNonOverlapping(insts []*instance.Instance) []*instance.Instance {
	var kept []*instance.Instance
	for _, inst := range insts {
		overlaps := false
		for _, k := range kept {
			if instance.Overlap(inst, k) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, inst)
		}
	}

	return kept
}
