package instance

import (
	"golang.org/x/exp/slices"

	"github.com/gromgull/subdue-sub001/graphstore"
)

// Extend returns every one-edge extension of inst inside host (spec.md
// §4.2). For each vertex of inst, every incident edge not already part
// of inst is tried: the edge is inserted into a copy of inst's sorted
// edge list, and if its far endpoint is new to inst, that vertex is
// inserted into a copy of the sorted vertex list too. Resulting
// instances with identical vertex and edge lists are discarded.
//
// scratch is used only for the duration of this call: inst's own edges
// are marked used so that the per-vertex incidence scan naturally
// skips them, and unmarked again before Extend returns (flag
// hygiene, spec.md §8).
func Extend(inst *Instance, host *graphstore.Graph, scratch *graphstore.Scratch) []*Instance {
	for _, e := range inst.Edges {
		scratch.SetEdgeUsed(e, true)
	}
	defer func() {
		for _, e := range inst.Edges {
			scratch.SetEdgeUsed(e, false)
		}
	}()

	var out []*Instance
	seen := make(map[string]bool)

	for _, v := range inst.Vertices {
		for _, e := range host.Incident(v) {
			if scratch.EdgeUsed(e) {
				continue
			}

			cand := extendOne(inst, host, v, e)
			key := instanceKey(cand)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, cand)
		}
	}

	return out
}

// extendOne builds the single extension of inst via edge e, reached
// from vertex v (one of inst's own vertices, an endpoint of e).
func extendOne(inst *Instance, host *graphstore.Graph, v, e int) *Instance {
	far := host.Other(e, v)

	newEdges, edgePos := insertSorted(inst.Edges, e)

	var newVertices []int
	vertexPos := NoPos
	if inst.Contains(far) {
		newVertices = inst.Vertices
	} else {
		newVertices, vertexPos = insertSorted(inst.Vertices, far)
	}

	return &Instance{
		Vertices:  newVertices,
		Edges:     newEdges,
		Mapping:   inst.Mapping, // the parent's mapping, shared as is; the new vertex gets no entry
		MI1:       NoPos,
		MI2:       NoPos,
		NewVertex: vertexPos,
		NewEdge:   edgePos,
		Parent:    inst,
	}
}

// insertSorted returns a new slice with x inserted at its sorted
// position, and that position.
func insertSorted(xs []int, x int) ([]int, int) {
	pos, _ := slices.BinarySearch(xs, x)
	out := make([]int, 0, len(xs)+1)
	out = append(out, xs[:pos]...)
	out = append(out, x)
	out = append(out, xs[pos:]...)

	return out, pos
}

func instanceKey(inst *Instance) string {
	// A simple, allocation-light key: lengths guard against
	// collisions between different-length lists, and the sorted
	// invariant means two instances with equal lists always produce
	// an identical key.
	buf := make([]byte, 0, 8*(len(inst.Vertices)+len(inst.Edges))+2)
	buf = appendInts(buf, inst.Vertices)
	buf = append(buf, '|')
	buf = appendInts(buf, inst.Edges)

	return string(buf)
}

func appendInts(buf []byte, xs []int) []byte {
	for _, x := range xs {
		buf = appendInt(buf, x)
		buf = append(buf, ',')
	}

	return buf
}

func appendInt(buf []byte, x int) []byte {
	if x == 0 {
		return append(buf, '0')
	}
	if x < 0 {
		buf = append(buf, '-')
		x = -x
	}
	start := len(buf)
	for x > 0 {
		buf = append(buf, byte('0'+x%10))
		x /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
