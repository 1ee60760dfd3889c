// Package instance implements the instance engine of spec.md §4.2: a
// subgraph occurrence recorded as sorted vertex/edge index lists plus
// a mapping back to the substructure definition, and the algebra used
// to grow one instance into its one-edge extensions.
package instance

import (
	"golang.org/x/exp/slices"

	"github.com/gromgull/subdue-sub001/graphstore"
)

// NoPos is the sentinel used for NewVertex/NewEdge when an extension
// added only an edge (no new vertex), matching spec.md §3's "or a
// sentinel if the extension added only an edge".
const NoPos = -1

// VertexMap records one substructure-local vertex's host-graph
// position.
type VertexMap struct {
	Local int
	Host  int
}

// Instance is one occurrence of a substructure inside a host graph.
//
// Vertices and Edges are always kept sorted ascending; Equal and
// Overlap rely on that invariant.
type Instance struct {
	Vertices []int // sorted host-graph vertex indices
	Edges    []int // sorted host-graph edge indices

	Mapping []VertexMap

	// MI1, MI2 are the mapping-index slots of the two endpoints of the
	// most recently added edge (spec.md §3).
	MI1, MI2 int

	// NewVertex/NewEdge are the sorted-list positions at which the
	// last Extend call inserted its new element, or NoPos.
	NewVertex, NewEdge int

	// Parent is a weak back-pointer to the instance this one was
	// extended from, valid only for the lifetime of the extension
	// round that produced it (spec.md §9: "represent it with an
	// arena-index, not ownership" — here, a plain pointer into the
	// round's own instance slice, never retained past the round).
	Parent *Instance

	// MinCost is the minimum match cost found for this instance so
	// far; 0 means "exactly matched" (spec.md §4.5's duplicate-
	// suppression invariant keys off MinCost == 0).
	MinCost float64

	// Used marks this instance as claimed by a candidate substructure
	// during the current extension round (spec.md §3). Extend builds
	// fresh instances every round, so the flag starts clear; nothing
	// clears it once set.
	Used bool
}

// NewSeed builds the trivial one-vertex, zero-edge instance at host
// vertex v.
func NewSeed(v int) *Instance {
	return &Instance{
		Vertices:  []int{v},
		Mapping:   []VertexMap{{Local: 0, Host: v}},
		MI1:       NoPos,
		MI2:       NoPos,
		NewVertex: 0,
		NewEdge:   NoPos,
	}
}

// Contains reports whether host vertex v is a member of inst.
//
// Complexity: O(log n) via binary search over the sorted list.
func (inst *Instance) Contains(v int) bool {
	_, ok := slices.BinarySearch(inst.Vertices, v)
	return ok
}

// Equal reports whether a and b are the same occurrence: pairwise
// equal sorted vertex and edge lists.
func Equal(a, b *Instance) bool {
	return slices.Equal(a.Vertices, b.Vertices) && slices.Equal(a.Edges, b.Edges)
}

// Overlap reports whether a and b share at least one host vertex.
//
// Complexity: O(|a.Vertices| + |b.Vertices|) via a two-pointer sweep
// over the sorted lists.
func Overlap(a, b *Instance) bool {
	i, j := 0, 0
	for i < len(a.Vertices) && j < len(b.Vertices) {
		switch {
		case a.Vertices[i] == b.Vertices[j]:
			return true
		case a.Vertices[i] < b.Vertices[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// Union returns a new instance merging a and b, maintaining sorted
// order and deduping shared vertices/edges, for recursive-instance
// fusion (spec.md §4.2). Neither a nor b is modified.
func Union(a, b *Instance) *Instance {
	out := &Instance{
		Vertices:  mergeSortedUnique(a.Vertices, b.Vertices),
		Edges:     mergeSortedUnique(a.Edges, b.Edges),
		MI1:       NoPos,
		MI2:       NoPos,
		NewVertex: NoPos,
		NewEdge:   NoPos,
	}
	out.Mapping = append(out.Mapping, a.Mapping...)
	out.Mapping = append(out.Mapping, b.Mapping...)

	return out
}

func mergeSortedUnique(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// ToGraph builds the stand-alone definition graph of inst: a fresh
// graphstore.Graph whose vertices/edges are inst's, relabeled to a
// contiguous local index space. Used by the round-trip property of
// spec.md §8 and by the predefined-pattern finder's self-check.
func (inst *Instance) ToGraph(host *graphstore.Graph) *graphstore.Graph {
	out := graphstore.NewGraph(
		graphstore.WithVertexCapacity(len(inst.Vertices)),
		graphstore.WithEdgeCapacity(len(inst.Edges)),
	)

	local := make(map[int]int, len(inst.Vertices))
	for _, hv := range inst.Vertices {
		v := host.Vertices[hv]
		local[hv] = out.AddVertex(v.Label)
	}
	for _, he := range inst.Edges {
		e := host.Edges[he]
		out.AddEdge(local[e.Src], local[e.Tgt], e.Label, e.Directed, false)
	}

	return out
}
