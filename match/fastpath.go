package match

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
)

// NewEdgeMatch implements the exact new-edge fast path (spec.md
// §4.3): given two sibling instances extended from the same parent by
// one edge, decide whether their new edges (and new vertices, if any)
// can be identified under the parent's mapping, without running the
// full inexact matcher.
//
// ok is false whenever the fast path cannot decide — either because a
// and b do not share a parent, or because step 3 (mapping
// consistency) fails — in which case the caller falls back to Inexact
// (a substructure is rotationally invariant, so labels can still align
// under some permutation the fast path does not consider).
func NewEdgeMatch(host *graphstore.Graph, a, b *instance.Instance) (ok bool) {
	if a.Parent == nil || a.Parent != b.Parent {
		return false
	}
	if a.NewEdge == instance.NoPos || b.NewEdge == instance.NoPos {
		return false
	}

	edgeA := host.Edges[a.Edges[a.NewEdge]]
	edgeB := host.Edges[b.Edges[b.NewEdge]]

	// Step 1: new-edge labels and directedness must match.
	if edgeA.Label != edgeB.Label || edgeA.Directed != edgeB.Directed {
		return false
	}

	aHasNewVertex := a.NewVertex != instance.NoPos
	bHasNewVertex := b.NewVertex != instance.NoPos
	if aHasNewVertex != bHasNewVertex {
		return false
	}

	// Step 2: if both added a new vertex, its label must match.
	if aHasNewVertex {
		labelA := host.Vertices[a.Vertices[a.NewVertex]].Label
		labelB := host.Vertices[b.Vertices[b.NewVertex]].Label
		if labelA != labelB {
			return false
		}
	}

	parent := a.Parent
	newLocal := len(parent.Mapping)

	newHostA, newHostB := -1, -1
	if aHasNewVertex {
		newHostA = a.Vertices[a.NewVertex]
	}
	if bHasNewVertex {
		newHostB = b.Vertices[b.NewVertex]
	}

	srcA, ok1 := localIndex(parent, edgeA.Src, newLocal, newHostA)
	tgtA, ok2 := localIndex(parent, edgeA.Tgt, newLocal, newHostA)
	srcB, ok3 := localIndex(parent, edgeB.Src, newLocal, newHostB)
	tgtB, ok4 := localIndex(parent, edgeB.Tgt, newLocal, newHostB)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}

	// Step 3: the parent mapping, extended with the new-vertex
	// identification, must put the new edges between the same pair of
	// substructure-local vertices (two orderings allowed when
	// undirected).
	if srcA == srcB && tgtA == tgtB {
		return true
	}
	if !edgeA.Directed && srcA == tgtB && tgtA == srcB {
		return true
	}

	return false
}

// localIndex resolves a host-graph vertex to its substructure-local
// index under parent's mapping, treating newHost (if >= 0) as having
// just been assigned newLocal.
func localIndex(parent *instance.Instance, hostVertex, newLocal, newHost int) (int, bool) {
	if hostVertex == newHost {
		return newLocal, true
	}
	for _, m := range parent.Mapping {
		if m.Host == hostVertex {
			return m.Local, true
		}
	}

	return 0, false
}
