package graphstore

// Scratch holds the transient per-pass state that spec.md §3 attaches
// to vertices and edges as mutable flags: the edge used flag, the
// vertex map slot and the vertex valid flag (the vertex and label used
// flags have no counterpart here). Rather than embed mutable fields on Vertex/Edge/Label
// — which would force every routine to remember to reset them before
// returning (spec.md §9's "most bug-prone aspect of the source") —
// this repository scopes that state to a caller-owned Scratch sized to
// one graph. A Scratch that goes out of scope takes its flags with it;
// there is nothing to forget to reset.
//
// Scratch is not safe for concurrent use, matching spec.md §5's
// single-threaded core.
type Scratch struct {
	edgeUsed []bool
	vertMap  []int // -1 = unset; used by compress for the SUB-vertex remap
	valid    []bool
}

// NewScratch allocates a Scratch sized to g, with Valid defaulted to
// true for every vertex (spec.md §3: "valid flag, for incremental" —
// always true outside the incremental layer, SPEC_FULL.md §4.9).
func NewScratch(g *Graph) *Scratch {
	s := &Scratch{
		edgeUsed: make([]bool, len(g.Edges)),
		vertMap:  make([]int, len(g.Vertices)),
		valid:    make([]bool, len(g.Vertices)),
	}
	for i := range s.vertMap {
		s.vertMap[i] = -1
		s.valid[i] = true
	}

	return s
}

// EdgeUsed reports whether edge e is marked used.
func (s *Scratch) EdgeUsed(e int) bool { return s.edgeUsed[e] }

// SetEdgeUsed marks edge e used or unused.
func (s *Scratch) SetEdgeUsed(e int, used bool) { s.edgeUsed[e] = used }

// VertexMap returns the SUB-vertex remap target of vertex v, or -1 if
// unset.
func (s *Scratch) VertexMap(v int) int { return s.vertMap[v] }

// SetVertexMap records the SUB-vertex remap target of vertex v.
func (s *Scratch) SetVertexMap(v, target int) { s.vertMap[v] = target }

// Valid reports whether vertex v is valid (always true outside the
// incremental layer).
func (s *Scratch) Valid(v int) bool { return s.valid[v] }

// ResetEdges clears every edge's used flag. Equivalent to discarding
// and reallocating the edgeUsed slice, exposed as a named operation so
// call sites documenting the flag-hygiene contract (spec.md §8) read
// clearly.
func (s *Scratch) ResetEdges() {
	for i := range s.edgeUsed {
		s.edgeUsed[i] = false
	}
}
