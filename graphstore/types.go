// Package graphstore is the flat-array graph representation the
// discovery engine operates on: vertices and edges are addressed by
// their position (an int index), not by an identifier string, and
// adjacency is a slice of edge-index slices rather than a map.
//
// This mirrors spec.md §3's data model directly: "flat arrays of
// vertices/edges with adjacency by index; labels interned in a label
// table." The locking discipline and functional-option constructors
// keep the shape of the teacher's core.Graph; the storage
// representation does not, because the spec requires index
// addressing (needed so Instance vertex/edge lists can be plain sorted
// []int slices, per spec.md §3's Instance definition).
package graphstore

import "sync"

// Vertex is a single graph vertex. Its position in Graph.Vertices is
// its identity; Vertex itself carries no index field.
type Vertex struct {
	// Label is the index into the run's label.Table.
	Label int
}

// Edge connects two vertices by their Graph.Vertices index.
type Edge struct {
	// Src and Tgt are vertex indices.
	Src, Tgt int
	// Label is the index into the run's label.Table.
	Label int
	// Directed marks this edge as one-way (Src -> Tgt only).
	Directed bool
	// SpansIncrement marks a boundary edge in the incremental mode
	// (spec.md §3); never read or written by this repository's core,
	// carried only so the struct shape need not migrate if an
	// incremental layer is added later (SPEC_FULL.md §4.9).
	SpansIncrement bool
}

// GraphOption configures a Graph at construction time, following the
// teacher's core.GraphOption idiom.
type GraphOption func(*Graph)

// WithVertexCapacity preallocates room for n vertices.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) { g.Vertices = make([]Vertex, 0, n) }
}

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		g.Edges = make([]Edge, 0, n)
		g.adj = make([][]int, 0, n)
	}
}

// Graph is an ordered sequence of vertices and edges, each addressed
// by its position, plus adjacency (edge indices incident to each
// vertex, self-loops stored once).
//
// Graph is immutable from the discoverer's point of view once built,
// except for transient state, which never lives on Graph itself — see
// Scratch.
type Graph struct {
	mu sync.RWMutex

	Vertices []Vertex
	Edges    []Edge

	// adj[v] holds, in insertion order, the indices of edges incident
	// to vertex v (a self-loop appears once, not twice).
	adj [][]int
}

// NewGraph returns an empty graph, applying opts in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Size returns #vertices + #edges, as used by spec.md §4.1.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.Vertices) + len(g.Edges)
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.Vertices)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.Edges)
}
