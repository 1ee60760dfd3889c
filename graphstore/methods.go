package graphstore

// AddVertex appends a vertex with the given label index and returns
// its new index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(labelIdx int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{Label: labelIdx})
	g.adj = append(g.adj, nil)

	return idx
}

// AddEdge appends an edge from src to tgt and registers it in the
// adjacency of both endpoints (once only, if src == tgt). Returns the
// new edge's index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, tgt, labelIdx int, directed, spansIncrement bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{
		Src: src, Tgt: tgt, Label: labelIdx,
		Directed: directed, SpansIncrement: spansIncrement,
	})

	g.adj[src] = append(g.adj[src], idx)
	if tgt != src {
		g.adj[tgt] = append(g.adj[tgt], idx)
	}

	return idx
}

// Incident returns the edge indices incident to vertex v, in
// insertion order. The returned slice aliases internal storage and
// must not be mutated by the caller.
func (g *Graph) Incident(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v]
}

// Other returns the endpoint of edge e that is not v (for a self-loop,
// returns v itself).
func (g *Graph) Other(e, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge := g.Edges[e]
	if edge.Src == v {
		return edge.Tgt
	}

	return edge.Src
}

// Clone returns a deep copy of g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		Vertices: append([]Vertex(nil), g.Vertices...),
		Edges:    append([]Edge(nil), g.Edges...),
		adj:      make([][]int, len(g.adj)),
	}
	for i, a := range g.adj {
		clone.adj[i] = append([]int(nil), a...)
	}

	return clone
}
