package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gromgull/subdue-sub001/graphstore"
)

// triangle builds a 3-vertex, 3-edge directed triangle: 0->1->2->0.
func triangle() *graphstore.Graph {
	g := graphstore.NewGraph()
	a := g.AddVertex(0)
	b := g.AddVertex(0)
	c := g.AddVertex(0)
	g.AddEdge(a, b, 1, true, false)
	g.AddEdge(b, c, 1, true, false)
	g.AddEdge(c, a, 1, true, false)

	return g
}

func TestExtend_SeedProducesOneEdgeInstances(t *testing.T) {
	g := triangle()
	scratch := graphstore.NewScratch(g)

	seed := NewSeed(0)
	exts := Extend(seed, g, scratch)

	require.Len(t, exts, 2, "vertex 0 has two incident edges (out to 1, in from 2)")
	for _, e := range exts {
		assert.Len(t, e.Vertices, 2)
		assert.Len(t, e.Edges, 1)
		assert.NotEqual(t, NoPos, e.NewVertex)
		assert.NotEqual(t, NoPos, e.NewEdge)
	}
}

func TestExtend_SortedInvariant(t *testing.T) {
	g := triangle()
	scratch := graphstore.NewScratch(g)

	seed := NewSeed(1)
	for _, e := range Extend(seed, g, scratch) {
		assert.True(t, isSorted(e.Vertices), "Vertices not sorted: %v", e.Vertices)
		assert.True(t, isSorted(e.Edges), "Edges not sorted: %v", e.Edges)
	}
}

func TestExtend_FlagHygiene(t *testing.T) {
	g := triangle()
	scratch := graphstore.NewScratch(g)

	seed := NewSeed(0)
	Extend(seed, g, scratch)

	for e := 0; e < g.NumEdges(); e++ {
		assert.False(t, scratch.EdgeUsed(e), "edge %d left marked used after Extend", e)
	}
}

func TestExtend_NoNewVertexWhenClosingCycle(t *testing.T) {
	g := triangle()
	scratch := graphstore.NewScratch(g)

	// Grow 0 -> {0,1} via edge 0, then {0,1} -> {0,1,2} via edge 1.
	seed := NewSeed(0)
	step1 := Extend(seed, g, scratch)[0]
	step2 := Extend(step1, g, scratch)

	var closed *Instance
	for _, c := range step2 {
		if len(c.Vertices) == 3 {
			closed = c
		}
	}
	require.NotNil(t, closed)

	// One more extension should be able to close the triangle without
	// adding a new vertex.
	step3 := Extend(closed, g, scratch)
	foundClosure := false
	for _, c := range step3 {
		if len(c.Vertices) == 3 && len(c.Edges) == 3 {
			foundClosure = true
			assert.Equal(t, NoPos, c.NewVertex)
		}
	}
	assert.True(t, foundClosure, "expected a closure extension with 3 vertices / 3 edges")
}

func TestOverlap(t *testing.T) {
	a := &Instance{Vertices: []int{0, 1}}
	b := &Instance{Vertices: []int{1, 2}}
	c := &Instance{Vertices: []int{2, 3}}

	assert.True(t, Overlap(a, b))
	assert.False(t, Overlap(a, c))
}

func TestEqual(t *testing.T) {
	a := &Instance{Vertices: []int{0, 1}, Edges: []int{0}}
	b := &Instance{Vertices: []int{0, 1}, Edges: []int{0}}
	c := &Instance{Vertices: []int{0, 2}, Edges: []int{1}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestUnion_DedupsAndSorts(t *testing.T) {
	a := &Instance{Vertices: []int{0, 1}, Edges: []int{0}}
	b := &Instance{Vertices: []int{1, 2}, Edges: []int{0, 1}}

	u := Union(a, b)
	assert.Equal(t, []int{0, 1, 2}, u.Vertices)
	assert.Equal(t, []int{0, 1}, u.Edges)
}

func TestToGraph_RoundTripShape(t *testing.T) {
	g := triangle()
	inst := &Instance{Vertices: []int{0, 1}, Edges: []int{0}}

	def := inst.ToGraph(g)
	assert.Equal(t, 2, def.NumVertices())
	assert.Equal(t, 1, def.NumEdges())
}

func isSorted(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] >= xs[i] {
			return false
		}
	}

	return true
}
