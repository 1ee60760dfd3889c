package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
	"github.com/gromgull/subdue-sub001/match"
)

// linearChain builds the undirected alternating a-b chain of spec.md
// §8 scenario 2: four vertices, three "e" edges.
func linearChain(t *testing.T) (*graphstore.Graph, *label.Table) {
	t.Helper()

	labels := label.NewTable()
	a := labels.Intern(label.NewString("a"))
	b := labels.Intern(label.NewString("b"))
	e := labels.Intern(label.NewString("e"))

	g := graphstore.NewGraph()
	v1 := g.AddVertex(a)
	v2 := g.AddVertex(b)
	v3 := g.AddVertex(a)
	v4 := g.AddVertex(b)
	g.AddEdge(v1, v2, e, false, false)
	g.AddEdge(v2, v3, e, false, false)
	g.AddEdge(v3, v4, e, false, false)

	return g, labels
}

// twoTriangles builds a positive graph made of two disjoint directed
// triangles over vertex label "a" and edge label "x" — the textbook
// case of a single substructure with two non-overlapping instances.
func twoTriangles(t *testing.T) (*graphstore.Graph, *label.Table) {
	t.Helper()

	labels := label.NewTable()
	a := labels.Intern(label.NewString("a"))
	x := labels.Intern(label.NewString("x"))

	g := graphstore.NewGraph()
	v := make([]int, 6)
	for i := range v {
		v[i] = g.AddVertex(a)
	}
	g.AddEdge(v[0], v[1], x, true, false)
	g.AddEdge(v[1], v[2], x, true, false)
	g.AddEdge(v[2], v[0], x, true, false)
	g.AddEdge(v[3], v[4], x, true, false)
	g.AddEdge(v[4], v[5], x, true, false)
	g.AddEdge(v[5], v[3], x, true, false)

	return g, labels
}

func TestRun_FindsTriangleAsBestSubstructure(t *testing.T) {
	pos, labels := twoTriangles(t)

	opts := Options{
		BeamWidth:   4,
		MinVertices: 2,
		MaxVertices: 3,
		NumBestSubs: 4,
		Eval:        eval.MDL,
	}

	discovered := Run(pos, nil, labels, opts)
	require.Greater(t, discovered.Len(), 0)

	best := discovered.Items()[0]
	assert.Equal(t, 3, len(best.Definition.Vertices))
	assert.Equal(t, 2, best.PosCount())
}

func TestRun_SubListIsSortedDescending(t *testing.T) {
	pos, labels := twoTriangles(t)

	opts := Options{BeamWidth: 4, MinVertices: 1, NumBestSubs: 10, Eval: eval.MDL}
	discovered := Run(pos, nil, labels, opts)

	for i := 1; i < discovered.Len(); i++ {
		assert.GreaterOrEqual(t, discovered.Items()[i-1].Value, discovered.Items()[i].Value)
	}
}

func TestRun_MaxVerticesBoundsDefinitionSize(t *testing.T) {
	pos, labels := twoTriangles(t)

	opts := Options{BeamWidth: 4, MinVertices: 1, MaxVertices: 2, NumBestSubs: 10, Eval: eval.MDL}
	discovered := Run(pos, nil, labels, opts)

	for _, s := range discovered.Items() {
		assert.LessOrEqual(t, len(s.Definition.Vertices), 2)
	}
}

func TestRun_NegativeGraphPenalizesSharedPattern(t *testing.T) {
	pos, labels := twoTriangles(t)

	neg := graphstore.NewGraph()
	a, _ := labels.Lookup(label.NewString("a"))
	x, _ := labels.Lookup(label.NewString("x"))
	nv := make([]int, 3)
	for i := range nv {
		nv[i] = neg.AddVertex(a)
	}
	neg.AddEdge(nv[0], nv[1], x, true, false)
	neg.AddEdge(nv[1], nv[2], x, true, false)
	neg.AddEdge(nv[2], nv[0], x, true, false)

	opts := Options{BeamWidth: 4, MinVertices: 2, MaxVertices: 3, NumBestSubs: 4, Eval: eval.MDL}

	withoutNeg := Run(pos, nil, labels, opts)
	withNeg := Run(pos, neg, labels, opts)

	require.Greater(t, withoutNeg.Len(), 0)
	require.Greater(t, withNeg.Len(), 0)
	assert.LessOrEqual(t, withNeg.Items()[0].Value, withoutNeg.Items()[0].Value)
}

func TestExtendSub_FlagHygieneLeavesInstancesUnused(t *testing.T) {
	pos, labels := twoTriangles(t)
	opts := Options{BeamWidth: 4, MinVertices: 1, Eval: eval.MDL}.withDefaults()

	beam := seed(pos, nil, labels, opts)
	require.Greater(t, beam.Len(), 0)

	seedSub := beam.Items()[0]
	before := make([]bool, len(seedSub.Positive))
	for i, inst := range seedSub.Positive {
		before[i] = inst.Used
	}

	_ = extendSub(seedSub, pos, nil, labels, opts)

	// extendSub must never mark the parent's own instances used; only
	// instances freshly produced by instance.Extend are claimed.
	for i, inst := range seedSub.Positive {
		assert.Equal(t, before[i], inst.Used)
	}
}

func TestSubList_InsertRespectsMaxCount(t *testing.T) {
	sl := NewSubList(2, 0)
	sl.Insert(&Substructure{Value: 1})
	sl.Insert(&Substructure{Value: 3})
	sl.Insert(&Substructure{Value: 2})

	require.Equal(t, 2, sl.Len())
	assert.Equal(t, 3.0, sl.Items()[0].Value)
	assert.Equal(t, 2.0, sl.Items()[1].Value)
}

func TestSubList_InsertRespectsMaxDistinctValues(t *testing.T) {
	sl := NewSubList(0, 1)
	sl.Insert(&Substructure{Value: 5})
	sl.Insert(&Substructure{Value: 5})
	sl.Insert(&Substructure{Value: 1})

	require.Equal(t, 2, sl.Len())
	for _, s := range sl.Items() {
		assert.Equal(t, 5.0, s.Value)
	}
}

func TestShouldRetire_SkipsSubLabelRename(t *testing.T) {
	labels := label.NewTable()
	subLbl := labels.Intern(label.NewString("SUB_1"))

	def := graphstore.NewGraph()
	def.AddVertex(subLbl)

	sub := &Substructure{
		Definition: def,
		Positive:   []*instance.Instance{instance.NewSeed(0), instance.NewSeed(1)},
	}
	opts := Options{MinVertices: 1, SubLabels: map[int]bool{subLbl: true}}

	assert.False(t, shouldRetire(sub, opts))
}

func TestShouldRetire_RejectsSingleInstanceCandidate(t *testing.T) {
	labels := label.NewTable()
	a := labels.Intern(label.NewString("a"))

	def := graphstore.NewGraph()
	def.AddVertex(a)
	def.AddVertex(a)
	def.AddVertex(a)
	def.AddVertex(a)

	sub := &Substructure{
		Definition: def,
		Positive:   []*instance.Instance{instance.NewSeed(0)},
	}
	opts := Options{MinVertices: 1}

	assert.False(t, shouldRetire(sub, opts))
}

func TestBuildRecursive_ChainedInstancesMarkedRecursive(t *testing.T) {
	labels := label.NewTable()
	a := labels.Intern(label.NewString("a"))
	link := labels.Intern(label.NewString("link"))

	host := graphstore.NewGraph()
	v0 := host.AddVertex(a)
	v1 := host.AddVertex(a)
	host.AddEdge(v0, v1, link, true, false)

	sub := &Substructure{
		Definition: host,
		Positive: []*instance.Instance{
			instance.NewSeed(v0),
			instance.NewSeed(v1),
		},
		Value: -1,
	}

	BuildRecursive(host, sub, labels, Options{Eval: eval.MDL})
	assert.True(t, sub.Recursive)
	assert.Equal(t, link, sub.RecurEdgeLabel)
	require.Equal(t, 1, sub.PosCount())
	assert.ElementsMatch(t, []int{v0, v1}, sub.Positive[0].Vertices)
}

func TestNewSubstructureFromInstance_CopiesInducedDefinition(t *testing.T) {
	pos, _ := twoTriangles(t)

	seedInst := instance.NewSeed(0)
	sub := NewSubstructureFromInstance(pos, seedInst)

	require.Equal(t, 1, len(sub.Definition.Vertices))
	require.Equal(t, 1, sub.PosCount())
}

func TestRun_DiscoveredListHasNoIsomorphicDuplicates(t *testing.T) {
	pos, labels := linearChain(t)

	opts := Options{BeamWidth: 4, MinVertices: 1, MaxVertices: 4, NumBestSubs: 10, Eval: eval.MDL}
	discovered := Run(pos, nil, labels, opts)

	items := discovered.Items()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			res := match.Inexact(items[i].Definition, items[j].Definition, labels, match.DefaultCost, 0, false)
			assert.False(t, res.Matched, "discovered list contains isomorphic duplicates at %d,%d", i, j)
		}
	}
}

func TestRun_LinearChainRejectsSingleInstanceFourVertexCandidate(t *testing.T) {
	pos, labels := linearChain(t)

	opts := Options{BeamWidth: 4, MinVertices: 1, MaxVertices: 4, NumBestSubs: 10, Eval: eval.MDL}
	discovered := Run(pos, nil, labels, opts)

	for _, s := range discovered.Items() {
		if len(s.Definition.Vertices) == 4 {
			assert.Greater(t, s.PosCount(), 1, "a 4-vertex candidate with only one instance must never be retired")
		}
	}
}

func TestIterate_StopsWhenNoFurtherCompressionGain(t *testing.T) {
	pos, labels := twoTriangles(t)

	opts := Options{BeamWidth: 4, MinVertices: 2, MaxVertices: 3, NumBestSubs: 4, Eval: eval.MDL}
	best := Iterate(pos, nil, labels, opts, 3)

	// Pass 2 sees only the two SUB_1 vertices and no edges, so it finds
	// nothing and Iterate stops before the cap of 3 passes.
	assert.Less(t, len(best), 3)
}
