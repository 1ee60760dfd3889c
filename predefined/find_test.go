package predefined

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

func twoTriangles(t *testing.T) (*graphstore.Graph, *label.Table, int, int) {
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

	return g, labels, a, x
}

func TestFind_SingleEdgePatternMatchesEverySuchEdge(t *testing.T) {
	host, labels, a, x := twoTriangles(t)

	pattern := graphstore.NewGraph()
	p0 := pattern.AddVertex(a)
	p1 := pattern.AddVertex(a)
	pattern.AddEdge(p0, p1, x, true, false)

	results := Find(host, pattern, labels, nil, 0, false)
	assert.Len(t, results, 6)
}

func TestFind_TrianglePatternNonOverlapFiltering(t *testing.T) {
	host, labels, a, x := twoTriangles(t)

	pattern := graphstore.NewGraph()
	p := make([]int, 3)
	for i := range p {
		p[i] = pattern.AddVertex(a)
	}
	pattern.AddEdge(p[0], p[1], x, true, false)
	pattern.AddEdge(p[1], p[2], x, true, false)
	pattern.AddEdge(p[2], p[0], x, true, false)

	all := Find(host, pattern, labels, nil, 0, false)
	require.Greater(t, len(all), 2) // every rotation of every triangle matches

	filtered := Find(host, pattern, labels, nil, 0, true)
	assert.Len(t, filtered, 2) // the two triangles do not share any vertex
}

func TestFind_NoMatchWhenPatternAbsent(t *testing.T) {
	host, labels, a, _ := twoTriangles(t)

	absentLabel := labels.Intern(label.NewString("absent"))
	pattern := graphstore.NewGraph()
	pv := pattern.AddVertex(a)
	pw := pattern.AddVertex(a)
	pattern.AddEdge(pv, pw, absentLabel, true, false)

	results := Find(host, pattern, labels, nil, 0, false)
	assert.Empty(t, results)
}
