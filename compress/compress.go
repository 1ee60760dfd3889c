// Package compress implements the compression transform of spec.md
// §4.6: given a host graph and an instance list, it rewrites every
// instance occurrence into a single SUB placeholder vertex, emitting
// OVERLAP edges and duplicated external edges where instances share a
// host vertex.
package compress

import (
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
)

// plan is the shared bookkeeping Compress and CompressedSize both
// need: which host vertices/edges are internal to some instance, which
// instance(s) each shared vertex belongs to, and the overlap/duplicate
// edges those shared vertices require.
type plan struct {
	vertexOwner map[int][]int // host vertex -> instance indices containing it
	innerVertex map[int]bool  // host vertex belongs to >=1 instance
	innerEdge   map[int]bool  // host edge belongs to >=1 instance (both endpoints inside it)

	// overlapPairs holds one entry per unordered pair of instances that
	// share at least one host vertex (spec.md §4.6: "once per pair of
	// instances").
	overlapPairs [][2]int

	// duplicates holds one entry per external edge that must be
	// re-attached to another instance's SUB vertex because its host
	// endpoint is shared.
	duplicates []dupEdge
}

type dupEdge struct {
	hostEdge    int
	fromInst    int
	toInst      int
	selfLoopAt  int // -1 unless this duplicate is itself a self-loop on the target SUB
	alsoBackEdg bool
}

func buildPlan(host *graphstore.Graph, insts []*instance.Instance) *plan {
	p := &plan{
		vertexOwner: make(map[int][]int),
		innerVertex: make(map[int]bool),
		innerEdge:   make(map[int]bool),
	}

	for i, inst := range insts {
		for _, v := range inst.Vertices {
			p.vertexOwner[v] = append(p.vertexOwner[v], i)
			p.innerVertex[v] = true
		}
		for _, e := range inst.Edges {
			p.innerEdge[e] = true
		}
	}

	// Overlap pairs: any host vertex owned by >1 instance links every
	// pair of those instances.
	seenPair := make(map[[2]int]bool)
	for _, owners := range p.vertexOwner {
		if len(owners) < 2 {
			continue
		}
		for i := 0; i < len(owners); i++ {
			for j := i + 1; j < len(owners); j++ {
				key := [2]int{owners[i], owners[j]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if !seenPair[key] {
					seenPair[key] = true
					p.overlapPairs = append(p.overlapPairs, key)
				}
			}
		}
	}

	// Duplicate edges: any edge touching a shared vertex, whose
	// treatment depends on whether it is internal or external to the
	// instances it touches (spec.md §4.6's three sub-cases).
	for e := range host.Edges {
		edge := host.Edges[e]
		srcOwners := p.vertexOwner[edge.Src]
		tgtOwners := p.vertexOwner[edge.Tgt]
		if len(srcOwners) == 0 && len(tgtOwners) == 0 {
			continue
		}

		switch {
		case edge.Src == edge.Tgt:
			// Self-loop touching a shared vertex: emit a self-loop on
			// every other instance owning that vertex; if directed,
			// additionally emit a back-edge between the SUBs.
			for _, owner := range srcOwners {
				for _, other := range srcOwners {
					if other == owner {
						continue
					}
					p.duplicates = append(p.duplicates, dupEdge{
						hostEdge: e, fromInst: owner, toInst: other,
						selfLoopAt: other, alsoBackEdg: edge.Directed,
					})
				}
			}
		case p.innerEdge[e] && len(srcOwners) > 0 && len(tgtOwners) > 0:
			// Inside-to-inside: both endpoints internal. Emit an edge
			// between the owning SUBs for every cross pair of owners.
			for _, so := range srcOwners {
				for _, to := range tgtOwners {
					if so == to {
						continue
					}
					p.duplicates = append(p.duplicates, dupEdge{hostEdge: e, fromInst: so, toInst: to, selfLoopAt: -1})
				}
			}
		default:
			// Edge crosses from inside one instance to outside it (or
			// connects two instances via a non-internal edge): for each
			// owner of a shared endpoint, emit a duplicate attaching
			// the far side to that owner's SUB.
			for _, owner := range srcOwners {
				if !p.innerVertex[edge.Tgt] || len(tgtOwners) == 0 {
					p.duplicates = append(p.duplicates, dupEdge{hostEdge: e, fromInst: owner, toInst: owner, selfLoopAt: -1})
				}
			}
			for _, owner := range tgtOwners {
				if !p.innerVertex[edge.Src] || len(srcOwners) == 0 {
					p.duplicates = append(p.duplicates, dupEdge{hostEdge: e, fromInst: owner, toInst: owner, selfLoopAt: -1})
				}
			}
		}
	}

	return p
}

// CompressedSize returns the vertex/edge count of Compress's output
// without building it, per spec.md §4.6's shortcut formula:
// |V(G)|+|E(G)| − Σ unique V,E in instances + |I*| (one SUB per
// instance) + number of overlap+duplicate edges. Used by the MDL
// evaluator, which only needs the size, not the graph itself.
func CompressedSize(host *graphstore.Graph, insts []*instance.Instance) (vertices, edges int) {
	p := buildPlan(host, insts)

	vertices = host.NumVertices() - len(p.innerVertex) + len(insts)
	edges = host.NumEdges() - len(p.innerEdge) + len(p.overlapPairs) + len(p.duplicates)

	return vertices, edges
}

// Compress rewrites host by replacing every instance in insts with a
// SUB placeholder vertex (layout: the first len(insts) vertices of the
// result are the SUB vertices, in instance-list order), copying over
// vertices and edges not belonging to any instance, and emitting
// OVERLAP/duplicate edges per spec.md §4.6.
//
// Compressing by a zero-instance list returns a graph equal to the
// input (spec.md §8's idempotence property).
func Compress(host *graphstore.Graph, labels *label.Table, insts []*instance.Instance, subLabel, overlapLabel int) *graphstore.Graph {
	if len(insts) == 0 {
		return host.Clone()
	}

	p := buildPlan(host, insts)
	out := graphstore.NewGraph()

	// scratch.VertexMap records, for every host vertex, its remap
	// target in out: either the out-graph copy of an outside-all-
	// instances vertex, or the SUB vertex of the instance that owns it.
	scratch := graphstore.NewScratch(host)

	subVertex := make([]int, len(insts))
	for i := range insts {
		subVertex[i] = out.AddVertex(subLabel)
	}

	for v := 0; v < host.NumVertices(); v++ {
		if p.innerVertex[v] {
			// A shared vertex may belong to several instances; pick the
			// first owner deterministically (instance-list order) as
			// the canonical attachment point for non-duplicate copies.
			owners := p.vertexOwner[v]
			scratch.SetVertexMap(v, subVertex[owners[0]])
			continue
		}
		scratch.SetVertexMap(v, out.AddVertex(host.Vertices[v].Label))
	}

	resolve := func(hostVertex int) (int, bool) {
		target := scratch.VertexMap(hostVertex)
		if target < 0 {
			return 0, false
		}

		return target, true
	}

	for e := 0; e < host.NumEdges(); e++ {
		if p.innerEdge[e] {
			continue
		}
		edge := host.Edges[e]
		src, ok1 := resolve(edge.Src)
		tgt, ok2 := resolve(edge.Tgt)
		if !ok1 || !ok2 {
			continue
		}
		out.AddEdge(src, tgt, edge.Label, edge.Directed, false)
	}

	for _, pair := range p.overlapPairs {
		out.AddEdge(subVertex[pair[0]], subVertex[pair[1]], overlapLabel, false, false)
	}

	for _, d := range p.duplicates {
		edge := host.Edges[d.hostEdge]
		from, to := subVertex[d.fromInst], subVertex[d.toInst]
		if d.selfLoopAt >= 0 {
			out.AddEdge(subVertex[d.selfLoopAt], subVertex[d.selfLoopAt], edge.Label, edge.Directed, false)
			if d.alsoBackEdg {
				out.AddEdge(from, to, edge.Label, edge.Directed, false)
			}
			continue
		}
		out.AddEdge(from, to, edge.Label, edge.Directed, false)
	}

	return out
}
