package discover

import (
	"sort"

	"github.com/gromgull/subdue-sub001/eval"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/instance"
	"github.com/gromgull/subdue-sub001/label"
)

// BuildRecursive implements the recursion step of spec.md §4.5 point
// 4: it detects
// whether at least two of sub's instances are connected, in the host
// graph, by an edge that belongs to neither instance (spec.md's open
// question on the recursive connecting-edge invariant, resolved
// permissively here: any such edge qualifies, regardless of which
// vertex role on either side it attaches to), then fuses every
// transitively-connected chain of instances with instance.Union plus
// the connecting edges themselves into one candidate recursive
// substructure, evaluates it with opts.Eval, and keeps it in place of
// sub's original definition/instances if it scores higher.
//
// sub.Recursive and sub.RecurEdgeLabel are set whenever a connecting
// edge is found, independent of whether the fused candidate wins.
// Links are fused whatever their edge label: RecurEdgeLabel is the
// label of the first link found, a chain may mix labels, and a label
// already used by another recursive substructure is not excluded.
func BuildRecursive(host *graphstore.Graph, sub *Substructure, labels *label.Table, opts Options) {
	opts = opts.withDefaults()

	links := findConnectingLinks(host, sub.Positive)
	if len(links) == 0 {
		return
	}

	sub.Recursive = true
	sub.RecurEdgeLabel = host.Edges[links[0].edge].Label

	chains, chainEdges := fuseChains(sub.Positive, links)
	if len(chains) == 0 {
		return
	}

	var bestDef *graphstore.Graph
	var bestPositive []*instance.Instance
	bestValue := sub.Value

	for i, merged := range chains {
		merged.Edges = mergeEdgeIDs(merged.Edges, chainEdges[i])
		def := merged.ToGraph(host)
		positive := []*instance.Instance{merged}
		value := opts.Eval(eval.Candidate{
			Host:       host,
			Labels:     labels,
			Definition: def,
			Positive:   positive,
		})
		if value > bestValue {
			bestValue = value
			bestDef = def
			bestPositive = positive
		}
	}

	if bestDef != nil {
		sub.Definition = bestDef
		sub.Positive = bestPositive
		sub.Value = bestValue
	}
}

// connectingLink records that instance i and instance j are joined by
// host edge `edge`, which belongs to neither.
type connectingLink struct {
	i, j, edge int
}

// findConnectingLinks reports every pair of instances joined by an
// edge not contained in either, searching in index order so the first
// link found (and hence sub.RecurEdgeLabel) is deterministic.
func findConnectingLinks(host *graphstore.Graph, insts []*instance.Instance) []connectingLink {
	sets := make([]map[int]bool, len(insts))
	for i, inst := range insts {
		m := make(map[int]bool, len(inst.Vertices))
		for _, v := range inst.Vertices {
			m[v] = true
		}
		sets[i] = m
	}

	var links []connectingLink
	for i, a := range insts {
		for j := i + 1; j < len(insts); j++ {
			if e, ok := connectingEdge(host, a, sets[j]); ok {
				links = append(links, connectingLink{i, j, e})
				continue
			}
			if e, ok := connectingEdge(host, insts[j], sets[i]); ok {
				links = append(links, connectingLink{i, j, e})
			}
		}
	}

	return links
}

// connectingEdge returns the first host edge incident to a vertex of
// a and to a vertex in bSet.
func connectingEdge(host *graphstore.Graph, a *instance.Instance, bSet map[int]bool) (int, bool) {
	for _, v := range a.Vertices {
		for _, e := range host.Incident(v) {
			other := host.Other(e, v)
			if bSet[other] {
				return e, true
			}
		}
	}

	return 0, false
}

// fuseChains groups insts into their transitively-connected components
// (via union-find over links) and fuses each component of size >= 2
// into one instance with instance.Union, in deterministic component
// order (first member's original index). It returns the fused
// instances alongside, per fused instance, the connecting edge ids
// internal to that component.
func fuseChains(insts []*instance.Instance, links []connectingLink) ([]*instance.Instance, [][]int) {
	parent := make([]int, len(insts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, l := range links {
		union(l.i, l.j)
	}

	var rootOrder []int
	seenRoot := make(map[int]bool, len(insts))
	members := make(map[int][]*instance.Instance, len(insts))
	for i, inst := range insts {
		root := find(i)
		if !seenRoot[root] {
			seenRoot[root] = true
			rootOrder = append(rootOrder, root)
		}
		members[root] = append(members[root], inst)
	}

	edgesByRoot := make(map[int][]int, len(insts))
	for _, l := range links {
		root := find(l.i)
		edgesByRoot[root] = append(edgesByRoot[root], l.edge)
	}

	var chains []*instance.Instance
	var chainEdges [][]int
	for _, root := range rootOrder {
		chain := members[root]
		if len(chain) < 2 {
			continue
		}

		merged := chain[0]
		for i := 1; i < len(chain); i++ {
			merged = instance.Union(merged, chain[i])
		}

		chains = append(chains, merged)
		chainEdges = append(chainEdges, edgesByRoot[root])
	}

	return chains, chainEdges
}

// mergeEdgeIDs returns the sorted, deduplicated union of base and
// extra, used to fold the connecting edges themselves into a fused
// instance's edge list (instance.Union only merges what each instance
// already carries, never the edge joining them).
func mergeEdgeIDs(base, extra []int) []int {
	seen := make(map[int]bool, len(base)+len(extra))
	out := make([]int, 0, len(base)+len(extra))
	for _, e := range base {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	for _, e := range extra {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	sort.Ints(out)

	return out
}

// NewSubstructureFromInstance builds the substructure whose sole
// instance is inst, its definition the induced subgraph ToGraph
// produces. Treated as an identity conversion (spec.md §9's open
// question on CreateSubFromInstance) until a concrete divergence is
// specified.
func NewSubstructureFromInstance(host *graphstore.Graph, inst *instance.Instance) *Substructure {
	return &Substructure{
		Definition: inst.ToGraph(host),
		Positive:   []*instance.Instance{inst},
	}
}
