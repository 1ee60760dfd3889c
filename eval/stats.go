package eval

import "github.com/gromgull/subdue-sub001/graphstore"

// StatsOf derives the GraphStats DescriptionLength needs from a
// concrete graph: vertex/edge counts and the multiplicity of every
// (endpoints, label, direction) bucket, endpoints unordered only for
// undirected edges.
func StatsOf(g *graphstore.Graph, numLabels int) GraphStats {
	buckets := make(map[[4]int]int)
	for _, e := range g.Edges {
		key := bucketKey(e.Src, e.Tgt, e.Label, e.Directed)
		buckets[key]++
	}

	mult := make([]int, 0, len(buckets))
	for _, m := range buckets {
		mult = append(mult, m)
	}

	return GraphStats{
		NumVertices:    g.NumVertices(),
		NumEdges:       g.NumEdges(),
		NumLabels:      numLabels,
		Multiplicities: mult,
	}
}

func bucketKey(src, tgt, lbl int, directed bool) [4]int {
	d := 0
	if directed {
		d = 1
	} else if src > tgt {
		src, tgt = tgt, src
	}

	return [4]int{src, tgt, lbl, d}
}
