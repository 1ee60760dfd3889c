// Package eval scores a candidate substructure by minimum-description-
// length compression ratio or by set-cover of the positive examples
// (spec.md §4.4).
package eval

import "math"

// log2 is math.Log2 spelled out for readability at call sites that
// read like the closed-form bit-count formulas of spec.md §4.4.
func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return math.Log2(x)
}

// log2Factorial returns log2(n!), computed via the natural-log gamma
// function (ln(n!) = lgamma(n+1)) and converted to base 2. Used for
// the "log₂ of factorials for multi-edges" term of spec.md §4.4: when
// m parallel edges share an (endpoint-pair, label) bucket, their
// relative order is redundant information, and log2(m!) bits are
// saved versus encoding them as a distinguishable sequence.
func log2Factorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	lg, _ := math.Lgamma(float64(n) + 1)

	return lg / math.Ln2
}

// log2Choose returns log2(C(n, k)), the bits needed to pick an
// unordered k-subset of n items. DescriptionLength does not call it;
// it prices edge endpoints with log2 of the vertex count instead.
func log2Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	lgN, _ := math.Lgamma(float64(n) + 1)
	lgK, _ := math.Lgamma(float64(k) + 1)
	lgNK, _ := math.Lgamma(float64(n-k) + 1)

	return (lgN - lgK - lgNK) / math.Ln2
}

// GraphStats is the minimal shape DescriptionLength needs: vertex and
// edge counts plus, per (endpoints, label, direction) bucket, the
// multiplicity, so multi-edges can be priced via log2Factorial.
type GraphStats struct {
	NumVertices int
	NumEdges    int
	NumLabels   int
	// Multiplicities holds, for every group of parallel edges sharing
	// an (endpoint pair, label, direction) key, the size of that group;
	// the pair is ordered for directed edges, unordered for undirected. A graph with no parallel edges has all entries 1.
	Multiplicities []int
}

// DescriptionLength computes DL(G, |L|): the closed-form bit count
// over vertex count, edge count, per-vertex label bits, and per-edge
// (label, direction, endpoints) bits, corrected for multi-edges via
// log2Factorial (spec.md §4.4).
func DescriptionLength(s GraphStats) float64 {
	if s.NumLabels < 1 {
		s.NumLabels = 1
	}

	bits := log2(float64(s.NumVertices + 1))
	bits += log2(float64(s.NumEdges + 1))
	bits += float64(s.NumVertices) * log2(float64(s.NumLabels))

	// Each edge names its two endpoints (log2 of the vertex count bits
	// each), a label, and a direction bit. Parallel edges in one bucket
	// need no order among themselves — corrected below.
	perEdge := 2*log2(float64(s.NumVertices)) + log2(float64(s.NumLabels)) + 1
	bits += float64(s.NumEdges) * perEdge

	for _, m := range s.Multiplicities {
		bits -= log2Factorial(m)
	}

	return bits
}
