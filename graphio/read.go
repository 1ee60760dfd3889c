// Package graphio implements the contract-only input/output layer of
// spec.md §6: the line-oriented XP/XN/v/d/u/e graph grammar, its
// S-prefixed predefined-pattern variant, and the matching writers.
// Nothing in this package makes a discovery decision; it only moves
// bytes into and out of the data model of graphstore/label/discover.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

// blockReader holds the state shared by ReadGraphs and ReadPredefined:
// a scanner, the current example's vertex-id namespace (ids restart at
// 1 per example, spec.md §6), and the undirected switch the `e` token
// delegates to.
type blockReader struct {
	scanner    *bufio.Scanner
	lineNo     int
	labels     *label.Table
	undirected bool

	localID  map[int]int
	nextWant int
}

func newBlockReader(r io.Reader, labels *label.Table, undirected bool) *blockReader {
	return &blockReader{
		scanner:    bufio.NewScanner(r),
		labels:     labels,
		undirected: undirected,
		localID:    map[int]int{},
		nextWant:   1,
	}
}

func (b *blockReader) resetBlock() {
	b.localID = map[int]int{}
	b.nextWant = 1
}

// vertexLine parses a "v <id> <label>" line into cur, enforcing the
// previous-max+1 id sequence.
func (b *blockReader) vertexLine(cur *graphstore.Graph, toks []string) error {
	if cur == nil {
		return &ParseError{b.lineNo, "vertex line outside any example block"}
	}
	if len(toks) != 3 {
		return &ParseError{b.lineNo, "malformed vertex line, want: v <id> <label>"}
	}

	id, err := strconv.Atoi(toks[1])
	if err != nil {
		return &ParseError{b.lineNo, fmt.Sprintf("invalid vertex id %q", toks[1])}
	}
	if id != b.nextWant {
		return &ParseError{b.lineNo, fmt.Sprintf("vertex id %d out of sequence, want %d", id, b.nextWant)}
	}

	lbl, err := parseLabel(toks[2])
	if err != nil {
		return &ParseError{b.lineNo, fmt.Sprintf("invalid label %q: %v", toks[2], err)}
	}

	b.localID[id] = cur.AddVertex(b.labels.Intern(lbl))
	b.nextWant++

	return nil
}

// edgeLine parses a "d|u|e <src> <tgt> <label>" line into cur.
func (b *blockReader) edgeLine(cur *graphstore.Graph, kind string, toks []string) error {
	if cur == nil {
		return &ParseError{b.lineNo, "edge line outside any example block"}
	}
	if len(toks) != 4 {
		return &ParseError{b.lineNo, "malformed edge line, want: " + kind + " <src> <tgt> <label>"}
	}

	srcID, err1 := strconv.Atoi(toks[1])
	tgtID, err2 := strconv.Atoi(toks[2])
	if err1 != nil || err2 != nil {
		return &ParseError{b.lineNo, fmt.Sprintf("invalid edge endpoints %q %q", toks[1], toks[2])}
	}

	src, ok1 := b.localID[srcID]
	tgt, ok2 := b.localID[tgtID]
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: line %d", ErrUndefinedVertex, b.lineNo)
	}

	lbl, err := parseLabel(toks[3])
	if err != nil {
		return &ParseError{b.lineNo, fmt.Sprintf("invalid label %q: %v", toks[3], err)}
	}

	directed := kind == "d" || (kind == "e" && !b.undirected)
	cur.AddEdge(src, tgt, b.labels.Intern(lbl), directed, false)

	return nil
}

// ReadGraphs parses the XP/XN/v/d/u/e grammar of spec.md §6 into a
// positive and (if any XN block is present) negative graph, interning
// every label into a freshly allocated label.Table. undirected
// resolves the `e` token's run-time directedness switch.
//
// pos and/or neg are nil if the input never opens the corresponding
// block. A malformed line returns a line-numbered *ParseError; an edge
// naming an undeclared vertex returns an error wrapping
// ErrUndefinedVertex.
func ReadGraphs(r io.Reader, undirected bool) (pos, neg *graphstore.Graph, labels *label.Table, err error) {
	labels = label.NewTable()
	b := newBlockReader(r, labels, undirected)

	var cur *graphstore.Graph

	for b.scanner.Scan() {
		b.lineNo++
		toks := tokenize(stripComment(b.scanner.Text()))
		if len(toks) == 0 {
			continue
		}

		switch toks[0] {
		case "XP":
			if pos == nil {
				pos = graphstore.NewGraph()
			}
			cur = pos
			b.resetBlock()
		case "XN":
			if neg == nil {
				neg = graphstore.NewGraph()
			}
			cur = neg
			b.resetBlock()
		case "v":
			if err := b.vertexLine(cur, toks); err != nil {
				return pos, neg, labels, err
			}
		case "d", "u", "e":
			if err := b.edgeLine(cur, toks[0], toks); err != nil {
				return pos, neg, labels, err
			}
		default:
			return pos, neg, labels, &ParseError{b.lineNo, fmt.Sprintf("unknown token %q", toks[0])}
		}
	}
	if serr := b.scanner.Err(); serr != nil {
		return pos, neg, labels, serr
	}

	return pos, neg, labels, nil
}

// ReadPredefined parses the S-prefixed predefined-subs grammar of
// spec.md §6 into a list of pattern graphs, interning labels into the
// caller-supplied table (shared with the host graphs they will be
// matched against).
func ReadPredefined(r io.Reader, labels *label.Table, undirected bool) ([]*graphstore.Graph, error) {
	b := newBlockReader(r, labels, undirected)

	var patterns []*graphstore.Graph
	var cur *graphstore.Graph

	for b.scanner.Scan() {
		b.lineNo++
		toks := tokenize(stripComment(b.scanner.Text()))
		if len(toks) == 0 {
			continue
		}

		switch toks[0] {
		case "S":
			cur = graphstore.NewGraph()
			patterns = append(patterns, cur)
			b.resetBlock()
		case "v":
			if err := b.vertexLine(cur, toks); err != nil {
				return patterns, err
			}
		case "d", "u", "e":
			if err := b.edgeLine(cur, toks[0], toks); err != nil {
				return patterns, err
			}
		default:
			return patterns, &ParseError{b.lineNo, fmt.Sprintf("unknown token %q", toks[0])}
		}
	}
	if serr := b.scanner.Err(); serr != nil {
		return patterns, serr
	}

	return patterns, nil
}
