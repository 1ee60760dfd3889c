package main

import (
	"fmt"
	"io"

	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

// writeDOT dumps g as a Graphviz digraph, purely for visual inspection
// of the -dot flag's output; it has no bearing on discovery itself.
func writeDOT(w io.Writer, g *graphstore.Graph, labels *label.Table) error {
	if _, err := fmt.Fprintln(w, "digraph substructure {"); err != nil {
		return err
	}

	for i, v := range g.Vertices {
		if _, err := fmt.Fprintf(w, "  n%d [label=%q];\n", i, labels.At(v.Label).String()); err != nil {
			return err
		}
	}

	for _, e := range g.Edges {
		arrow := "->"
		if !e.Directed {
			arrow = "--"
		}
		if _, err := fmt.Fprintf(w, "  n%d %s n%d [label=%q];\n", e.Src, arrow, e.Tgt, labels.At(e.Label).String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
