package graphio

import (
	"fmt"
	"io"

	"github.com/gromgull/subdue-sub001/discover"
	"github.com/gromgull/subdue-sub001/graphstore"
	"github.com/gromgull/subdue-sub001/label"
)

// WriteGraph writes g in the grammar of spec.md §6, headed by an "XP"
// block token, resolving every label through labels.
func WriteGraph(w io.Writer, g *graphstore.Graph, labels *label.Table) error {
	return writeBlock(w, "XP", g, labels)
}

// WriteSubstructures writes subs as a substructures file (spec.md §6):
// each substructure's definition graph in the graph grammar, headed by
// an "S" token instead of "XP"/"XN".
func WriteSubstructures(w io.Writer, subs []*discover.Substructure, labels *label.Table) error {
	for _, sub := range subs {
		if err := writeBlock(w, "S", sub.Definition, labels); err != nil {
			return err
		}
	}

	return nil
}

func writeBlock(w io.Writer, header string, g *graphstore.Graph, labels *label.Table) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for v, vert := range g.Vertices {
		if _, err := fmt.Fprintf(w, "v %d %s\n", v+1, labels.At(vert.Label).String()); err != nil {
			return err
		}
	}

	for _, e := range g.Edges {
		kind := "u"
		if e.Directed {
			kind = "d"
		}
		if _, err := fmt.Fprintf(w, "%s %d %d %s\n", kind, e.Src+1, e.Tgt+1, labels.At(e.Label).String()); err != nil {
			return err
		}
	}

	return nil
}
