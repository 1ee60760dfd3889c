package graphio

import (
	"errors"
	"fmt"
)

// ErrUndefinedVertex marks an edge line referencing a vertex id that
// was never declared in the current example block (spec.md §7's
// semantic-reference failure).
var ErrUndefinedVertex = errors.New("graphio: edge references undefined vertex")

// ParseError is a line-numbered input-parse failure (spec.md §7):
// unknown token, malformed vertex/edge line, or a numeric/quoted-label
// parse error.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("graphio: line %d: %s", e.Line, e.Msg)
}
