package graphio

import (
	"strconv"
	"strings"

	"github.com/gromgull/subdue-sub001/label"
)

// stripComment removes a trailing "# ..." comment from line, per
// spec.md §6's "`#` comments".
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}

	return line
}

// tokenize splits line on whitespace, treating a double-quoted
// substring (spec.md §6's "double-quoted strings as labels") as one
// token even if it contains embedded spaces.
func tokenize(line string) []string {
	var toks []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			cur.WriteByte(c)
			inQuotes = !inQuotes
		case c == ' ' || c == '\t' || c == '\r':
			if inQuotes {
				cur.WriteByte(c)
			} else if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}

	return toks
}

// parseLabel interprets a label token: a double-quoted token is a
// string label (unquoted via strconv.Unquote), a token that parses
// cleanly as a float is a numeric label, and anything else is taken
// as a bare string label (the scenarios of spec.md §8 write labels
// like `a`/`x` unquoted).
func parseLabel(tok string) (label.Label, error) {
	if strings.HasPrefix(tok, `"`) {
		s, err := strconv.Unquote(tok)
		if err != nil {
			return label.Label{}, err
		}
		return label.NewString(s), nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return label.NewNumeric(f), nil
	}

	return label.NewString(tok), nil
}
