/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT output for graph views.
*/

package render

import (
	"fmt"
	"strings"

	"github.com/kleascm/mentor/pkg/model"
)

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// DOT writes a view as a Graphviz digraph
func DOT(view *model.GraphView) string {
	var sb strings.Builder
	title := view.Title
	if title == "" {
		title = view.Kind.String()
	}
	fmt.Fprintf(&sb, "digraph %s {\n", dotQuote(title))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("  __start [shape=point, label=\"\"];\n")

	for _, n := range view.Nodes {
		shape := "circle"
		switch {
		case n.Accepting:
			shape = "doublecircle"
		case n.Rejecting:
			shape = "octagon"
		}
		fmt.Fprintf(&sb, "  n%d [label=%s, shape=%s];\n", n.ID, dotQuote(n.Label), shape)
	}
	for _, n := range view.Nodes {
		if n.Start {
			fmt.Fprintf(&sb, "  __start -> n%d;\n", n.ID)
		}
	}
	for _, e := range view.Edges {
		fmt.Fprintf(&sb, "  n%d -> n%d [label=%s];\n", e.From, e.To, dotQuote(e.Label))
	}
	sb.WriteString("}\n")
	return sb.String()
}
