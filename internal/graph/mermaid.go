package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the graph as a mermaid flowchart with edges pointing from
// each object to its bases. The root is drawn as a stadium.
func (g *Graph) Mermaid() string {
	var sb strings.Builder

	sb.WriteString("graph TD\n")
	for _, name := range g.order {
		if g.GetNode(name).IsRoot {
			sb.WriteString(fmt.Sprintf("    %s([%q])\n", sanitizeNodeID(name), name))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s[%q]\n", sanitizeNodeID(name), name))
	}
	for _, e := range g.AllEdges() {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeNodeID(e.From), sanitizeNodeID(e.To)))
	}

	return sb.String()
}

// sanitizeNodeID turns a display name into a valid mermaid node ID.
func sanitizeNodeID(name string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if id == "" {
		return "_"
	}
	return id
}
