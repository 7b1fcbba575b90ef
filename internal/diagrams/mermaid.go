// Package diagrams renders mermaid flowcharts embedded in section markdown.
package diagrams

import (
	"fmt"
	"strings"
)

// Node is a box in a flowchart.
type Node struct {
	Name string
	// Highlight draws the node in the accent class.
	Highlight bool
}

// Edge connects two nodes by name.
type Edge struct {
	From string
	To   string
}

// HighlightClass is the mermaid class assigned to highlighted nodes.
const HighlightClass = "accent"

// Flowchart generates a mermaid flowchart. direction is TD, LR, etc.
func Flowchart(direction string, nodes []Node, edges []Edge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", direction)

	var highlighted []string
	for _, n := range nodes {
		id := sanitizeID(n.Name)
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", id, escapeMermaid(n.Name))
		if n.Highlight {
			highlighted = append(highlighted, id)
		}
	}

	for _, e := range edges {
		fmt.Fprintf(&b, "    %s --> %s\n", sanitizeID(e.From), sanitizeID(e.To))
	}

	if len(highlighted) > 0 {
		fmt.Fprintf(&b, "    classDef %s fill:#164e63,stroke:#22d3ee,color:#ecfeff\n", HighlightClass)
		fmt.Fprintf(&b, "    class %s %s\n", strings.Join(highlighted, ","), HighlightClass)
	}

	return b.String()
}

// Chain links nodes in order, first to last.
func Chain(nodes []Node) []Edge {
	if len(nodes) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, Edge{From: nodes[i-1].Name, To: nodes[i].Name})
	}
	return edges
}

// Fenced wraps a diagram in a ```mermaid code fence.
func Fenced(diagram string) string {
	return "```mermaid\n" + strings.TrimRight(diagram, "\n") + "\n```\n"
}

// sanitizeID converts a string into a safe mermaid node ID.
func sanitizeID(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		".", "_",
		"-", "_",
		" ", "_",
		"(", "_",
		")", "_",
		"[", "_",
		"]", "_",
		"{", "_",
		"}", "_",
		":", "_",
		"&", "_",
		">", "_",
		",", "_",
	)
	return replacer.Replace(s)
}

// escapeMermaid escapes characters that have special meaning in mermaid labels.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "(", "#lpar;")
	s = strings.ReplaceAll(s, ")", "#rpar;")
	s = strings.ReplaceAll(s, "[", "#lsqb;")
	s = strings.ReplaceAll(s, "]", "#rsqb;")
	s = strings.ReplaceAll(s, "{", "#lbrace;")
	s = strings.ReplaceAll(s, "}", "#rbrace;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}
