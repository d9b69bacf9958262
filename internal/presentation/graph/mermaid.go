package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/graph"
)

// GenerateMermaid produces a Mermaid flowchart of the expanded grammar.
// Every vertex is drawn, so an action reached on several paths appears once per path.
// It applies semantic styling:
// - Entry: ((Circle))
// - Terminal: ([Stadium])
// - Composite: [[Subroutine]]
// - Default: [Rectangle]
func GenerateMermaid(roots []*graph.Vertex) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, root := range roots {
		writeVertex(&sb, root, fmt.Sprintf("v%d", i))
	}
	return sb.String()
}

func writeVertex(sb *strings.Builder, v *graph.Vertex, id string) {
	opener, closer := shape(v.Action)
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", id, opener, label(v.Action), closer)
	for i, c := range v.Children {
		childID := fmt.Sprintf("%s_%d", id, i)
		writeVertex(sb, c, childID)
		fmt.Fprintf(sb, "    %s --> %s\n", id, childID)
	}
}

// GenerateActionMermaid draws one node per declared action and one edge per keyword
// match, labelled with the matching keywords.
func GenerateActionMermaid(def *domain.Definition) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, a := range def.Actions {
		opener, closer := shape(a)
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(a.Type.Name), opener, label(a), closer)
	}
	for _, a := range def.Actions {
		if a.Terminal {
			continue
		}
		for _, c := range def.Actions {
			if c.EntryPoint || c.ID() == a.ID() {
				continue
			}
			var matched []string
			for _, k := range c.Keywords {
				for _, t := range a.Transitions {
					if k == t {
						matched = append(matched, k)
					}
				}
			}
			if len(matched) == 0 {
				continue
			}
			arrow := fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(strings.Join(matched, ", "), "\"", "'"))
			fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(a.Type.Name), arrow, sanitizeMermaidID(c.Type.Name))
		}
	}
	return sb.String()
}

func shape(a *domain.Action) (string, string) {
	switch {
	case a.EntryPoint:
		return "((", "))"
	case a.Terminal:
		return "([", "])"
	case a.Composite:
		return "[[", "]]"
	}
	return "[", "]"
}

func label(a *domain.Action) string {
	l := a.Method + "()"
	if a.UsePreviousTransitions {
		l += " <br/> ↩ previous"
	}
	return strings.ReplaceAll(l, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
