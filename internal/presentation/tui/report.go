package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/emit"
)

// Report summarizes a plan as markdown: the entry methods, the per-action interfaces and
// the synthesized unions with their members.
func Report(p *emit.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", p.Entry.Name)
	fmt.Fprintf(&sb, "Package `%s`, %d actions, %d interfaces.\n\n", p.Definition.Package, len(p.Definition.Actions), len(p.All()))

	sb.WriteString("## Entry points\n\n")
	for i, m := range p.Entry.Methods {
		returns := "nothing"
		if m.Returns != nil {
			returns = "`" + m.Returns.SimpleName() + "`"
		}
		fmt.Fprintf(&sb, "- `%s()` returns %s (%d vertices)\n", m.Name, returns, p.Roots[i].Size())
	}

	var actions, unions []*domain.Clazz
	for _, c := range p.Interfaces {
		if c.Attributes.Transparent {
			unions = append(unions, c)
		} else {
			actions = append(actions, c)
		}
	}

	sb.WriteString("\n## Actions\n\n| Interface | Method | Flags |\n|---|---|---|\n")
	for _, c := range actions {
		method := ""
		if len(c.Methods) > 0 {
			method = c.Methods[0].Name
		}
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", c.Name, method, flags(c.Attributes))
	}

	if len(unions) > 0 {
		sb.WriteString("\n## Unions\n\n")
		for _, c := range unions {
			members := make([]string, len(c.Interfaces))
			for i, m := range c.Interfaces {
				members[i] = "`" + m.SimpleName() + "`"
			}
			fmt.Fprintf(&sb, "- `%s`: %s\n", c.Name, strings.Join(members, " | "))
		}
	}
	return sb.String()
}

func flags(a domain.Attributes) string {
	var f []string
	if a.Terminal {
		f = append(f, "terminal")
	}
	if a.Composite {
		f = append(f, "composite")
	}
	if len(f) == 0 {
		return "-"
	}
	return strings.Join(f, ", ")
}
