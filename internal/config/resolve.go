package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/staged/pkg/domain"
)

// DefaultPackage is used when a definition names no package.
const DefaultPackage = "dsl"

// ContinuationParam is the type parameter carried by non-terminal action interfaces.
const ContinuationParam = "T"

// Resolve converts a decoded file into the engine model.
// It only resolves names; semantic checks belong to the validator.
func Resolve(f *DefinitionFile) (*domain.Definition, error) {
	pkg := f.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	def := &domain.Definition{Name: f.Name, Package: pkg}

	byName := make(map[string]*domain.Action, len(f.Actions))
	for i, spec := range f.Actions {
		if spec.Method == "" {
			return nil, fmt.Errorf("%w: action #%d has no method", domain.ErrInvalidDefinition, i+1)
		}
		name := spec.Type
		if name == "" {
			name = exportedName(spec.Method)
		}
		t := domain.NewInterface(pkg, domain.ToInterfaceName(name))
		t.Terminal = spec.Terminal
		t.Composite = spec.Composite
		if !spec.Terminal && !spec.Entry {
			t.Generics = []*domain.TypeRef{domain.NewVariable(ContinuationParam)}
		}

		a := &domain.Action{
			Method:                 spec.Method,
			Type:                   t,
			Returns:                ResolveType(pkg, spec.Returns),
			Keywords:               spec.Keywords,
			Transitions:            spec.Transitions,
			Terminal:               spec.Terminal,
			EntryPoint:             spec.Entry,
			Composite:              spec.Composite,
			UsePreviousTransitions: spec.UsePrevious,
		}
		for _, p := range spec.Params {
			a.Params = append(a.Params, domain.Param{Name: p.Name, Type: ResolveType(pkg, p.Type)})
		}
		def.Actions = append(def.Actions, a)
		byName[t.Name] = a
	}

	for i, spec := range f.Actions {
		a := def.Actions[i]
		for _, ext := range spec.Extends {
			ref, err := resolveExtends(pkg, ext, a, byName)
			if err != nil {
				return nil, err
			}
			a.Type.Interfaces = append(a.Type.Interfaces, ref)
		}
	}
	return def, nil
}

func resolveExtends(pkg, name string, a *domain.Action, byName map[string]*domain.Action) (*domain.TypeRef, error) {
	other, ok := byName[domain.ToInterfaceName(name)]
	if !ok {
		other, ok = byName[name]
	}
	if !ok {
		other, ok = byName[domain.ToInterfaceName(exportedName(name))]
	}
	if !ok {
		return ResolveType(pkg, name), nil
	}
	if len(other.Type.Generics) > 0 && len(a.Type.Generics) == 0 {
		return nil, fmt.Errorf("%w: action %q cannot extend generic %s", domain.ErrInvalidDefinition, a.Method, other.Type.Name)
	}
	return other.Type, nil
}

// ResolveType maps a type expression to a reference. Predeclared and composite
// expressions become builtins, dotted names are package qualified, anything else is
// a named type of pkg.
func ResolveType(pkg, expr string) *domain.TypeRef {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	if isBuiltinExpr(expr) {
		return domain.NewBuiltin(expr)
	}
	if i := strings.LastIndex(expr, "."); i > 0 {
		return domain.NewClass(expr[:i], expr[i+1:])
	}
	return domain.NewClass(pkg, expr)
}

func isBuiltinExpr(expr string) bool {
	for _, prefix := range []string{"*", "[", "map[", "func", "chan ", "struct{", "interface{"} {
		if strings.HasPrefix(expr, prefix) {
			return true
		}
	}
	return !strings.Contains(expr, ".") && unicode.IsLower([]rune(expr)[0])
}

// exportedName turns method or file names such as "with_name" into "WithName".
func exportedName(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
