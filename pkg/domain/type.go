package domain

import (
	"strings"
)

// Kind classifies a TypeRef.
type Kind string

const (
	// KindInterface is a (possibly generic) interface.
	KindInterface Kind = "interface"
	// KindClass is a concrete named type.
	KindClass Kind = "class"
	// KindVariable is an unresolved type parameter (e.g. T).
	KindVariable Kind = "variable"
	// KindBuiltin is a predeclared type such as string or int.
	KindBuiltin Kind = "builtin"
)

// InterfaceSuffix is appended to every generated interface name.
const InterfaceSuffix = "Interface"

// TypeRef describes a type the generator knows about.
// It replaces the loose attribute maps of classic annotation processors with explicit fields.
type TypeRef struct {
	Package string
	Name    string
	Kind    Kind

	// Interfaces are the types this type embeds/extends.
	Interfaces []*TypeRef
	// Generics holds type parameters (declarations) or type arguments (instantiations).
	Generics []*TypeRef

	// Terminal marks a type whose methods end a call chain.
	Terminal bool
	// Composite marks a type that nests another DSL.
	Composite bool
	// TerminatingTypes are the terminal types reachable through this type.
	TerminatingTypes []*TypeRef
	// Transparent marks synthesized unions: the method that returns one passes
	// its value through unchanged.
	Transparent bool
}

// NewInterface returns a non-generic interface reference.
func NewInterface(pkg, name string, interfaces ...*TypeRef) *TypeRef {
	return &TypeRef{Package: pkg, Name: name, Kind: KindInterface, Interfaces: interfaces}
}

// NewClass returns a reference to a concrete named type.
func NewClass(pkg, name string) *TypeRef {
	return &TypeRef{Package: pkg, Name: name, Kind: KindClass}
}

// NewVariable returns a type parameter reference.
func NewVariable(name string) *TypeRef {
	return &TypeRef{Name: name, Kind: KindVariable}
}

// NewBuiltin returns a predeclared type reference.
func NewBuiltin(name string) *TypeRef {
	return &TypeRef{Name: name, Kind: KindBuiltin}
}

// FullyQualifiedName returns package-qualified name without type arguments.
func (t *TypeRef) FullyQualifiedName() string {
	if t.Package == "" || t.Kind == KindVariable || t.Kind == KindBuiltin {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// SimpleName returns the name including its type arguments, e.g. WithNameInterface[T].
func (t *TypeRef) SimpleName() string {
	if len(t.Generics) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		args[i] = g.SimpleName()
	}
	return t.Name + "[" + strings.Join(args, ", ") + "]"
}

// Key is the identity of a type: the fully qualified name plus fully qualified type arguments.
func (t *TypeRef) Key() string {
	if len(t.Generics) == 0 {
		return t.FullyQualifiedName()
	}
	args := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		args[i] = g.Key()
	}
	return t.FullyQualifiedName() + "[" + strings.Join(args, ",") + "]"
}

// String implements fmt.Stringer.
func (t *TypeRef) String() string {
	return t.Key()
}

// IsVariable reports whether t is an unresolved type parameter.
func (t *TypeRef) IsVariable() bool {
	return t != nil && t.Kind == KindVariable
}

// Instantiate returns a copy of t with its type parameters bound to args.
// The binding is applied to extended interfaces too, so an instantiated type keeps
// the same contract as its declaration.
func (t *TypeRef) Instantiate(args ...*TypeRef) *TypeRef {
	bindings := make(map[string]*TypeRef, len(args))
	for i, p := range t.Generics {
		if i < len(args) && p.IsVariable() {
			bindings[p.Key()] = args[i]
		}
	}
	c := *t
	c.Generics = args
	c.Interfaces = substituteAll(t.Interfaces, bindings)
	return &c
}

func substitute(t *TypeRef, bindings map[string]*TypeRef) *TypeRef {
	if t.IsVariable() {
		if bound, ok := bindings[t.Key()]; ok {
			return bound
		}
		return t
	}
	if len(t.Generics) == 0 && len(t.Interfaces) == 0 {
		return t
	}
	c := *t
	c.Generics = substituteAll(t.Generics, bindings)
	c.Interfaces = substituteAll(t.Interfaces, bindings)
	return &c
}

func substituteAll(types []*TypeRef, bindings map[string]*TypeRef) []*TypeRef {
	if len(types) == 0 || len(bindings) == 0 {
		return types
	}
	out := make([]*TypeRef, len(types))
	for i, t := range types {
		out[i] = substitute(t, bindings)
	}
	return out
}

// ToInterfaceName appends InterfaceSuffix unless name already carries it.
func ToInterfaceName(name string) string {
	if strings.HasSuffix(name, InterfaceSuffix) {
		return name
	}
	return name + InterfaceSuffix
}

// StripSuffix removes a trailing InterfaceSuffix.
func StripSuffix(name string) string {
	return strings.TrimSuffix(name, InterfaceSuffix)
}
