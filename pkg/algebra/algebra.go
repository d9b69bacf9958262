// Package algebra holds pure derivations over domain.TypeRef values.
package algebra

import "github.com/aretw0/staged/pkg/domain"

// ExtractInterfaces returns the leaf interfaces t implements.
// A type that extends nothing contributes itself; otherwise the leaves of every
// extended type are collected recursively. The result is de-duplicated by key.
func ExtractInterfaces(t *domain.TypeRef) []*domain.TypeRef {
	s := &Set{}
	collectInterfaces(t, s)
	return s.Items()
}

// ExtractAllInterfaces is ExtractInterfaces over several types.
func ExtractAllInterfaces(types []*domain.TypeRef) []*domain.TypeRef {
	s := &Set{}
	for _, t := range types {
		collectInterfaces(t, s)
	}
	return s.Items()
}

func collectInterfaces(t *domain.TypeRef, s *Set) {
	if t == nil {
		return
	}
	if len(t.Interfaces) == 0 {
		s.Add(t)
		return
	}
	for _, i := range t.Interfaces {
		collectInterfaces(i, s)
	}
}

// TerminatingTypes returns the terminal types referenced by t.
func TerminatingTypes(t *domain.TypeRef) []*domain.TypeRef {
	s := &Set{}
	collectTerminating(t, s)
	return s.Items()
}

func collectTerminating(t *domain.TypeRef, s *Set) {
	if t == nil {
		return
	}
	if t.Terminal {
		s.Add(t)
	}
	s.Add(t.TerminatingTypes...)
	for _, i := range t.Interfaces {
		collectTerminating(i, s)
	}
}

// GenericReferences returns the unresolved type variables found in t.
// A variable is returned as is; its own arguments are not inspected.
func GenericReferences(t *domain.TypeRef) []*domain.TypeRef {
	s := &Set{}
	collectGenerics(t, s)
	return s.Items()
}

func collectGenerics(t *domain.TypeRef, s *Set) {
	if t == nil {
		return
	}
	if t.IsVariable() {
		s.Add(t)
		return
	}
	for _, g := range t.Generics {
		collectGenerics(g, s)
	}
}
