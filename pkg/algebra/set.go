package algebra

import "github.com/aretw0/staged/pkg/domain"

// Set is an insertion-ordered set of types keyed by domain.TypeRef.Key.
// The zero value is ready to use.
type Set struct {
	index map[string]int
	items []*domain.TypeRef
}

// NewSet returns a set holding types.
func NewSet(types ...*domain.TypeRef) *Set {
	s := &Set{}
	s.Add(types...)
	return s
}

// Add inserts types that are not yet present.
func (s *Set) Add(types ...*domain.TypeRef) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	for _, t := range types {
		if t == nil {
			continue
		}
		k := t.Key()
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.items)
		s.items = append(s.items, t)
	}
}

// Contains reports whether a type with the same key is present.
func (s *Set) Contains(t *domain.TypeRef) bool {
	_, ok := s.index[t.Key()]
	return ok
}

// ContainsAll reports whether every type of other is present.
func (s *Set) ContainsAll(other []*domain.TypeRef) bool {
	for _, t := range other {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// Items returns the types in insertion order.
// The returned slice must not be modified.
func (s *Set) Items() []*domain.TypeRef {
	return s.items
}
