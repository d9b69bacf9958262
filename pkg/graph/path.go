package graph

import "github.com/aretw0/staged/pkg/domain"

// PathSet is an immutable set of type keys visited along one traversal path.
// Every With returns a new set; the receiver is never modified, so sibling
// branches cannot observe each other's additions.
type PathSet struct {
	keys map[string]struct{}
}

// EmptyPath returns a set with no visited types.
func EmptyPath() PathSet {
	return PathSet{}
}

// With returns a copy of p that also contains types.
func (p PathSet) With(types ...*domain.TypeRef) PathSet {
	keys := make(map[string]struct{}, len(p.keys)+len(types))
	for k := range p.keys {
		keys[k] = struct{}{}
	}
	for _, t := range types {
		if t != nil {
			keys[t.Key()] = struct{}{}
		}
	}
	return PathSet{keys: keys}
}

// Contains reports whether t was visited.
func (p PathSet) Contains(t *domain.TypeRef) bool {
	_, ok := p.keys[t.Key()]
	return ok
}

// Len returns the number of visited types.
func (p PathSet) Len() int {
	return len(p.keys)
}
