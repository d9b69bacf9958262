package graph

import "github.com/aretw0/staged/pkg/domain"

// Vertex is one node of the expanded grammar: an action and the actions that may follow it
// at this position.
type Vertex struct {
	Action   *domain.Action
	Children []*Vertex
}

// IsLeaf reports whether nothing may follow the vertex.
func (v *Vertex) IsLeaf() bool {
	return len(v.Children) == 0
}

// Alternatives returns the types of the sibling actions reachable after v.
// These are the alternatives to combine into the continuation type of v.
func (v *Vertex) Alternatives() []*domain.TypeRef {
	out := make([]*domain.TypeRef, len(v.Children))
	for i, c := range v.Children {
		out[i] = c.Action.Type
	}
	return out
}

// Walk visits v and its descendants depth first, passing the depth of each vertex.
// Returning false from fn skips the children of that vertex.
func (v *Vertex) Walk(fn func(v *Vertex, depth int) bool) {
	v.walk(fn, 0)
}

func (v *Vertex) walk(fn func(*Vertex, int) bool, depth int) {
	if !fn(v, depth) {
		return
	}
	for _, c := range v.Children {
		c.walk(fn, depth+1)
	}
}

// Size returns the number of vertices in the subtree rooted at v.
func (v *Vertex) Size() int {
	n := 0
	v.Walk(func(*Vertex, int) bool {
		n++
		return true
	})
	return n
}
