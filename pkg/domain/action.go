package domain

import "slices"

// Param is a single method parameter.
type Param struct {
	Name string   `json:"name" yaml:"name"`
	Type *TypeRef `json:"-" yaml:"-"`
}

// Action is one declared step of a fluent API.
// An Action is immutable once declared; its identity is Type, not Method.
type Action struct {
	// Method is the name of the generated method.
	Method string
	// Type is the interface that carries Method.
	// Non-terminal actions are generic over a single continuation parameter.
	Type *TypeRef
	// Returns is the declared result of the method for chains that end here.
	// A nil Returns means the method returns nothing.
	Returns *TypeRef
	Params  []Param

	Keywords    []string
	Transitions []string

	Terminal   bool
	EntryPoint bool
	Composite  bool
	// UsePreviousTransitions makes the action inherit the transitions of its caller.
	UsePreviousTransitions bool
}

// ID returns the identity key of the action.
func (a *Action) ID() string {
	return a.Type.Key()
}

// HasKeyword reports whether any keyword of a is contained in transitions.
func (a *Action) HasKeyword(transitions []string) bool {
	for _, k := range a.Keywords {
		if slices.Contains(transitions, k) {
			return true
		}
	}
	return false
}

// ActiveTransitions returns the transitions that govern the successors of a.
func (a *Action) ActiveTransitions(previous []string) []string {
	if a.UsePreviousTransitions {
		return previous
	}
	return a.Transitions
}

// Definition is the input of one processing run.
type Definition struct {
	// Name is the name of the generated entry interface.
	Name string
	// Package is the package of the generated entry interface.
	Package string
	// Actions in declaration order.
	Actions []*Action
}

// EntryPoints returns the entry actions in declaration order.
func (d *Definition) EntryPoints() []*Action {
	var out []*Action
	for _, a := range d.Actions {
		if a.EntryPoint {
			out = append(out, a)
		}
	}
	return out
}
