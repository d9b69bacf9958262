package dsl

import "github.com/aretw0/staged/internal/config"

// ActionBuilder provides a fluent API for configuring an action.
type ActionBuilder struct {
	spec    config.ActionSpec
	builder *Builder
}

func (a *ActionBuilder) entry() *ActionBuilder {
	a.spec.Entry = true
	return a
}

// Type overrides the name of the interface carrying the action.
// The interface suffix is appended when missing.
func (a *ActionBuilder) Type(name string) *ActionBuilder {
	a.spec.Type = name
	return a
}

// Keywords adds the labels under which the action may follow another one.
func (a *ActionBuilder) Keywords(keywords ...string) *ActionBuilder {
	a.spec.Keywords = append(a.spec.Keywords, keywords...)
	return a
}

// Transitions adds the keywords of the actions allowed next.
func (a *ActionBuilder) Transitions(keywords ...string) *ActionBuilder {
	a.spec.Transitions = append(a.spec.Transitions, keywords...)
	return a
}

// Param appends a method parameter. typ uses Go syntax; dotted names are package qualified.
func (a *ActionBuilder) Param(name, typ string) *ActionBuilder {
	a.spec.Params = append(a.spec.Params, config.ParamSpec{Name: name, Type: typ})
	return a
}

// Returns sets the declared result of the method.
func (a *ActionBuilder) Returns(typ string) *ActionBuilder {
	a.spec.Returns = typ
	return a
}

// Extends makes the action interface embed other interfaces, by action type or name.
func (a *ActionBuilder) Extends(names ...string) *ActionBuilder {
	a.spec.Extends = append(a.spec.Extends, names...)
	return a
}

// Terminal marks the action as the end of a chain.
func (a *ActionBuilder) Terminal() *ActionBuilder {
	a.spec.Terminal = true
	return a
}

// Composite marks the action as nesting another DSL.
func (a *ActionBuilder) Composite() *ActionBuilder {
	a.spec.Composite = true
	return a
}

// UsePrevious makes the action inherit the transitions of whichever action precedes it.
func (a *ActionBuilder) UsePrevious() *ActionBuilder {
	a.spec.UsePrevious = true
	return a
}
