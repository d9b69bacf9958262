package dsl

import (
	"fmt"

	"github.com/aretw0/staged/internal/config"
	"github.com/aretw0/staged/pkg/domain"
)

// Builder manages the construction of a definition.
type Builder struct {
	name    string
	pkg     string
	order   []string
	actions map[string]*ActionBuilder
}

// New creates a builder for the DSL whose entry interface is name in package pkg.
func New(name, pkg string) *Builder {
	return &Builder{
		name:    name,
		pkg:     pkg,
		actions: make(map[string]*ActionBuilder),
	}
}

// Action declares a successor action for method.
// If the action already exists, it returns the existing builder.
func (b *Builder) Action(method string) *ActionBuilder {
	if ab, ok := b.actions[method]; ok {
		return ab
	}
	ab := &ActionBuilder{
		spec:    config.ActionSpec{Method: method},
		builder: b,
	}
	b.actions[method] = ab
	b.order = append(b.order, method)
	return ab
}

// Entry declares an entry point.
func (b *Builder) Entry(method string) *ActionBuilder {
	return b.Action(method).entry()
}

// Terminal declares an action that ends a chain.
func (b *Builder) Terminal(method string) *ActionBuilder {
	return b.Action(method).Terminal()
}

// Build resolves the declared actions, in declaration order, into a definition.
func (b *Builder) Build() (*domain.Definition, error) {
	f := &config.DefinitionFile{Name: b.name, Package: b.pkg}
	for _, method := range b.order {
		f.Actions = append(f.Actions, b.actions[method].spec)
	}
	def, err := config.Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build definition: %w", err)
	}
	return def, nil
}

// MustBuild is Build for static declarations; it panics on error.
func (b *Builder) MustBuild() *domain.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
