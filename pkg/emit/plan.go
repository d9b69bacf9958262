// Package emit turns an expanded grammar into the interface descriptions to render.
package emit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/staged/internal/validator"
	"github.com/aretw0/staged/pkg/algebra"
	"github.com/aretw0/staged/pkg/combine"
	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/graph"
)

// Unit is the continuation of a non-terminal action that nothing may follow.
var Unit = domain.NewBuiltin("struct{}")

// Plan is the result of one run: every interface to render plus the entry interface.
type Plan struct {
	Definition *domain.Definition
	Roots      []*graph.Vertex
	// Interfaces holds the per-action interfaces followed by the synthesized unions.
	Interfaces []*domain.Clazz
	Entry      *domain.Clazz
}

// All returns the interfaces followed by the entry interface.
func (p *Plan) All() []*domain.Clazz {
	out := make([]*domain.Clazz, 0, len(p.Interfaces)+1)
	out = append(out, p.Interfaces...)
	return append(out, p.Entry)
}

// Planner builds plans.
type Planner struct {
	logger  *slog.Logger
	graph   *graph.Builder
	combine *combine.Combiner
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithGraphBuilder overrides the graph builder.
func WithGraphBuilder(b *graph.Builder) Option {
	return func(p *Planner) {
		p.graph = b
	}
}

// WithCombiner overrides the combiner. Its cache must not be shared with other runs.
func WithCombiner(c *combine.Combiner) Option {
	return func(p *Planner) {
		p.combine = c
	}
}

// NewPlanner returns a planner. Without options every run gets a fresh combination cache.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.graph == nil {
		p.graph = graph.NewBuilder(graph.WithLogger(p.logger))
	}
	return p
}

// Plan validates def, expands it and derives the interfaces of its fluent API.
// An invalid definition yields the validator's *domain.AggregateError and nothing is planned.
// Entry roots are expanded concurrently; types are then resolved in declaration order
// so synthesized names do not depend on scheduling.
func (p *Planner) Plan(ctx context.Context, def *domain.Definition) (*Plan, error) {
	warnings, err := validator.Validate(def)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		p.logger.Debug("definition warning", "dsl", def.Name, "warning", w.String())
	}
	entries := def.EntryPoints()

	roots := make([]*graph.Vertex, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			roots[i] = p.graph.BuildRoot(entry, def.Actions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to expand graph: %w", err)
	}

	combiner := p.combine
	if combiner == nil {
		combiner = combine.New(combine.NewCache(), combine.WithLogger(p.logger))
	}
	r := &resolver{combine: combiner}

	entry := &domain.Clazz{
		Package:    def.Package,
		Name:       def.Name,
		Kind:       domain.KindInterface,
		Attributes: domain.Attributes{EntryPoint: true},
	}
	generics := &algebra.Set{}
	for _, root := range roots {
		returns, err := r.continuation(root)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", root.Action.Method, err)
		}
		entry.Methods = append(entry.Methods, domain.Method{
			Name:    root.Action.Method,
			Params:  root.Action.Params,
			Returns: returns,
		})
		generics.Add(algebra.GenericReferences(returns)...)
		p.logger.Debug("entry resolved", "method", root.Action.Method, "vertices", root.Size())
	}
	entry.Generics = generics.Items()

	plan := &Plan{Definition: def, Roots: roots, Entry: entry}
	for _, a := range def.Actions {
		if !a.EntryPoint {
			plan.Interfaces = append(plan.Interfaces, ActionInterface(a))
		}
	}
	for _, t := range combiner.Cache().Combined() {
		plan.Interfaces = append(plan.Interfaces, CombinedInterface(t))
	}
	return plan, nil
}

type resolver struct {
	combine *combine.Combiner
}

// continuation returns the type a call to v's method yields.
func (r *resolver) continuation(v *graph.Vertex) (*domain.TypeRef, error) {
	if v.IsLeaf() {
		if v.Action.Terminal || v.Action.Returns != nil {
			return v.Action.Returns, nil
		}
		return Unit, nil
	}
	alternatives := make([]*domain.TypeRef, 0, len(v.Children))
	for _, c := range v.Children {
		t, err := r.step(c)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, t)
	}
	if len(alternatives) == 1 {
		return alternatives[0], nil
	}
	return r.combine.Combine(alternatives)
}

// step returns the type exposing v's method at its position in the grammar.
func (r *resolver) step(v *graph.Vertex) (*domain.TypeRef, error) {
	if v.Action.Terminal {
		return v.Action.Type, nil
	}
	next, err := r.continuation(v)
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = Unit
	}
	return v.Action.Type.Instantiate(next), nil
}

// ActionInterface describes the interface carrying a single action method.
// Non-terminal actions return their type parameter so every position can bind
// its own continuation.
func ActionInterface(a *domain.Action) *domain.Clazz {
	m := domain.Method{Name: a.Method, Params: a.Params, Returns: a.Returns}
	if !a.Terminal && len(a.Type.Generics) > 0 {
		m.Returns = a.Type.Generics[len(a.Type.Generics)-1]
	}
	return &domain.Clazz{
		Package:    a.Type.Package,
		Name:       a.Type.Name,
		Kind:       domain.KindInterface,
		Generics:   a.Type.Generics,
		Interfaces: a.Type.Interfaces,
		Methods:    []domain.Method{m},
		Attributes: domain.Attributes{
			Terminal:         a.Terminal,
			Composite:        a.Composite,
			TerminatingTypes: algebra.TerminatingTypes(a.Type),
		},
	}
}

// CombinedInterface describes a synthesized union.
func CombinedInterface(t *domain.TypeRef) *domain.Clazz {
	return &domain.Clazz{
		Package:    t.Package,
		Name:       t.Name,
		Kind:       domain.KindInterface,
		Generics:   t.Generics,
		Interfaces: t.Interfaces,
		Attributes: domain.Attributes{
			Terminal:         t.Terminal,
			Composite:        t.Composite,
			Transparent:      t.Transparent,
			TerminatingTypes: t.TerminatingTypes,
		},
	}
}
