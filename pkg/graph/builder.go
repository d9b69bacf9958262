// Package graph expands a set of declared actions into the tree of legal call sequences.
package graph

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/staged/pkg/domain"
)

// Recorder observes graph expansion.
type Recorder interface {
	VertexExpanded(terminal bool)
}

type nopRecorder struct{}

func (nopRecorder) VertexExpanded(bool) {}

// Builder expands entry actions into vertices.
type Builder struct {
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithRecorder registers an expansion observer.
func WithRecorder(r Recorder) Option {
	return func(b *Builder) {
		b.recorder = r
	}
}

// NewBuilder returns a graph builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.recorder == nil {
		b.recorder = nopRecorder{}
	}
	return b
}

// Build returns one root vertex per entry action, in declaration order.
func (b *Builder) Build(actions []*domain.Action) ([]*Vertex, error) {
	var roots []*Vertex
	for _, a := range actions {
		if a == nil || a.Type == nil {
			return nil, fmt.Errorf("%w: action without type", domain.ErrInvalidDefinition)
		}
		if !a.EntryPoint {
			continue
		}
		roots = append(roots, b.Expand(a, nil, actions, EmptyPath()))
	}
	if len(roots) == 0 {
		return nil, domain.ErrNoEntryPoints
	}
	return roots, nil
}

// BuildRoot expands a single entry action.
func (b *Builder) BuildRoot(entry *domain.Action, actions []*domain.Action) *Vertex {
	return b.Expand(entry, nil, actions, EmptyPath())
}

// Expand computes the vertex of root given the transitions of its caller, the full action
// set and the types already visited on the current path.
//
// Every recursive call strictly grows the visited path and the action set is finite,
// so expansion terminates even when transitions form cycles.
func (b *Builder) Expand(root *domain.Action, previous []string, all []*domain.Action, visited PathSet) *Vertex {
	b.recorder.VertexExpanded(root.Terminal)
	if root.Terminal {
		return &Vertex{Action: root}
	}

	transitions := root.ActiveTransitions(previous)
	next := Successors(root, transitions, all, visited)

	// Later siblings treat the types reached by earlier ones as visited.
	level := visited.With(root.Type)
	children := make([]*Vertex, 0, len(next))
	for _, c := range next {
		child := b.Expand(c, transitions, all, level)
		level = level.With(child.Action.Type).With(child.Action.Type.Interfaces...)
		children = append(children, child)
	}

	if len(children) > 1 {
		b.logger.Debug("ambiguous position", "action", root.Method, "alternatives", len(children))
	}
	return &Vertex{Action: root, Children: children}
}

// Successors returns the actions that may follow root under transitions: not yet visited
// on this path (terminal actions always qualify), not an entry point, exposing a keyword
// in transitions, and not root itself. Declaration order is preserved.
func Successors(root *domain.Action, transitions []string, all []*domain.Action, visited PathSet) []*domain.Action {
	var next []*domain.Action
	for _, candidate := range all {
		if visited.Contains(candidate.Type) && !candidate.Terminal {
			continue
		}
		if candidate.EntryPoint {
			continue
		}
		if candidate.ID() == root.ID() {
			continue
		}
		if candidate.HasKeyword(transitions) {
			next = append(next, candidate)
		}
	}
	return next
}
