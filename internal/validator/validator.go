package validator

import (
	"fmt"

	"github.com/aretw0/staged/pkg/domain"
)

// Warning is a problem that does not prevent generation.
type Warning struct {
	Action string
	Reason string
}

func (w Warning) String() string {
	if w.Action == "" {
		return w.Reason
	}
	return fmt.Sprintf("action %q: %s", w.Action, w.Reason)
}

// Validate checks def for precondition violations and returns every one of them at once
// as a *domain.AggregateError. Unreachable actions and dangling transitions are reported
// as warnings only.
func Validate(def *domain.Definition) ([]Warning, error) {
	var errs []error
	fail := func(action, reason string, sentinel error) {
		errs = append(errs, &domain.ValidationError{Action: action, Reason: reason, Err: sentinel})
	}

	if def.Name == "" {
		fail("", "definition has no target name", domain.ErrInvalidDefinition)
	}

	seen := make(map[string]string)
	keywords := make(map[string]bool)
	entries := 0
	for _, a := range def.Actions {
		if a.Type == nil {
			fail(a.Method, "action has no type", domain.ErrUnknownType)
			continue
		}
		if prev, ok := seen[a.ID()]; ok {
			fail(a.Method, fmt.Sprintf("type %s already declared by %q", a.Type.Name, prev), domain.ErrDuplicateAction)
		}
		seen[a.ID()] = a.Method

		if a.EntryPoint {
			entries++
			if a.UsePreviousTransitions {
				fail(a.Method, "entry points have no previous transitions to reuse", domain.ErrInvalidDefinition)
			}
			continue
		}
		if len(a.Keywords) == 0 {
			fail(a.Method, "action has no keywords and can never follow another action", domain.ErrInvalidDefinition)
		}
		for _, k := range a.Keywords {
			keywords[k] = true
		}
	}
	if entries == 0 {
		fail("", "definition declares no entry point", domain.ErrNoEntryPoints)
	}
	for _, a := range def.Actions {
		if a.Type != nil && hasExtendsCycle(a.Type, map[string]bool{}) {
			fail(a.Method, "interface hierarchy is cyclic", domain.ErrInvalidDefinition)
		}
	}
	if len(errs) > 0 {
		return nil, &domain.AggregateError{Errors: errs}
	}

	var warnings []Warning
	for _, a := range def.Actions {
		if a.Terminal {
			continue
		}
		for _, t := range a.Transitions {
			if !keywords[t] {
				warnings = append(warnings, Warning{Action: a.Method, Reason: fmt.Sprintf("transition %q matches no keyword", t)})
			}
		}
	}
	for _, a := range unreachable(def) {
		warnings = append(warnings, Warning{Action: a.Method, Reason: "unreachable from any entry point"})
	}
	return warnings, nil
}

func hasExtendsCycle(t *domain.TypeRef, path map[string]bool) bool {
	if path[t.FullyQualifiedName()] {
		return true
	}
	path[t.FullyQualifiedName()] = true
	defer delete(path, t.FullyQualifiedName())
	for _, i := range t.Interfaces {
		if hasExtendsCycle(i, path) {
			return true
		}
	}
	return false
}

// unreachable crawls keyword edges breadth first from every entry point.
// Inherited transitions are approximated by the caller's own.
func unreachable(def *domain.Definition) []*domain.Action {
	type item struct {
		action      *domain.Action
		transitions []string
	}
	visited := make(map[string]bool)
	var queue []item
	for _, a := range def.EntryPoints() {
		visited[a.ID()] = true
		queue = append(queue, item{action: a, transitions: a.Transitions})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.action.Terminal {
			continue
		}
		for _, candidate := range def.Actions {
			if candidate.EntryPoint || visited[candidate.ID()] || !candidate.HasKeyword(current.transitions) {
				continue
			}
			visited[candidate.ID()] = true
			queue = append(queue, item{action: candidate, transitions: candidate.ActiveTransitions(current.transitions)})
		}
	}

	var out []*domain.Action
	for _, a := range def.Actions {
		if !visited[a.ID()] {
			out = append(out, a)
		}
	}
	return out
}
