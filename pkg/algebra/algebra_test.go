package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/staged/pkg/algebra"
	"github.com/aretw0/staged/pkg/domain"
)

func names(types []*domain.TypeRef) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.SimpleName()
	}
	return out
}

func TestExtractInterfaces(t *testing.T) {
	a := domain.NewInterface("p", "A")
	b := domain.NewInterface("p", "B")
	ab := domain.NewInterface("p", "AB", a, b)
	abc := domain.NewInterface("p", "ABC", ab, domain.NewInterface("p", "C"), a)

	assert.Equal(t, []string{"A"}, names(algebra.ExtractInterfaces(a)))
	assert.Equal(t, []string{"A", "B"}, names(algebra.ExtractInterfaces(ab)))
	assert.Equal(t, []string{"A", "B", "C"}, names(algebra.ExtractInterfaces(abc)), "leaves are de-duplicated")
	assert.Equal(t, []string{"A", "B"}, names(algebra.ExtractAllInterfaces([]*domain.TypeRef{a, b, ab})))
}

func TestExtractInterfaces_UsesBoundArguments(t *testing.T) {
	tv := domain.NewVariable("T")
	base := domain.NewInterface("p", "Base")
	base.Generics = []*domain.TypeRef{tv}
	derived := domain.NewInterface("p", "Derived", base)
	derived.Generics = []*domain.TypeRef{tv}

	bound := derived.Instantiate(domain.NewClass("p", "X"))
	assert.Equal(t, []string{"Base[X]"}, names(algebra.ExtractInterfaces(bound)))
	assert.Equal(t, []string{"Base[T]"}, names(algebra.ExtractInterfaces(derived)), "declaration is left untouched")
}

func TestTerminatingTypes(t *testing.T) {
	done := domain.NewInterface("p", "Done")
	done.Terminal = true
	build := domain.NewInterface("p", "Build")
	build.Terminal = true
	union := domain.NewInterface("p", "Union", done, domain.NewInterface("p", "Other"))
	union.TerminatingTypes = []*domain.TypeRef{build}

	assert.Equal(t, []string{"Done"}, names(algebra.TerminatingTypes(done)))
	assert.Equal(t, []string{"Build", "Done"}, names(algebra.TerminatingTypes(union)))
	assert.Empty(t, algebra.TerminatingTypes(domain.NewInterface("p", "Open")))
}

func TestGenericReferences(t *testing.T) {
	tv := domain.NewVariable("T")
	uv := domain.NewVariable("U")
	inner := domain.NewClass("p", "Inner")
	inner.Generics = []*domain.TypeRef{uv, domain.NewBuiltin("string")}
	outer := domain.NewClass("p", "Outer")
	outer.Generics = []*domain.TypeRef{tv, inner, tv}

	assert.Equal(t, []string{"T", "U"}, names(algebra.GenericReferences(outer)))
	assert.Equal(t, []string{"T"}, names(algebra.GenericReferences(tv)))
	assert.Empty(t, algebra.GenericReferences(domain.NewBuiltin("int")))
}

func TestGenericReferences_DoesNotDescendIntoVariables(t *testing.T) {
	weird := domain.NewVariable("V")
	weird.Generics = []*domain.TypeRef{domain.NewVariable("W")}
	assert.Equal(t, []string{"V[W]"}, names(algebra.GenericReferences(weird)))
}
