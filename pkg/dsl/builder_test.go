package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/staged/pkg/domain"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New("GreetingDsl", "greeting")
	b.Entry("hello").Transitions("name")
	b.Action("withName").Keywords("name").Transitions("end").Param("name", "string")
	b.Terminal("say").Keywords("end").Returns("string")

	def, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "GreetingDsl", def.Name)
	assert.Equal(t, "greeting", def.Package)
	require.Len(t, def.Actions, 3)

	hello := def.Actions[0]
	assert.True(t, hello.EntryPoint)
	assert.Equal(t, "HelloInterface", hello.Type.Name)
	assert.Empty(t, hello.Type.Generics)

	withName := def.Actions[1]
	assert.Equal(t, "WithNameInterface", withName.Type.Name)
	require.Len(t, withName.Type.Generics, 1)
	assert.True(t, withName.Type.Generics[0].IsVariable())
	require.Len(t, withName.Params, 1)
	assert.Equal(t, domain.KindBuiltin, withName.Params[0].Type.Kind)

	say := def.Actions[2]
	assert.True(t, say.Terminal)
	assert.True(t, say.Type.Terminal)
	assert.Empty(t, say.Type.Generics)
	assert.Equal(t, "string", say.Returns.Name)
}

func TestBuilder_ActionIsReused(t *testing.T) {
	b := New("X", "x")
	b.Action("a").Keywords("a")
	b.Action("a").Keywords("b").Transitions("c")

	def := b.MustBuild()
	require.Len(t, def.Actions, 1)
	assert.Equal(t, []string{"a", "b"}, def.Actions[0].Keywords)
	assert.Equal(t, []string{"c"}, def.Actions[0].Transitions)
}

func TestBuilder_TypeAndExtends(t *testing.T) {
	b := New("ShapeDsl", "shapes")
	b.Entry("create").Transitions("shape")
	b.Action("named").Type("Named").Keywords("name").Transitions("shape")
	b.Action("circle").Type("CreateableCircle").Extends("Named").Keywords("shape").UsePrevious().Composite()

	def := b.MustBuild()
	circle := def.Actions[2]
	assert.Equal(t, "CreateableCircleInterface", circle.Type.Name)
	assert.True(t, circle.UsePreviousTransitions)
	assert.True(t, circle.Composite)
	require.Len(t, circle.Type.Interfaces, 1)
	assert.Same(t, def.Actions[1].Type, circle.Type.Interfaces[0])
}

func TestBuilder_Errors(t *testing.T) {
	b := New("X", "x")
	b.Action("base").Keywords("base")
	b.Terminal("end").Keywords("end").Extends("base")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	assert.Panics(t, func() { b.MustBuild() })
}
