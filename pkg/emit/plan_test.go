package emit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/dsl"
	"github.com/aretw0/staged/pkg/emit"
)

func shapes() *domain.Definition {
	b := dsl.New("ShapeDsl", "shapes")
	b.Entry("create").Transitions("shape")
	b.Action("circle").Type("CreateableCircle").Keywords("shape").Transitions("end").Param("radius", "int")
	b.Action("square").Type("CreateableSquare").Keywords("shape").Transitions("end").Param("side", "int")
	b.Terminal("done").Keywords("end").Returns("Shape")
	return b.MustBuild()
}

func interfaceNames(p *emit.Plan) []string {
	var out []string
	for _, c := range p.Interfaces {
		out = append(out, c.Name)
	}
	return out
}

func TestPlan_CombinesAmbiguousPosition(t *testing.T) {
	plan, err := emit.NewPlanner().Plan(context.Background(), shapes())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CreateableCircleInterface",
		"CreateableSquareInterface",
		"DoneInterface",
		"CreateableCircleOrSquareInterface",
	}, interfaceNames(plan))

	require.Len(t, plan.Entry.Methods, 1)
	create := plan.Entry.Methods[0]
	assert.Equal(t, "create", create.Name)
	assert.Equal(t, "CreateableCircleOrSquareInterface", create.Returns.Name)

	union := plan.Interfaces[3]
	assert.True(t, union.Attributes.Transparent)
	require.Len(t, union.Interfaces, 2)
	assert.Equal(t, "CreateableCircleInterface[DoneInterface]", union.Interfaces[0].SimpleName())
	assert.Equal(t, "CreateableSquareInterface[DoneInterface]", union.Interfaces[1].SimpleName())
	require.Len(t, union.Attributes.TerminatingTypes, 0, "members are bound to a terminal type but are not terminal themselves")
}

func TestPlan_ActionInterfaces(t *testing.T) {
	plan, err := emit.NewPlanner().Plan(context.Background(), shapes())
	require.NoError(t, err)

	circle := plan.Interfaces[0]
	require.Len(t, circle.Generics, 1)
	require.Len(t, circle.Methods, 1)
	assert.Equal(t, "circle", circle.Methods[0].Name)
	assert.Same(t, circle.Generics[0], circle.Methods[0].Returns, "non-terminal methods return the continuation parameter")

	done := plan.Interfaces[2]
	assert.Empty(t, done.Generics)
	assert.True(t, done.Attributes.Terminal)
	assert.Equal(t, "Shape", done.Methods[0].Returns.Name)
	require.Len(t, done.Attributes.TerminatingTypes, 1)
	assert.Equal(t, "DoneInterface", done.Attributes.TerminatingTypes[0].Name)
}

func TestPlan_OptionalStep(t *testing.T) {
	b := dsl.New("PersonDsl", "people")
	b.Entry("create").Transitions("name")
	b.Action("withName").Keywords("name").Transitions("age", "end").Param("name", "string")
	b.Action("withAge").Keywords("age").Transitions("end").Param("age", "int")
	b.Terminal("build").Keywords("end").Returns("Person")

	plan, err := emit.NewPlanner().Plan(context.Background(), b.MustBuild())
	require.NoError(t, err)

	returns := plan.Entry.Methods[0].Returns
	assert.Equal(t, "WithNameInterface[WithAgeOrBuildInterface]", returns.SimpleName())
	assert.Contains(t, interfaceNames(plan), "WithAgeOrBuildInterface")
}

func TestPlan_SingleSuccessorIsNotWrapped(t *testing.T) {
	b := dsl.New("LineDsl", "lines")
	b.Entry("start").Transitions("a")
	b.Action("a").Keywords("a").Transitions("end")
	b.Terminal("finish").Keywords("end")

	plan, err := emit.NewPlanner().Plan(context.Background(), b.MustBuild())
	require.NoError(t, err)

	assert.Equal(t, "AInterface[FinishInterface]", plan.Entry.Methods[0].Returns.SimpleName())
	for _, c := range plan.Interfaces {
		assert.False(t, c.Attributes.Transparent, "no union expected, got %s", c.Name)
	}
}

func TestPlan_DeadEndUsesUnit(t *testing.T) {
	b := dsl.New("DeadDsl", "dead")
	b.Entry("start").Transitions("a")
	b.Action("a").Keywords("a")

	plan, err := emit.NewPlanner().Plan(context.Background(), b.MustBuild())
	require.NoError(t, err)
	assert.Equal(t, "AInterface[struct{}]", plan.Entry.Methods[0].Returns.SimpleName())
}

func TestPlan_TerminalEntryReturnsDeclaredType(t *testing.T) {
	b := dsl.New("QuickDsl", "quick")
	b.Entry("now").Terminal().Returns("time.Time")

	plan, err := emit.NewPlanner().Plan(context.Background(), b.MustBuild())
	require.NoError(t, err)
	returns := plan.Entry.Methods[0].Returns
	require.NotNil(t, returns)
	assert.Equal(t, "time.Time", returns.Key())
	assert.Empty(t, plan.Interfaces)
}

func TestPlan_Errors(t *testing.T) {
	noName := shapes()
	noName.Name = ""
	_, err := emit.NewPlanner().Plan(context.Background(), noName)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)

	b := dsl.New("NoEntry", "x")
	b.Action("a").Keywords("a")
	_, err = emit.NewPlanner().Plan(context.Background(), b.MustBuild())
	assert.ErrorIs(t, err, domain.ErrNoEntryPoints)
}

func TestPlan_RejectsInvalidDefinitions(t *testing.T) {
	cyclic := dsl.New("CycleDsl", "cycle")
	cyclic.Entry("start").Transitions("a")
	cyclic.Action("a").Type("A").Keywords("a").Extends("B")
	cyclic.Action("b").Type("B").Keywords("a").Extends("A")

	_, err := emit.NewPlanner().Plan(context.Background(), cyclic.MustBuild())
	require.ErrorIs(t, err, domain.ErrInvalidDefinition)

	dup := dsl.New("DupDsl", "dup")
	dup.Entry("start").Transitions("k")
	dup.Action("one").Type("Same").Keywords("k")
	dup.Action("two").Type("Same").Keywords("k")

	_, err = emit.NewPlanner().Plan(context.Background(), dup.MustBuild())
	assert.ErrorIs(t, err, domain.ErrDuplicateAction)
}

func TestPlan_IsDeterministicAcrossRuns(t *testing.T) {
	first, err := emit.NewPlanner().Plan(context.Background(), shapes())
	require.NoError(t, err)
	second, err := emit.NewPlanner().Plan(context.Background(), shapes())
	require.NoError(t, err)

	assert.Equal(t, interfaceNames(first), interfaceNames(second))
	for i := range first.Interfaces {
		var a, b []string
		for _, m := range first.Interfaces[i].Interfaces {
			a = append(a, m.Key())
		}
		for _, m := range second.Interfaces[i].Interfaces {
			b = append(b, m.Key())
		}
		assert.Equal(t, a, b)
	}
}
