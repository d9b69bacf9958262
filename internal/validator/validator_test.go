package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/dsl"
)

func TestValidate_Valid(t *testing.T) {
	b := dsl.New("ShapeDsl", "shapes")
	b.Entry("create").Transitions("shape")
	b.Action("circle").Keywords("shape").Transitions("end")
	b.Action("square").Keywords("shape").Transitions("end")
	b.Terminal("done").Keywords("end")

	warnings, err := Validate(b.MustBuild())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_Warnings(t *testing.T) {
	b := dsl.New("X", "x")
	b.Entry("start").Transitions("a", "ghost")
	b.Action("a").Keywords("a")
	b.Action("island").Keywords("nowhere")

	warnings, err := Validate(b.MustBuild())
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "start", warnings[0].Action)
	assert.Contains(t, warnings[0].Reason, `"ghost"`)
	assert.Equal(t, Warning{Action: "island", Reason: "unreachable from any entry point"}, warnings[1])
	assert.Equal(t, `action "island": unreachable from any entry point`, warnings[1].String())
}

func TestValidate_InheritedTransitionsReach(t *testing.T) {
	b := dsl.New("X", "x")
	b.Entry("start").Transitions("opt", "end")
	b.Action("opt").Keywords("opt").UsePrevious()
	b.Terminal("finish").Keywords("end")

	warnings, err := Validate(b.MustBuild())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	b := dsl.New("", "x")
	b.Action("lonely")
	b.Action("again").Type("Lonely").Keywords("k")

	_, err := Validate(b.MustBuild())
	require.Error(t, err)

	errs := domain.ValidationErrors(err)
	assert.Len(t, errs, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	assert.ErrorIs(t, err, domain.ErrDuplicateAction)
	assert.ErrorIs(t, err, domain.ErrNoEntryPoints)
}

func TestValidate_EntryWithUsePrevious(t *testing.T) {
	b := dsl.New("X", "x")
	b.Entry("start").UsePrevious()

	_, err := Validate(b.MustBuild())
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
}

func TestValidate_ExtendsCycle(t *testing.T) {
	b := dsl.New("X", "x")
	b.Entry("start").Transitions("a")
	b.Action("a").Keywords("a").Extends("b")
	b.Action("b").Keywords("b").Extends("a")

	_, err := Validate(b.MustBuild())
	require.ErrorIs(t, err, domain.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "cyclic")
}

func TestValidate_MissingType(t *testing.T) {
	def := &domain.Definition{Name: "X", Actions: []*domain.Action{{Method: "start", EntryPoint: true}}}
	_, err := Validate(def)
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}
