package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	presentation "github.com/aretw0/staged/internal/presentation/graph"
	"github.com/aretw0/staged/pkg/domain"
	"github.com/aretw0/staged/pkg/dsl"
	"github.com/aretw0/staged/pkg/graph"
)

func definition() *domain.Definition {
	b := dsl.New("ShapeDsl", "example.com/shapes")
	b.Entry("create").Transitions("shape")
	b.Action("circle").Keywords("shape").Transitions("end", "opt")
	b.Action("tag").Keywords("opt").UsePrevious()
	b.Action("nested").Keywords("shape").Composite()
	b.Terminal("done").Keywords("end")
	return b.MustBuild()
}

func TestGenerateMermaid(t *testing.T) {
	roots, err := graph.NewBuilder().Build(definition().Actions)
	require.NoError(t, err)

	out := presentation.GenerateMermaid(roots)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))

	for _, want := range []string{
		`v0(("create()"))`,
		`v0_0["circle()"]`,
		`v0 --> v0_0`,
		`v0_0_0["tag() <br/> ↩ previous"]`,
		`v0_0_0_0(["done()"])`,
		`v0_0_1(["done()"])`,
		`v0_1[["nested()"]]`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerateActionMermaid(t *testing.T) {
	out := presentation.GenerateActionMermaid(definition())

	for _, want := range []string{
		`CreateInterface(("create()"))`,
		`DoneInterface(["done()"])`,
		`NestedInterface[["nested()"]]`,
		`CreateInterface -- "shape" --> CircleInterface`,
		`CreateInterface -- "shape" --> NestedInterface`,
		`CircleInterface -- "end" --> DoneInterface`,
		`CircleInterface -- "opt" --> TagInterface`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "--> CreateInterface", "entry points have no incoming edges")
	assert.NotContains(t, out, "DoneInterface --", "terminal actions have no outgoing edges")
}
