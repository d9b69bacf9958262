/*
Package dsl provides a Go API for declaring the actions of a staged fluent interface.

It is the programmatic counterpart of YAML/JSON definition files: each action names a method,
the keywords under which it may follow another action and the keywords it allows next.

Example usage:

	package main

	import (
		"context"

		"github.com/aretw0/staged/pkg/dsl"
		"github.com/aretw0/staged/pkg/emit"
	)

	func main() {
		b := dsl.New("ShapeDsl", "shapes")

		b.Entry("create").Transitions("shape")
		b.Action("circle").Type("CreateableCircle").Keywords("shape").Transitions("end")
		b.Action("square").Type("CreateableSquare").Keywords("shape").Transitions("end")
		b.Terminal("done").Keywords("end").Returns("Shape")

		def := b.MustBuild()
		plan, _ := emit.NewPlanner().Plan(context.Background(), def)
		// plan.All() can be rendered with the staged CLI or internal/render.
		_ = plan
	}
*/
package dsl
