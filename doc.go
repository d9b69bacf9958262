/*
Package staged generates staged fluent interfaces ("step builders") from a flat set of
action declarations.

Each action names a method, the keywords under which it may follow another action and the
keywords it allows next. From these declarations staged builds the tree of legal call
sequences and emits one Go interface per action plus one interface per position where several
actions are reachable at once, so that only legal chains type-check.

# Concept

A definition is processed in a single run:

  - Expand: every entry action is expanded into a tree of successors (package graph). An action
    never repeats along one path, so cyclic transitions unroll into finite trees.
  - Combine: where several successors are reachable, their interfaces are merged into one union
    interface (package combine). Members fully covered by the others are dropped and equal
    unions are memoized for the run.
  - Emit: the per-action interfaces, the unions and the entry interface are described
    (package emit), rendered to Go (internal/render) and written as a unit (internal/output).

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/staged"
	)

	func main() {
		gen := staged.New(staged.WithOutputDir("./gen"))

		results, err := gen.GenerateFiles(context.Background(), "shapes.yaml")
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range results {
			log.Printf("%s: %d files", r.Plan.Entry.Name, len(r.Files))
		}
	}
*/
package staged
