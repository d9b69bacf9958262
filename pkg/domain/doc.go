/*
Package domain contains the core models of the staged DSL generator.

It defines the entities the grammar engine reasons about. The package is kept pure and free of
I/O so that every other layer (loading, planning, rendering, writing) can depend on it.

# Key Entities

  - TypeRef: A reference to a type (interface, class, type variable or builtin), optionally
    parameterized, together with the typed attributes the engine needs (terminal, composite,
    terminating types).
  - Action: One declared step of the fluent API: a method, the interface that carries it, the
    keywords it exposes and the transitions it allows.
  - Definition: The ordered set of actions of one DSL plus its target interface name and package.
  - Clazz: A renderable interface description handed to the renderer.
*/
package domain
