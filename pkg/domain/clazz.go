package domain

// Method is a method of a generated interface.
type Method struct {
	Name   string
	Params []Param
	// Returns is nil for methods without a result.
	Returns *TypeRef
}

// Clazz describes one interface to render.
type Clazz struct {
	Package string
	Name    string
	Kind    Kind
	// Generics are the type parameters of the interface.
	Generics   []*TypeRef
	Interfaces []*TypeRef
	Methods    []Method
	Attributes Attributes
}

// Attributes carries the typed metadata of a generated interface.
type Attributes struct {
	Terminal         bool
	Composite        bool
	Transparent      bool
	EntryPoint       bool
	TerminatingTypes []*TypeRef
}

// Key returns the fully qualified name of the described interface.
func (c *Clazz) Key() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}
