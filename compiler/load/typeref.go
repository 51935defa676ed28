package load

import "github.com/vektah/gqlparser/v2/ast"

// TypeRef is a reference to a GraphQL type, possibly wrapped in list and
// non-null modifiers. It is a closed set of three cases: NamedType, ListType
// and NonNullType. A NamedType always terminates the recursion.
type TypeRef interface {
	typeRef()
	// String returns the SDL form of the reference, e.g. "[Event!]!".
	String() string
}

// NamedType references a named type, e.g. "Event".
type NamedType struct {
	Name string
}

// ListType wraps an element reference in a list, e.g. "[Event]".
type ListType struct {
	Elem TypeRef
}

// NonNullType marks the wrapped reference as non-nullable, e.g. "Event!".
type NonNullType struct {
	Elem TypeRef
}

func (NamedType) typeRef()   {}
func (ListType) typeRef()    {}
func (NonNullType) typeRef() {}

func (t NamedType) String() string { return t.Name }

func (t ListType) String() string { return "[" + refString(t.Elem) + "]" }

func (t NonNullType) String() string { return refString(t.Elem) + "!" }

func refString(t TypeRef) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Named returns a reference to the named type.
func Named(name string) TypeRef { return NamedType{Name: name} }

// List returns a list reference of the given element.
func List(elem TypeRef) TypeRef { return ListType{Elem: elem} }

// NonNull returns a non-null reference of the given element.
func NonNull(elem TypeRef) TypeRef { return NonNullType{Elem: elem} }

// TypeRefOf converts a gqlparser type into a TypeRef. The non-null flag of
// the AST becomes an outer NonNullType wrapper. A nil type yields nil.
func TypeRefOf(t *ast.Type) TypeRef {
	if t == nil {
		return nil
	}
	var ref TypeRef
	if t.Elem != nil {
		ref = ListType{Elem: TypeRefOf(t.Elem)}
	} else {
		ref = NamedType{Name: t.NamedType}
	}
	if t.NonNull {
		ref = NonNullType{Elem: ref}
	}
	return ref
}
