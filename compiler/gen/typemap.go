package gen

import (
	"fmt"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// NamedDefinition is a resolved target type name. Interface reports whether
// the underlying GraphQL type is an interface.
type NamedDefinition struct {
	Name      string
	Interface bool
}

// lookup resolves the target value of a named type, optionally scoped to a
// field of a parent type. ok is false when the lookup does not apply.
type lookup func(typeName, field, parent string) (v string, ok bool)

// lookupChain evaluates lookups in order and returns the first match.
func lookupChain(lookups ...lookup) lookup {
	return func(typeName, field, parent string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(typeName, field, parent); ok {
				return v, true
			}
		}
		return "", false
	}
}

// fieldScoped applies get to the "Parent.field" key.
func fieldScoped(get func(string) (string, bool)) lookup {
	return func(_, field, parent string) (string, bool) {
		if field == "" || parent == "" {
			return "", false
		}
		return get(parent + "." + field)
	}
}

// typeScoped applies get to the type name.
func typeScoped(get func(string) (string, bool)) lookup {
	return func(typeName, _, _ string) (string, bool) {
		return get(typeName)
	}
}

func (c *Context) targetType() lookup {
	return lookupChain(
		fieldScoped(c.CustomType),
		typeScoped(c.CustomType),
		func(typeName, _, _ string) (string, bool) { return c.ModelName(typeName), true },
	)
}

// MapType resolves the target type of a type reference declared on field
// of the parent type. List elements of interface type are wrapped in the
// covariant list form when the parent is an interface too.
func (c *Context) MapType(ref load.TypeRef, field, parent string) (NamedDefinition, error) {
	switch r := ref.(type) {
	case load.NamedType:
		name, _ := c.targetType()(r.Name, field, parent)
		return NamedDefinition{Name: name, Interface: c.IsInterface(r.Name)}, nil
	case load.ListType:
		nd, err := c.MapType(r.Elem, field, parent)
		if err != nil {
			return NamedDefinition{}, err
		}
		if nd.Interface && c.IsInterface(parent) {
			nd.Name = c.lang.CovariantListType(nd.Name)
		} else {
			nd.Name = c.lang.ListType(nd.Name)
		}
		return nd, nil
	case load.NonNullType:
		return c.MapType(r.Elem, field, parent)
	default:
		return NamedDefinition{}, NewTypeShapeError(parent, field, fmt.Sprintf("unknown type reference %T", ref))
	}
}

// MapTypeName resolves the target type of a named GraphQL type.
func (c *Context) MapTypeName(name string) string {
	t, _ := c.targetType()(name, "", "")
	return t
}

// NestedTypeName strips all list and non-null wrappers from ref.
// It returns false for unknown reference shapes.
func NestedTypeName(ref load.TypeRef) (string, bool) {
	switch r := ref.(type) {
	case load.NamedType:
		return r.Name, true
	case load.ListType:
		return NestedTypeName(r.Elem)
	case load.NonNullType:
		return NestedTypeName(r.Elem)
	default:
		return "", false
	}
}

// IsMandatory reports whether the outermost wrapper of ref is non-null.
func IsMandatory(ref load.TypeRef) bool {
	_, ok := ref.(load.NonNullType)
	return ok
}
