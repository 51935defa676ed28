package gen

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

func (c *Context) customAnnotation() lookup {
	return lookupChain(
		fieldScoped(c.CustomAnnotation),
		typeScoped(c.CustomAnnotation),
	)
}

// ResolveAnnotations returns the annotations of field name declared with
// type ref on the parent type, in emission order: the validation annotation
// of mandatory fields, one custom annotation, then one annotation per
// registered directive. Duplicates are kept.
func (c *Context) ResolveAnnotations(ref load.TypeRef, name, parent string, directives ast.DirectiveList) ([]string, error) {
	return c.resolveAnnotations(ref, name, parent, directives, false)
}

func (c *Context) resolveAnnotations(ref load.TypeRef, name, parent string, directives ast.DirectiveList, mandatory bool) ([]string, error) {
	switch r := ref.(type) {
	case load.NamedType:
		return c.annotations(r.Name, name, parent, directives, mandatory), nil
	case load.ListType:
		return c.resolveAnnotations(r.Elem, name, parent, directives, mandatory)
	case load.NonNullType:
		return c.resolveAnnotations(r.Elem, name, parent, directives, true)
	default:
		return nil, NewTypeShapeError(parent, name, fmt.Sprintf("unknown type reference %T", ref))
	}
}

// TypeAnnotations returns the annotations of a type definition.
func (c *Context) TypeAnnotations(name string, directives ast.DirectiveList) []string {
	return c.annotations(name, "", "", directives, false)
}

func (c *Context) annotations(typeName, name, parent string, directives ast.DirectiveList, mandatory bool) []string {
	annotations := []string{}
	if a := c.ModelValidationAnnotation(); mandatory && strings.TrimSpace(a) != "" {
		annotations = append(annotations, a)
	}
	if a, ok := c.customAnnotation()(typeName, name, parent); ok {
		annotations = append(annotations, a)
	}
	for _, d := range directives {
		if a, ok := c.directiveAnnotation(d); ok {
			annotations = append(annotations, a)
		}
	}
	return annotations
}
