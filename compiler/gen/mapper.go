package gen

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

const defaultDeprecationReason = "No longer supported"

// model returns a data model holding the keys shared by all artifacts.
func (c *Context) model(pkg, className string) DataModel {
	return DataModel{
		KeyPackage:       pkg,
		KeyImports:       []string{},
		KeyClassName:     className,
		KeyImplements:    []string{},
		KeyAnnotations:   []string{},
		KeyJavaDoc:       []string{},
		KeyGeneratedInfo: c.info,
	}
}

// modelClass returns a data model of a class in the model package.
func (c *Context) modelClass(className string) DataModel {
	m := c.model(c.ModelPackageName(), className)
	m[KeyBuilder] = c.GenerateBuilder()
	m[KeyEqualsAndHashCode] = c.GenerateEqualsAndHashCode()
	m[KeyToString] = c.GenerateToString()
	m[KeyImmutableModels] = c.GenerateImmutableModels()
	return m
}

// apiClass returns a data model of an interface in the API package.
func (c *Context) apiClass(className string) DataModel {
	m := c.model(c.APIPackageName(), className)
	if pkg := c.ModelPackageName(); pkg != "" && pkg != c.APIPackageName() {
		m[KeyImports] = []string{pkg}
	}
	return m
}

// javaDoc splits a description into trimmed doc lines.
func javaDoc(description string) []string {
	lines := []string{}
	description = strings.TrimSpace(description)
	if description == "" {
		return lines
	}
	for _, l := range strings.Split(description, "\n") {
		lines = append(lines, strings.TrimSpace(l))
	}
	return lines
}

// deprecation reports whether directives mark a deprecated element, and why.
func deprecation(directives ast.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil && arg.Value.Kind != ast.NullValue {
		return true, arg.Value.Raw
	}
	return true, defaultDeprecationReason
}

// allFields returns the fields of def followed by the fields of its
// interfaces that def does not declare.
func (c *Context) allFields(def *load.Definition) []*load.Field {
	fields := def.Fields()
	for _, name := range def.Interfaces() {
		iface, ok := c.doc.Definition(name)
		if !ok {
			continue
		}
		for _, f := range iface.Fields() {
			if !slices.ContainsFunc(fields, func(o *load.Field) bool { return o.Name == f.Name }) {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

// mapField maps a field of the parent type.
func (c *Context) mapField(f *load.Field, parent string) (*Field, error) {
	nd, err := c.MapType(f.Type, f.Name, parent)
	if err != nil {
		return nil, err
	}
	annotations, err := c.ResolveAnnotations(f.Type, f.Name, parent, f.Directives)
	if err != nil {
		return nil, err
	}
	deprecated, reason := deprecation(f.Directives)
	field := &Field{
		Name:              c.lang.SafeName(f.Name),
		OriginalName:      f.Name,
		Type:              nd.Name,
		Annotations:       annotations,
		JavaDoc:           javaDoc(f.Description),
		Deprecated:        deprecated,
		DeprecationReason: reason,
	}
	if f.DefaultValue != nil {
		field.DefaultValue = c.MapValue(f.DefaultValue, f.Type, FormatNone)
	}
	return field, nil
}

func (c *Context) mapFields(fields []*load.Field, parent string) ([]*Field, error) {
	mapped := make([]*Field, 0, len(fields))
	for _, f := range fields {
		field, err := c.mapField(f, parent)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, field)
	}
	return mapped, nil
}

// mapArguments maps field arguments to model fields, as used by requests
// and parametrized inputs.
func (c *Context) mapArguments(args []*load.Argument, parent string) ([]*Field, error) {
	fields := make([]*load.Field, len(args))
	for i, a := range args {
		fields[i] = &load.Field{
			Name:         a.Name,
			Description:  a.Description,
			Type:         a.Type,
			Directives:   a.Directives,
			DefaultValue: a.DefaultValue,
		}
	}
	return c.mapFields(fields, parent)
}

// isComposite reports whether name is an object, interface or union type.
func (c *Context) isComposite(name string) bool {
	def, ok := c.doc.Definition(name)
	if !ok {
		return false
	}
	switch def.Kind {
	case ast.Object, ast.Interface, ast.Union:
		return true
	}
	return false
}
