package gen

import (
	"slices"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// TypeModel maps an object type to a model class. Fields served by field
// resolvers are left out of the class.
func (c *Context) TypeModel(def *load.Definition) (DataModel, error) {
	var fields []*load.Field
	for _, f := range c.allFields(def) {
		if !c.HasResolver(f, def.Name) {
			fields = append(fields, f)
		}
	}
	mapped, err := c.mapFields(fields, def.Name)
	if err != nil {
		return nil, err
	}
	m := c.modelClass(c.ModelName(def.Name))
	m[KeyImplements] = c.implements(def)
	m[KeyFields] = mapped
	m[KeyAnnotations] = c.TypeAnnotations(def.Name, def.Directives())
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m, nil
}

// implements returns the model names of the interfaces of def and of the
// unions def is a member of.
func (c *Context) implements(def *load.Definition) []string {
	names := []string{}
	for _, name := range def.Interfaces() {
		names = append(names, c.ModelName(name))
	}
	for _, u := range c.doc.Unions {
		if slices.Contains(u.Types(), def.Name) {
			names = append(names, c.ModelName(u.Name))
		}
	}
	return names
}

// InputModel maps an input object type to a model class.
func (c *Context) InputModel(def *load.Definition) (DataModel, error) {
	mapped, err := c.mapFields(def.Fields(), def.Name)
	if err != nil {
		return nil, err
	}
	m := c.modelClass(c.ModelName(def.Name))
	m[KeyFields] = mapped
	m[KeyAnnotations] = c.TypeAnnotations(def.Name, def.Directives())
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m, nil
}

// InterfaceModel maps an interface type to a model interface. List fields
// of interface element types use the covariant list form.
func (c *Context) InterfaceModel(def *load.Definition) (DataModel, error) {
	mapped, err := c.mapFields(def.Fields(), def.Name)
	if err != nil {
		return nil, err
	}
	m := c.model(c.ModelPackageName(), c.ModelName(def.Name))
	m[KeyImplements] = c.implements(def)
	m[KeyFields] = mapped
	m[KeyAnnotations] = c.TypeAnnotations(def.Name, def.Directives())
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m, nil
}

// EnumModel maps an enum type.
func (c *Context) EnumModel(def *load.Definition) DataModel {
	values := []*EnumValue{}
	for _, v := range def.EnumValues() {
		deprecated, reason := deprecation(v.Directives)
		values = append(values, &EnumValue{
			Name:              c.lang.SafeName(v.Name),
			OriginalName:      v.Name,
			JavaDoc:           javaDoc(v.Description),
			Deprecated:        deprecated,
			DeprecationReason: reason,
		})
	}
	m := c.model(c.ModelPackageName(), c.ModelName(def.Name))
	m[KeyImplements] = c.implements(def)
	m[KeyEnumValues] = values
	m[KeyAnnotations] = c.TypeAnnotations(def.Name, def.Directives())
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m
}

// UnionModel maps a union type to a marker interface implemented by its
// members.
func (c *Context) UnionModel(def *load.Definition) DataModel {
	m := c.model(c.ModelPackageName(), c.ModelName(def.Name))
	m[KeyAnnotations] = c.TypeAnnotations(def.Name, def.Directives())
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m
}
