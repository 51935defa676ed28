package gen

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// HasResolver reports whether field f of the parent type is served by a
// field resolver instead of a model field. Exclusions win over inclusions.
func (c *Context) HasResolver(f *load.Field, parent string) bool {
	if c.FieldsWithoutResolvers(parent) || c.FieldsWithoutResolvers(parent+"."+f.Name) {
		return false
	}
	if c.GenerateParameterizedFieldsResolvers() && len(f.Arguments) > 0 {
		return true
	}
	if c.GenerateExtensionFieldsResolvers() && f.FromExtension {
		return true
	}
	nested, _ := NestedTypeName(f.Type)
	return c.FieldsWithResolvers(nested) || c.FieldsWithResolvers(parent+"."+f.Name)
}

// operation maps a field to an API method. Field resolvers take the parent
// object as first parameter.
func (c *Context) operation(f *load.Field, parent string, kind ast.Operation, resolver bool) (*Operation, error) {
	nd, err := c.MapType(f.Type, f.Name, parent)
	if err != nil {
		return nil, err
	}
	annotations, err := c.ResolveAnnotations(f.Type, f.Name, parent, f.Directives)
	if err != nil {
		return nil, err
	}
	params := []*Parameter{}
	if resolver {
		model := c.ModelName(parent)
		params = append(params, &Parameter{
			Name:         c.lang.SafeName(Uncapitalize(model)),
			OriginalName: Uncapitalize(parent),
			Type:         model,
			Annotations:  []string{},
		})
	}
	for _, a := range f.Arguments {
		at, err := c.MapType(a.Type, a.Name, parent)
		if err != nil {
			return nil, err
		}
		aa, err := c.ResolveAnnotations(a.Type, a.Name, parent, a.Directives)
		if err != nil {
			return nil, err
		}
		params = append(params, &Parameter{
			Name:         c.lang.SafeName(a.Name),
			OriginalName: a.Name,
			Type:         at.Name,
			Annotations:  aa,
		})
	}
	if c.GenerateDataFetchingEnvironmentArgumentInAPIs() {
		params = append(params, &Parameter{
			Name:         "env",
			OriginalName: "env",
			Type:         c.lang.DataFetchingEnvironment(),
			Annotations:  []string{},
		})
	}
	deprecated, reason := deprecation(f.Directives)
	return &Operation{
		Name:              c.lang.SafeName(f.Name),
		OriginalName:      f.Name,
		Type:              c.WrapIfAsync(nd.Name, kind),
		Annotations:       annotations,
		Parameters:        params,
		JavaDoc:           javaDoc(f.Description),
		Deprecated:        deprecated,
		DeprecationReason: reason,
	}, nil
}

func (c *Context) operations(fields []*load.Field, parent string, kind ast.Operation, resolver bool) ([]*Operation, error) {
	ops := make([]*Operation, 0, len(fields))
	for _, f := range fields {
		op, err := c.operation(f, parent, kind, resolver)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// RootAPIModel maps a root type group to one interface holding all of its
// operations.
func (c *Context) RootAPIModel(group *load.Definition, split bool) (DataModel, error) {
	kind, _ := c.OperationKind(group.Name)
	ops, err := c.operations(group.Fields(), group.Name, kind, false)
	if err != nil {
		return nil, err
	}
	m := c.apiClass(c.RootAPIName(group, split))
	m[KeyOperations] = ops
	m[KeyOperationType] = string(kind)
	m[KeyAnnotations] = c.TypeAnnotations(group.Name, group.Directives())
	m[KeyJavaDoc] = javaDoc(group.Description())
	return m, nil
}

// OperationAPIModel maps a single root operation to its own interface.
func (c *Context) OperationAPIModel(group *load.Definition, split bool, f *load.Field) (DataModel, error) {
	kind, _ := c.OperationKind(group.Name)
	op, err := c.operation(f, group.Name, kind, false)
	if err != nil {
		return nil, err
	}
	m := c.apiClass(c.OperationAPIName(group, split, f.Name))
	m[KeyOperations] = []*Operation{op}
	m[KeyOperationName] = f.Name
	m[KeyOperationType] = string(kind)
	m[KeyJavaDoc] = javaDoc(f.Description)
	return m, nil
}

// FieldResolverModel maps the resolver fields of a type or interface to a
// field resolver interface. It returns false when no field needs a resolver.
func (c *Context) FieldResolverModel(def *load.Definition) (DataModel, bool, error) {
	var fields []*load.Field
	for _, f := range c.allFields(def) {
		if c.HasResolver(f, def.Name) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil, false, nil
	}
	ops, err := c.operations(fields, def.Name, "", true)
	if err != nil {
		return nil, false, err
	}
	m := c.apiClass(c.TypeResolverName(def.Name))
	m[KeyOperations] = ops
	return m, true, nil
}
