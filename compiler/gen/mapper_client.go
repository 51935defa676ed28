package gen

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// typenameField is selectable on every composite type.
const typenameField = "__typename"

// RequestModel maps a root operation to a client request class whose
// fields are the operation arguments.
func (c *Context) RequestModel(root *load.Definition, f *load.Field) (DataModel, error) {
	kind, _ := c.OperationKind(root.Name)
	fields, err := c.mapArguments(f.Arguments, root.Name)
	if err != nil {
		return nil, err
	}
	m := c.modelClass(c.RequestName(root.Name, f.Name))
	m[KeyFields] = fields
	m[KeyOperationName] = f.Name
	m[KeyOperationType] = strings.ToUpper(string(kind))
	m[KeyJavaDoc] = javaDoc(f.Description)
	return m, nil
}

// ResponseModel maps a root operation to a client response class.
func (c *Context) ResponseModel(root *load.Definition, f *load.Field) (DataModel, error) {
	kind, _ := c.OperationKind(root.Name)
	nd, err := c.MapType(f.Type, f.Name, root.Name)
	if err != nil {
		return nil, err
	}
	m := c.modelClass(c.ResponseName(root.Name, f.Name))
	m[KeyReturnType] = nd.Name
	m[KeyOperationName] = f.Name
	m[KeyOperationType] = strings.ToUpper(string(kind))
	m[KeyJavaDoc] = javaDoc(f.Description)
	return m, nil
}

// ProjectionModel maps an object, interface or union type to a response
// projection selecting its fields. Union projections select their members
// with inline fragments.
func (c *Context) ProjectionModel(def *load.Definition) DataModel {
	fields := []*ProjectionField{}
	if def.Kind == ast.Union {
		for _, member := range def.Types() {
			fields = append(fields, &ProjectionField{
				Name:       "...on " + member,
				MethodName: "on" + Capitalize(member),
				Type:       c.ProjectionName(member),
			})
		}
	} else {
		for _, f := range c.allFields(def) {
			pf := &ProjectionField{
				Name:       f.Name,
				MethodName: c.lang.SafeName(f.Name),
			}
			if nested, ok := NestedTypeName(f.Type); ok && c.isComposite(nested) {
				pf.Type = c.ProjectionName(nested)
			}
			if len(f.Arguments) > 0 {
				pf.ParametrizedInputClassName = c.ParametrizedInputName(def.Name, f.Name)
			}
			fields = append(fields, pf)
		}
	}
	fields = append(fields, &ProjectionField{Name: typenameField, MethodName: "typename"})
	m := c.model(c.ModelPackageName(), c.ProjectionName(def.Name))
	m[KeyFields] = fields
	m[KeyJavaDoc] = javaDoc(def.Description())
	return m
}

// ParametrizedInputModel maps the arguments of field f of the parent type
// to a parametrized input class.
func (c *Context) ParametrizedInputModel(parent *load.Definition, f *load.Field) (DataModel, error) {
	fields, err := c.mapArguments(f.Arguments, parent.Name)
	if err != nil {
		return nil, err
	}
	m := c.modelClass(c.ParametrizedInputName(parent.Name, f.Name))
	m[KeyFields] = fields
	m[KeyJavaDoc] = javaDoc(f.Description)
	return m, nil
}
