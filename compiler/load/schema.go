// Package load builds the schema document consumed by the mapping engine from
// GraphQL SDL sources.
package load

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Location is the physical source of a definition.
type Location struct {
	// File holds the source name, usually the schema file path.
	File string
	// Folder holds the directory containing File.
	Folder string
}

func locationOf(pos *ast.Position) Location {
	if pos == nil || pos.Src == nil {
		return Location{}
	}
	return Location{File: pos.Src.Name, Folder: filepath.Dir(pos.Src.Name)}
}

// Field is a field of an object, interface or input type.
type Field struct {
	Name        string
	Description string
	Type        TypeRef
	Arguments   []*Argument
	Directives  ast.DirectiveList
	// DefaultValue is only set on input object fields.
	DefaultValue *ast.Value
	// FromExtension reports if the field was declared in a type extension.
	FromExtension bool
	Location      Location
}

// Argument is an argument of a field.
type Argument struct {
	Name         string
	Description  string
	Type         TypeRef
	DefaultValue *ast.Value
	Directives   ast.DirectiveList
}

// EnumValue is a value of an enum type.
type EnumValue struct {
	Name        string
	Description string
	Directives  ast.DirectiveList
}

// Definition is a named type definition together with all its extensions.
// The base definition may be absent when a type is only known from
// extensions, or after grouping by location.
type Definition struct {
	Kind       ast.DefinitionKind
	Name       string
	base       *ast.Definition
	extensions []*ast.Definition
}

// Base returns the base definition, or nil.
func (d *Definition) Base() *ast.Definition { return d.base }

// Extensions returns the extension definitions in declaration order.
func (d *Definition) Extensions() []*ast.Definition { return d.extensions }

func (d *Definition) parts() []*ast.Definition {
	parts := make([]*ast.Definition, 0, len(d.extensions)+1)
	if d.base != nil {
		parts = append(parts, d.base)
	}
	return append(parts, d.extensions...)
}

// Description returns the description of the base definition.
func (d *Definition) Description() string {
	if d.base == nil {
		return ""
	}
	return d.base.Description
}

// Directives returns the directives of the definition and its extensions.
func (d *Definition) Directives() ast.DirectiveList {
	var dirs ast.DirectiveList
	for _, p := range d.parts() {
		dirs = append(dirs, p.Directives...)
	}
	return dirs
}

// Interfaces returns the names of the implemented interfaces.
func (d *Definition) Interfaces() []string {
	return d.collect(func(p *ast.Definition) []string { return p.Interfaces })
}

// Types returns the member type names of a union.
func (d *Definition) Types() []string {
	return d.collect(func(p *ast.Definition) []string { return p.Types })
}

func (d *Definition) collect(fn func(*ast.Definition) []string) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	for _, p := range d.parts() {
		for _, n := range fn(p) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	return names
}

// Fields returns the fields of the definition followed by extension fields.
func (d *Definition) Fields() []*Field {
	var fields []*Field
	for _, p := range d.parts() {
		ext := p != d.base
		for _, f := range p.Fields {
			fields = append(fields, newField(f, ext))
		}
	}
	return fields
}

// Field returns the field with the given name.
func (d *Definition) Field(name string) (*Field, bool) {
	for _, f := range d.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// EnumValues returns the values of an enum definition and its extensions.
func (d *Definition) EnumValues() []*EnumValue {
	var values []*EnumValue
	for _, p := range d.parts() {
		for _, v := range p.EnumValues {
			values = append(values, &EnumValue{
				Name:        v.Name,
				Description: v.Description,
				Directives:  v.Directives,
			})
		}
	}
	return values
}

// Location returns the location of the base definition, or of the first
// extension if the base is absent.
func (d *Definition) Location() Location {
	if parts := d.parts(); len(parts) > 0 {
		return locationOf(parts[0].Position)
	}
	return Location{}
}

// GroupByFile splits the definition by source file, keeping the order in
// which files first appear.
func (d *Definition) GroupByFile() []*Definition {
	return d.groupBy(func(l Location) string { return l.File })
}

// GroupByFolder splits the definition by source folder, keeping the order in
// which folders first appear.
func (d *Definition) GroupByFolder() []*Definition {
	return d.groupBy(func(l Location) string { return l.Folder })
}

func (d *Definition) groupBy(key func(Location) string) []*Definition {
	var (
		groups []*Definition
		index  = make(map[string]*Definition)
	)
	for _, p := range d.parts() {
		k := key(locationOf(p.Position))
		g, ok := index[k]
		if !ok {
			g = &Definition{Kind: d.Kind, Name: d.Name}
			index[k] = g
			groups = append(groups, g)
		}
		if p == d.base {
			g.base = p
		} else {
			g.extensions = append(g.extensions, p)
		}
	}
	return groups
}

func newField(f *ast.FieldDefinition, ext bool) *Field {
	nf := &Field{
		Name:          f.Name,
		Description:   f.Description,
		Type:          TypeRefOf(f.Type),
		Directives:    f.Directives,
		DefaultValue:  f.DefaultValue,
		FromExtension: ext,
		Location:      locationOf(f.Position),
	}
	for _, a := range f.Arguments {
		nf.Arguments = append(nf.Arguments, &Argument{
			Name:         a.Name,
			Description:  a.Description,
			Type:         TypeRefOf(a.Type),
			DefaultValue: a.DefaultValue,
			Directives:   a.Directives,
		})
	}
	return nf
}

// Document is a parsed set of schema sources, with definitions classified by
// kind in declaration order.
type Document struct {
	Types      []*Definition // object types, root operation types excluded
	Operations []*Definition // root operation types
	Inputs     []*Definition
	Enums      []*Definition
	Unions     []*Definition
	Interfaces []*Definition
	Scalars    []*Definition

	roots map[string]ast.Operation
	defs  map[string]*Definition
}

// Operation reports the root operation kind of the named type.
func (d *Document) Operation(name string) (ast.Operation, bool) {
	op, ok := d.roots[name]
	return op, ok
}

// Definition returns the definition with the given name.
func (d *Document) Definition(name string) (*Definition, bool) {
	def, ok := d.defs[name]
	return def, ok
}

// Files reads and parses the given schema files.
func Files(paths ...string) (*Document, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", p, err)
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(data)})
	}
	return Parse(sources...)
}

// Parse parses the given SDL sources into a Document.
func Parse(sources ...*ast.Source) (*Document, error) {
	sd, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return NewDocument(sd), nil
}

// NewDocument classifies the definitions of a parsed schema document.
// Extensions are attached to their base definition regardless of the
// source they appear in.
func NewDocument(sd *ast.SchemaDocument) *Document {
	d := &Document{
		roots: map[string]ast.Operation{
			"Query":        ast.Query,
			"Mutation":     ast.Mutation,
			"Subscription": ast.Subscription,
		},
		defs: make(map[string]*Definition),
	}
	if ops := rootOperations(sd); len(ops) > 0 {
		d.roots = ops
	}
	var order []*Definition
	get := func(def *ast.Definition) *Definition {
		nd, ok := d.defs[def.Name]
		if !ok {
			nd = &Definition{Kind: def.Kind, Name: def.Name}
			d.defs[def.Name] = nd
			order = append(order, nd)
		}
		return nd
	}
	for _, def := range sd.Definitions {
		if def.BuiltIn {
			continue
		}
		nd := get(def)
		if nd.base != nil {
			// Redeclared type: treat as an extension of the first declaration.
			nd.extensions = append(nd.extensions, def)
			continue
		}
		nd.base = def
	}
	for _, ext := range sd.Extensions {
		nd := get(ext)
		nd.extensions = append(nd.extensions, ext)
	}
	for _, nd := range order {
		switch nd.Kind {
		case ast.Object:
			if _, ok := d.roots[nd.Name]; ok {
				d.Operations = append(d.Operations, nd)
			} else {
				d.Types = append(d.Types, nd)
			}
		case ast.InputObject:
			d.Inputs = append(d.Inputs, nd)
		case ast.Enum:
			d.Enums = append(d.Enums, nd)
		case ast.Union:
			d.Unions = append(d.Unions, nd)
		case ast.Interface:
			d.Interfaces = append(d.Interfaces, nd)
		case ast.Scalar:
			d.Scalars = append(d.Scalars, nd)
		}
	}
	return d
}

func rootOperations(sd *ast.SchemaDocument) map[string]ast.Operation {
	ops := make(map[string]ast.Operation)
	for _, list := range []ast.SchemaDefinitionList{sd.Schema, sd.SchemaExtension} {
		for _, s := range list {
			for _, ot := range s.OperationTypes {
				ops[ot.Type] = ot.Operation
			}
		}
	}
	return ops
}
