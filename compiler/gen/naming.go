package gen

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// ResolveName joins prefix, base and suffix without changing case.
func ResolveName(base, prefix, suffix string) string {
	return prefix + base + suffix
}

// Capitalize upper-cases the first letter of s and keeps the rest. It is
// safe for concurrent use; a cases.Caser is not, so each call builds its own.
func Capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Uncapitalize lower-cases the first letter of s.
func Uncapitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// ModelName returns the model class name of a GraphQL type.
func (c *Context) ModelName(name string) string {
	return ResolveName(name, c.ModelNamePrefix(), c.ModelNameSuffix())
}

// TypeResolverName returns the field resolver interface name of a GraphQL type.
func (c *Context) TypeResolverName(name string) string {
	return ResolveName(name, c.TypeResolverPrefix(), c.TypeResolverSuffix())
}

// APIPrefix returns the API name prefix of a root type group. Location
// based strategies apply only to groups of a root type split over several
// files or folders; otherwise the constant prefix is used.
func (c *Context) APIPrefix(group *load.Definition, split bool) string {
	if !split {
		return c.APINamePrefix()
	}
	loc := group.Location()
	switch c.APINamePrefixStrategy() {
	case PrefixFileName:
		base := filepath.Base(loc.File)
		return inflect.Camelize(strings.TrimSuffix(base, filepath.Ext(base)))
	case PrefixFolderName:
		return inflect.Camelize(filepath.Base(loc.Folder))
	default:
		return c.APINamePrefix()
	}
}

// RootAPIName returns the name of the root API interface of a root type group.
func (c *Context) RootAPIName(group *load.Definition, split bool) string {
	return ResolveName(Capitalize(group.Name), c.APIPrefix(group, split), c.APINameSuffix())
}

// OperationAPIName returns the name of the API interface of one operation.
func (c *Context) OperationAPIName(group *load.Definition, split bool, field string) string {
	return ResolveName(Capitalize(field)+Capitalize(group.Name), c.APIPrefix(group, split), c.APINameSuffix())
}

// RequestName returns the client request class name of an operation.
func (c *Context) RequestName(root, field string) string {
	return Capitalize(field) + Capitalize(root) + c.RequestSuffix()
}

// ResponseName returns the client response class name of an operation.
func (c *Context) ResponseName(root, field string) string {
	return Capitalize(field) + Capitalize(root) + c.ResponseSuffix()
}

// ProjectionName returns the response projection class name of a type.
func (c *Context) ProjectionName(name string) string {
	return Capitalize(name) + c.ResponseProjectionSuffix()
}

// ParametrizedInputName returns the parametrized input class name of a field.
func (c *Context) ParametrizedInputName(parent, field string) string {
	return Capitalize(parent) + Capitalize(field) + c.ParametrizedInputSuffix()
}
