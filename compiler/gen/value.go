package gen

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// Formatter selects how a value is rendered into a directive template.
type Formatter string

// Value formatters. FormatNone renders lists as collection literal calls
// and is used for default values.
const (
	FormatNone             Formatter = ""
	FormatToString         Formatter = "?toString"
	FormatToArray          Formatter = "?toArray"
	FormatToArrayOfStrings Formatter = "?toArrayOfStrings"

	// formatInline is a placeholder without formatter token.
	formatInline Formatter = "?"
)

// FormatList renders values as a list literal. Without a formatter an empty
// list renders as the empty collection literal and a non-empty list as a
// collection literal call. Array formatters render a brace-delimited list,
// quoting every element for FormatToArrayOfStrings.
func FormatList(lang Language, values []string, f Formatter) string {
	switch f {
	case FormatNone:
		if len(values) == 0 {
			return lang.EmptyList()
		}
		return lang.ListOf(values)
	case FormatToArrayOfStrings:
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = Format(lang, v, FormatToString)
		}
		return lang.ArrayOf(quoted)
	default:
		return lang.ArrayOf(values)
	}
}

// Format renders a scalar value, quoting it for FormatToString only.
func Format(lang Language, value string, f Formatter) string {
	if f == FormatToString {
		return lang.Quote(value)
	}
	return value
}

// MapValue renders a GraphQL literal in the target language. ref is the
// declared type of the value, used to qualify enum constants; it may be nil.
// String literals are quoted once regardless of the formatter.
func (c *Context) MapValue(v *ast.Value, ref load.TypeRef, f Formatter) string {
	if v == nil {
		return Format(c.lang, c.lang.Null(), f)
	}
	// A single value given for a list type is coerced to a one-element list.
	if v.Kind != ast.ListValue && v.Kind != ast.NullValue && isListRef(ref) {
		return FormatList(c.lang, []string{c.mapElement(v, listElem(ref), f)}, f)
	}
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return c.lang.Quote(v.Raw)
	case ast.NullValue:
		return Format(c.lang, c.lang.Null(), f)
	case ast.EnumValue:
		if name, ok := c.enumType(ref); ok {
			return Format(c.lang, c.lang.EnumConstant(c.MapTypeName(name), v.Raw), f)
		}
		return Format(c.lang, v.Raw, f)
	case ast.ListValue:
		var elem load.TypeRef
		if ref != nil {
			elem = listElem(ref)
		}
		values := make([]string, 0, len(v.Children))
		for _, child := range v.Children {
			values = append(values, c.mapElement(child.Value, elem, f))
		}
		return FormatList(c.lang, values, f)
	case ast.ObjectValue:
		keys := make([]string, 0, len(v.Children))
		values := make([]string, 0, len(v.Children))
		for _, child := range v.Children {
			keys = append(keys, child.Name)
			values = append(values, c.MapValue(child.Value, nil, c.nested(f)))
		}
		return c.lang.MapOf(keys, values)
	default:
		// Int, Float, Boolean and variables render raw.
		return Format(c.lang, v.String(), f)
	}
}

// mapElement renders a list element. FormatToArrayOfStrings quotes the
// elements itself, so string elements are passed unquoted.
func (c *Context) mapElement(v *ast.Value, ref load.TypeRef, f Formatter) string {
	if f == FormatToArrayOfStrings && v != nil && (v.Kind == ast.StringValue || v.Kind == ast.BlockValue) {
		return v.Raw
	}
	return c.MapValue(v, ref, c.nested(f))
}

func (c *Context) nested(f Formatter) Formatter {
	if f == FormatNone {
		return FormatNone
	}
	return formatInline
}

func (c *Context) enumType(ref load.TypeRef) (string, bool) {
	if ref == nil {
		return "", false
	}
	name, ok := NestedTypeName(ref)
	if !ok {
		return "", false
	}
	def, ok := c.doc.Definition(name)
	if !ok || def.Kind != ast.Enum {
		return "", false
	}
	return name, true
}

func isListRef(ref load.TypeRef) bool {
	switch r := ref.(type) {
	case load.NonNullType:
		return isListRef(r.Elem)
	case load.ListType:
		return true
	default:
		return false
	}
}

func listElem(ref load.TypeRef) load.TypeRef {
	switch r := ref.(type) {
	case load.NonNullType:
		return listElem(r.Elem)
	case load.ListType:
		return r.Elem
	default:
		// A single value coerced to a list keeps its type.
		return ref
	}
}
