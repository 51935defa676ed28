package gen

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/dave/jennifer/jen"
)

// Language describes the syntax of the target language that the data
// models are rendered to. The mapping engine never hard-codes collection,
// generic or literal syntax; it asks the Language.
type Language interface {
	// Name returns the language identifier, e.g. "java".
	Name() string
	// ListType wraps elem in the exact list type.
	ListType(elem string) string
	// CovariantListType wraps elem in an upper-bounded list type.
	CovariantListType(elem string) string
	// IsListType reports whether t is list-shaped.
	IsListType(t string) bool
	// ReplaceListType replaces the outer list wrapper of t with wrapper.
	ReplaceListType(t, wrapper string) string
	// GenericType parameterizes wrapper with param.
	GenericType(wrapper, param string) string
	// EmptyList returns the empty collection literal.
	EmptyList() string
	// ListOf returns a collection literal call of values.
	ListOf(values []string) string
	// ArrayOf returns a brace-delimited array of values.
	ArrayOf(values []string) string
	// MapOf returns a map literal for key/value pairs in declaration order.
	MapOf(keys, values []string) string
	// Quote returns s as a string literal.
	Quote(s string) string
	// Null returns the null literal.
	Null() string
	// EnumConstant references value of the enum type.
	EnumConstant(enumType, value string) string
	// ScalarTypes returns target types of the built-in GraphQL scalars.
	ScalarTypes() map[string]string
	// CustomScalarType returns the target type of custom scalars.
	CustomScalarType() string
	// ValidationAnnotation returns the default annotation of non-null fields.
	ValidationAnnotation() string
	// AsyncReturnType returns the default async wrapper type.
	AsyncReturnType() string
	// AnnotationMarker returns the leading marker of annotations, e.g. "@".
	AnnotationMarker() string
	// DataFetchingEnvironment returns the type of the data fetching environment argument.
	DataFetchingEnvironment() string
	// SafeName escapes identifiers that are reserved words.
	SafeName(name string) string
}

var languages = make(map[string]Language)

// RegisterLanguage adds a language to the registry.
func RegisterLanguage(l Language) {
	languages[l.Name()] = l
}

// LanguageByName retrieves a language by name.
func LanguageByName(name string) (Language, error) {
	l, ok := languages[strings.ToLower(name)]
	if !ok {
		return nil, NewConfigError("Language", name, fmt.Sprintf("unknown language; use one of %s", strings.Join(Languages(), ", ")))
	}
	return l, nil
}

// Languages returns all registered language names, sorted.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterLanguage(Java{})
	RegisterLanguage(Kotlin{})
	RegisterLanguage(Go{})
}

// Java is the default target language.
type Java struct{}

const javaList = "java.util.List"

var javaReserved = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class", "const",
	"continue", "default", "do", "double", "else", "enum", "extends", "final", "finally", "float",
	"for", "goto", "if", "implements", "import", "instanceof", "int", "interface", "long", "native",
	"new", "package", "private", "protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws", "transient", "try", "void",
	"volatile", "while", "true", "false", "null",
}

func (Java) Name() string                      { return "java" }
func (Java) ListType(elem string) string       { return javaList + "<" + elem + ">" }
func (Java) CovariantListType(e string) string { return javaList + "<? extends " + e + ">" }
func (Java) IsListType(t string) bool          { return strings.HasPrefix(t, javaList+"<") }
func (Java) GenericType(w, p string) string    { return w + "<" + p + ">" }
func (Java) EmptyList() string                 { return "java.util.Collections.emptyList()" }
func (Java) Null() string                      { return "null" }
func (Java) CustomScalarType() string          { return "String" }
func (Java) AnnotationMarker() string          { return "@" }

func (Java) ReplaceListType(t, wrapper string) string {
	return wrapper + strings.TrimPrefix(t, javaList)
}

func (Java) ListOf(values []string) string {
	return "java.util.Arrays.asList(" + strings.Join(values, ", ") + ")"
}

func (Java) ArrayOf(values []string) string {
	return "{" + strings.Join(values, ", ") + "}"
}

func (j Java) MapOf(keys, values []string) string {
	args := make([]string, 0, 2*len(keys))
	for i := range keys {
		args = append(args, j.Quote(keys[i]), values[i])
	}
	return "java.util.Map.of(" + strings.Join(args, ", ") + ")"
}

func (Java) Quote(s string) string { return `"` + cQuoter.Replace(s) + `"` }

func (Java) EnumConstant(enumType, value string) string { return enumType + "." + value }

func (Java) ScalarTypes() map[string]string {
	return map[string]string{
		"ID":      "String",
		"String":  "String",
		"Int":     "Integer",
		"Float":   "Double",
		"Boolean": "Boolean",
	}
}

func (Java) ValidationAnnotation() string { return "@javax.validation.constraints.NotNull" }
func (Java) AsyncReturnType() string      { return "java.util.concurrent.CompletableFuture" }

func (Java) DataFetchingEnvironment() string { return "graphql.schema.DataFetchingEnvironment" }

func (Java) SafeName(name string) string {
	if slices.Contains(javaReserved, name) {
		return Capitalize(name)
	}
	return name
}

var cQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// Kotlin targets Kotlin sources on the JVM.
type Kotlin struct{}

var kotlinReserved = []string{
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun", "if", "in",
	"interface", "is", "null", "object", "package", "return", "super", "this", "throw",
	"true", "try", "typealias", "typeof", "val", "var", "when", "while",
}

func (Kotlin) Name() string                      { return "kotlin" }
func (Kotlin) ListType(elem string) string       { return "List<" + elem + ">" }
func (Kotlin) CovariantListType(e string) string { return "List<out " + e + ">" }
func (Kotlin) IsListType(t string) bool          { return strings.HasPrefix(t, "List<") }
func (Kotlin) GenericType(w, p string) string    { return w + "<" + p + ">" }
func (Kotlin) EmptyList() string                 { return "emptyList()" }
func (Kotlin) Null() string                      { return "null" }
func (Kotlin) CustomScalarType() string          { return "String" }
func (Kotlin) AnnotationMarker() string          { return "@" }

func (Kotlin) ReplaceListType(t, wrapper string) string {
	return wrapper + strings.TrimPrefix(t, "List")
}

func (Kotlin) ListOf(values []string) string {
	return "listOf(" + strings.Join(values, ", ") + ")"
}

func (Kotlin) ArrayOf(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

func (k Kotlin) MapOf(keys, values []string) string {
	pairs := make([]string, len(keys))
	for i := range keys {
		pairs[i] = k.Quote(keys[i]) + " to " + values[i]
	}
	return "mapOf(" + strings.Join(pairs, ", ") + ")"
}

func (Kotlin) Quote(s string) string {
	return `"` + strings.ReplaceAll(cQuoter.Replace(s), "$", `\$`) + `"`
}

func (Kotlin) EnumConstant(enumType, value string) string { return enumType + "." + value }

func (Kotlin) ScalarTypes() map[string]string {
	return map[string]string{
		"ID":      "String",
		"String":  "String",
		"Int":     "Int",
		"Float":   "Double",
		"Boolean": "Boolean",
	}
}

func (Kotlin) ValidationAnnotation() string { return "@javax.validation.constraints.NotNull" }
func (Kotlin) AsyncReturnType() string      { return "java.util.concurrent.CompletableFuture" }

func (Kotlin) DataFetchingEnvironment() string { return "graphql.schema.DataFetchingEnvironment" }

func (Kotlin) SafeName(name string) string {
	if slices.Contains(kotlinReserved, name) {
		return "`" + name + "`"
	}
	return name
}

// Go targets Go sources. Type expressions and literals are rendered with
// jennifer. Annotations become struct tags and async APIs are disabled by
// default.
type Go struct{}

var goReserved = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
	"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range",
	"return", "select", "struct", "switch", "type", "var",
}

func render(c jen.Code) string { return fmt.Sprintf("%#v", c) }

func ids(values []string) []jen.Code {
	codes := make([]jen.Code, len(values))
	for i, v := range values {
		codes[i] = jen.Id(v)
	}
	return codes
}

func (Go) Name() string                        { return "go" }
func (Go) ListType(elem string) string         { return render(jen.Index().Id(elem)) }
func (g Go) CovariantListType(e string) string { return g.ListType(e) }
func (Go) IsListType(t string) bool            { return strings.HasPrefix(t, "[]") }
func (Go) EmptyList() string                   { return render(jen.Nil()) }
func (Go) Null() string                        { return render(jen.Nil()) }
func (Go) CustomScalarType() string            { return "string" }
func (Go) AnnotationMarker() string            { return "" }
func (Go) Quote(s string) string               { return render(jen.Lit(s)) }
func (Go) AsyncReturnType() string             { return "" }

func (Go) GenericType(w, p string) string {
	return render(jen.Id(w).Types(jen.Id(p)))
}

func (g Go) ReplaceListType(t, wrapper string) string {
	return g.GenericType(wrapper, strings.TrimPrefix(t, "[]"))
}

func (Go) ListOf(values []string) string {
	return render(jen.Index().Any().Values(ids(values)...))
}

func (g Go) ArrayOf(values []string) string { return g.ListOf(values) }

func (Go) MapOf(keys, values []string) string {
	items := make([]jen.Code, len(keys))
	for i := range keys {
		items[i] = jen.Lit(keys[i]).Op(":").Id(values[i])
	}
	return render(jen.Map(jen.String()).Any().Values(items...))
}

func (Go) EnumConstant(enumType, value string) string { return enumType + templates.ToGo(value) }

func (Go) ScalarTypes() map[string]string {
	return map[string]string{
		"ID":      "string",
		"String":  "string",
		"Int":     "int",
		"Float":   "float64",
		"Boolean": "bool",
	}
}

func (Go) ValidationAnnotation() string { return `validate:"required"` }

func (Go) DataFetchingEnvironment() string { return "context.Context" }

func (Go) SafeName(name string) string {
	if slices.Contains(goReserved, name) {
		return name + "_"
	}
	return name
}
