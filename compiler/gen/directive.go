package gen

import (
	"regexp"

	"github.com/vektah/gqlparser/v2/ast"
)

// placeholder matches "{{arg}}" and "{{arg?formatter}}".
var placeholder = regexp.MustCompile(`\{\{([_A-Za-z][_0-9A-Za-z]*)(\?[A-Za-z]*)?\}\}`)

// ValueFunc renders a directive argument value with a formatter.
type ValueFunc func(v *ast.Value, f Formatter) string

// RenderDirective substitutes the placeholders of an annotation template
// with the directive arguments of the same name. Placeholders without a
// matching argument are kept verbatim and returned as unresolved.
func RenderDirective(template string, args ast.ArgumentList, format ValueFunc) (string, []string) {
	var unresolved []string
	out := placeholder.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholder.FindStringSubmatch(m)
		arg := args.ForName(sub[1])
		if arg == nil {
			unresolved = append(unresolved, m)
			return m
		}
		f := Formatter(sub[2])
		switch f {
		case "":
			f = formatInline
		case FormatToString, FormatToArray, FormatToArrayOfStrings:
		default:
			f = formatInline
		}
		return format(arg.Value, f)
	})
	return out, unresolved
}

// directiveAnnotation renders the annotation registered for d, if any.
func (c *Context) directiveAnnotation(d *ast.Directive) (string, bool) {
	template, ok := c.DirectiveAnnotation(d.Name)
	if !ok {
		return "", false
	}
	a, unresolved := RenderDirective(template, d.Arguments, func(v *ast.Value, f Formatter) string {
		return c.MapValue(v, nil, f)
	})
	if len(unresolved) > 0 {
		c.logger.Warn("unresolved directive annotation placeholders",
			"directive", d.Name,
			"template", template,
			"placeholders", unresolved,
		)
	}
	return a, true
}
