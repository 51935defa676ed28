package gen

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// WrapIfAsync wraps the return type of an operation of the given kind.
// A configured subscription return type always wins for subscriptions.
// Otherwise, with async APIs enabled, list types get their list wrapper
// replaced by the async list type when one is configured, and any other
// type is wrapped in the async return type.
//
// Subscriptions without a subscription return type are wrapped like
// queries and mutations, not left unwrapped. Set SubscriptionReturnType
// to control them explicitly.
func (c *Context) WrapIfAsync(typeName string, kind ast.Operation) string {
	if t := c.SubscriptionReturnType(); kind == ast.Subscription && !blank(t) {
		return c.lang.GenericType(t, typeName)
	}
	if !c.GenerateAsyncAPI() {
		return typeName
	}
	if t := c.APIAsyncReturnListType(); c.lang.IsListType(typeName) && !blank(t) {
		return c.lang.ReplaceListType(typeName, t)
	}
	if t := c.APIAsyncReturnType(); !blank(t) {
		return c.lang.GenericType(t, typeName)
	}
	return typeName
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
