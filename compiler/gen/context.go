package gen

import (
	"log/slog"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// Context is the read-only view of one resolved config bound to one schema
// document. It is built once per generation run and is safe for concurrent
// reads.
type Context struct {
	cfg        *MappingConfig
	doc        *load.Document
	lang       Language
	logger     *slog.Logger
	info       GeneratedInfo
	interfaces map[string]struct{}
}

// NewContext binds a resolved config to a document. The config must have
// its defaults filled.
func NewContext(cfg *MappingConfig, doc *load.Document, lang Language, logger *slog.Logger, info GeneratedInfo) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Context{
		cfg:        cfg,
		doc:        doc,
		lang:       lang,
		logger:     logger,
		info:       info,
		interfaces: make(map[string]struct{}, len(doc.Interfaces)),
	}
	for _, def := range doc.Interfaces {
		c.interfaces[def.Name] = struct{}{}
	}
	return c
}

// Document returns the schema document.
func (c *Context) Document() *load.Document { return c.doc }

// Language returns the target language.
func (c *Context) Language() Language { return c.lang }

// Logger returns the logger of the run.
func (c *Context) Logger() *slog.Logger { return c.logger }

// GeneratedInfo returns the generation stamp.
func (c *Context) GeneratedInfo() GeneratedInfo { return c.info }

// IsInterface reports whether name is an interface declared in the document.
func (c *Context) IsInterface(name string) bool {
	_, ok := c.interfaces[name]
	return ok
}

// OperationKind returns the root operation kind of a root type name.
func (c *Context) OperationKind(rootName string) (ast.Operation, bool) {
	return c.doc.Operation(rootName)
}

// ModelPackageName returns the package of models.
func (c *Context) ModelPackageName() string {
	if p := val(c.cfg.ModelPackageName); p != "" {
		return p
	}
	return val(c.cfg.PackageName)
}

// APIPackageName returns the package of API interfaces.
func (c *Context) APIPackageName() string {
	if p := val(c.cfg.APIPackageName); p != "" {
		return p
	}
	return val(c.cfg.PackageName)
}

func (c *Context) PackageName() string              { return val(c.cfg.PackageName) }
func (c *Context) ModelNamePrefix() string          { return val(c.cfg.ModelNamePrefix) }
func (c *Context) ModelNameSuffix() string          { return val(c.cfg.ModelNameSuffix) }
func (c *Context) APINamePrefix() string            { return val(c.cfg.APINamePrefix) }
func (c *Context) APINameSuffix() string            { return val(c.cfg.APINameSuffix) }
func (c *Context) TypeResolverPrefix() string       { return val(c.cfg.TypeResolverPrefix) }
func (c *Context) TypeResolverSuffix() string       { return val(c.cfg.TypeResolverSuffix) }
func (c *Context) RequestSuffix() string            { return val(c.cfg.RequestSuffix) }
func (c *Context) ResponseSuffix() string           { return val(c.cfg.ResponseSuffix) }
func (c *Context) ResponseProjectionSuffix() string { return val(c.cfg.ResponseProjectionSuffix) }
func (c *Context) ParametrizedInputSuffix() string  { return val(c.cfg.ParametrizedInputSuffix) }

func (c *Context) GenerateBuilder() bool           { return val(c.cfg.GenerateBuilder) }
func (c *Context) GenerateEqualsAndHashCode() bool { return val(c.cfg.GenerateEqualsAndHashCode) }
func (c *Context) GenerateToString() bool          { return val(c.cfg.GenerateToString) }
func (c *Context) GenerateClient() bool            { return val(c.cfg.GenerateClient) }
func (c *Context) GenerateImmutableModels() bool   { return val(c.cfg.GenerateImmutableModels) }
func (c *Context) GenerateAPIs() bool              { return val(c.cfg.GenerateAPIs) }
func (c *Context) GenerateAsyncAPI() bool          { return val(c.cfg.GenerateAsyncAPI) }

func (c *Context) GenerateParameterizedFieldsResolvers() bool {
	return val(c.cfg.GenerateParameterizedFieldsResolvers)
}

func (c *Context) GenerateExtensionFieldsResolvers() bool {
	return val(c.cfg.GenerateExtensionFieldsResolvers)
}

func (c *Context) GenerateDataFetchingEnvironmentArgumentInAPIs() bool {
	return val(c.cfg.GenerateDataFetchingEnvironmentArgumentInAPIs)
}

func (c *Context) GenerateModelsForRootTypes() bool { return val(c.cfg.GenerateModelsForRootTypes) }

func (c *Context) APINamePrefixStrategy() APINamePrefixStrategy {
	return val(c.cfg.APINamePrefixStrategy)
}

func (c *Context) APIRootInterfaceStrategy() APIRootInterfaceStrategy {
	return val(c.cfg.APIRootInterfaceStrategy)
}

func (c *Context) ModelValidationAnnotation() string { return val(c.cfg.ModelValidationAnnotation) }
func (c *Context) APIAsyncReturnType() string        { return val(c.cfg.APIAsyncReturnType) }
func (c *Context) APIAsyncReturnListType() string    { return val(c.cfg.APIAsyncReturnListType) }
func (c *Context) SubscriptionReturnType() string    { return val(c.cfg.SubscriptionReturnType) }

// CustomType returns the custom type mapped to key.
func (c *Context) CustomType(key string) (string, bool) {
	t, ok := c.cfg.CustomTypesMapping[key]
	return t, ok
}

// CustomAnnotation returns the custom annotation mapped to key.
func (c *Context) CustomAnnotation(key string) (string, bool) {
	a, ok := c.cfg.CustomAnnotationsMapping[key]
	return a, ok
}

// DirectiveAnnotation returns the annotation template of a directive.
func (c *Context) DirectiveAnnotation(directive string) (string, bool) {
	a, ok := c.cfg.DirectiveAnnotationsMapping[directive]
	return a, ok
}

// FieldsWithResolvers reports whether key is listed to get a field resolver.
func (c *Context) FieldsWithResolvers(key string) bool {
	return slices.Contains(c.cfg.FieldsWithResolvers, key)
}

// FieldsWithoutResolvers reports whether key is listed to never get a field resolver.
func (c *Context) FieldsWithoutResolvers(key string) bool {
	return slices.Contains(c.cfg.FieldsWithoutResolvers, key)
}
