package gen

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/syssam/gqlcodegen/compiler/load"
)

// Generator maps schema documents to artifacts with one resolved config.
type Generator struct {
	cfg    *MappingConfig
	lang   Language
	logger *slog.Logger
	info   GeneratedInfo
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	lang     Language
	logger   *slog.Logger
	supplier Supplier
	info     *GeneratedInfo
}

// WithLanguage sets the target language. Java is the default.
func WithLanguage(l Language) GeneratorOption {
	return func(o *generatorOptions) { o.lang = l }
}

// WithLogger sets the logger. slog.Default is the default.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(o *generatorOptions) { o.logger = l }
}

// WithSupplier sets the source of an override config, combined over the
// user config.
func WithSupplier(s Supplier) GeneratorOption {
	return func(o *generatorOptions) { o.supplier = s }
}

// WithGeneratedInfo sets the stamp added to every data model.
func WithGeneratedInfo(info GeneratedInfo) GeneratorOption {
	return func(o *generatorOptions) { o.info = &info }
}

// New resolves cfg and returns a Generator. Resolution combines cfg with
// the supplied override, fills defaults, validates and sanitizes. A
// conflicting config fails here, before any artifact is mapped.
func New(cfg *MappingConfig, opts ...GeneratorOption) (*Generator, error) {
	o := &generatorOptions{lang: Java{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	var override *MappingConfig
	if o.supplier != nil {
		var err error
		if override, err = o.supplier.Supply(); err != nil {
			return nil, fmt.Errorf("supply mapping config: %w", err)
		}
	}
	resolved, err := Resolve(cfg, override, o.lang)
	if err != nil {
		return nil, err
	}
	info := GeneratedInfo{Generator: "gqlcodegen", Date: time.Now().Format(time.RFC3339)}
	if o.info != nil {
		info = *o.info
	}
	return &Generator{cfg: resolved, lang: o.lang, logger: o.logger, info: info}, nil
}

// Config returns a copy of the resolved config.
func (g *Generator) Config() *MappingConfig { return g.cfg.Clone() }

// Language returns the target language.
func (g *Generator) Language() Language { return g.lang }

// Context seeds the scalar mappings of doc and binds the result to doc.
// Built-in and declared custom scalars never replace user mappings.
func (g *Generator) Context(doc *load.Document) *Context {
	cfg := g.cfg.Clone()
	for _, def := range doc.Scalars {
		cfg.PutCustomTypeIfAbsent(def.Name, g.lang.CustomScalarType())
	}
	for name, t := range g.lang.ScalarTypes() {
		cfg.PutCustomTypeIfAbsent(name, t)
	}
	return NewContext(cfg, doc, g.lang, g.logger, g.info)
}

// Generate walks doc once and returns the artifacts in generation order:
// object types, their field resolvers, root types, inputs, enums, unions,
// interfaces and interface field resolvers. The first mapping failure
// aborts the walk.
func (g *Generator) Generate(doc *load.Document) ([]Artifact, error) {
	w := &walker{ctx: g.Context(doc)}
	if err := w.walk(); err != nil {
		return nil, err
	}
	g.logger.Info("mapped schema", "artifacts", len(w.artifacts), "language", g.lang.Name())
	return w.artifacts, nil
}

type walker struct {
	ctx       *Context
	artifacts []Artifact
	seen      map[string]ArtifactKind
}

// add appends an artifact. Two artifacts with the same package and name
// would be written to the same file and are a conflict.
func (w *walker) add(kind ArtifactKind, m DataModel) error {
	pkg, _ := m[KeyPackage].(string)
	key := m.ClassName()
	if pkg != "" {
		key = pkg + "." + key
	}
	if prev, ok := w.seen[key]; ok {
		return NewConflictError(fmt.Sprintf("%s and %s artifacts are both named %s", prev, kind, key),
			"APINamePrefixStrategy", "APIRootInterfaceStrategy", "APINamePrefix", "APINameSuffix", "ModelNamePrefix", "ModelNameSuffix")
	}
	if w.seen == nil {
		w.seen = make(map[string]ArtifactKind)
	}
	w.seen[key] = kind
	w.ctx.Logger().Debug("mapped artifact", "kind", kind, "name", m.ClassName())
	w.artifacts = append(w.artifacts, Artifact{Kind: kind, Name: m.ClassName(), Model: m})
	return nil
}

func (w *walker) walk() error {
	c, doc := w.ctx, w.ctx.Document()
	types := doc.Types
	if c.GenerateModelsForRootTypes() {
		types = append(slices.Clone(doc.Types), doc.Operations...)
	}
	for _, def := range types {
		if err := w.typ(def); err != nil {
			return err
		}
	}
	for _, def := range types {
		if err := w.fieldResolver(def); err != nil {
			return err
		}
	}
	for _, def := range doc.Operations {
		if c.GenerateAPIs() {
			if err := w.server(def); err != nil {
				return err
			}
		}
		if c.GenerateClient() {
			if err := w.client(def); err != nil {
				return err
			}
		}
	}
	for _, def := range doc.Inputs {
		m, err := c.InputModel(def)
		if err != nil {
			return NewGenerationError(KindInput, def.Name, err)
		}
		if err := w.add(KindInput, m); err != nil {
			return err
		}
	}
	for _, def := range doc.Enums {
		if err := w.add(KindEnum, c.EnumModel(def)); err != nil {
			return err
		}
	}
	for _, def := range doc.Unions {
		if err := w.add(KindUnion, c.UnionModel(def)); err != nil {
			return err
		}
		if err := w.projection(def); err != nil {
			return err
		}
	}
	for _, def := range doc.Interfaces {
		m, err := c.InterfaceModel(def)
		if err != nil {
			return NewGenerationError(KindInterface, def.Name, err)
		}
		if err := w.add(KindInterface, m); err != nil {
			return err
		}
		if err := w.projection(def); err != nil {
			return err
		}
	}
	for _, def := range doc.Interfaces {
		if err := w.fieldResolver(def); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) projection(def *load.Definition) error {
	if !w.ctx.GenerateClient() {
		return nil
	}
	return w.add(KindResponseProjection, w.ctx.ProjectionModel(def))
}

func (w *walker) typ(def *load.Definition) error {
	c := w.ctx
	m, err := c.TypeModel(def)
	if err != nil {
		return NewGenerationError(KindType, def.Name, err)
	}
	if err := w.add(KindType, m); err != nil {
		return err
	}
	if !c.GenerateClient() {
		return nil
	}
	if err := w.projection(def); err != nil {
		return err
	}
	for _, f := range c.allFields(def) {
		if len(f.Arguments) == 0 {
			continue
		}
		m, err := c.ParametrizedInputModel(def, f)
		if err != nil {
			return NewGenerationError(KindParametrizedInput, def.Name+"."+f.Name, err)
		}
		if err := w.add(KindParametrizedInput, m); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) fieldResolver(def *load.Definition) error {
	m, ok, err := w.ctx.FieldResolverModel(def)
	if err != nil {
		return NewGenerationError(KindFieldResolver, def.Name, err)
	}
	if !ok {
		return nil
	}
	return w.add(KindFieldResolver, m)
}

// groups splits a root type by the location the prefix strategy names it
// after. A root type living in one file or folder is a single group.
func (w *walker) groups(def *load.Definition) []*load.Definition {
	var groups []*load.Definition
	switch w.ctx.APINamePrefixStrategy() {
	case PrefixFileName:
		groups = def.GroupByFile()
	case PrefixFolderName:
		groups = def.GroupByFolder()
	}
	if len(groups) > 1 {
		return groups
	}
	return []*load.Definition{def}
}

// server maps the root API interfaces and one API interface per operation.
// Root APIs are split per schema location only with INTERFACE_PER_SCHEMA.
func (w *walker) server(def *load.Definition) error {
	c := w.ctx
	groups := w.groups(def)
	split := len(groups) > 1
	roots := []*load.Definition{def}
	if c.APIRootInterfaceStrategy() == InterfacePerSchema {
		roots = groups
	}
	for _, group := range roots {
		m, err := c.RootAPIModel(group, split && len(roots) > 1)
		if err != nil {
			return NewGenerationError(KindRootAPI, group.Name, err)
		}
		if err := w.add(KindRootAPI, m); err != nil {
			return err
		}
	}
	for _, group := range groups {
		for _, f := range group.Fields() {
			m, err := c.OperationAPIModel(group, split, f)
			if err != nil {
				return NewGenerationError(KindAPI, def.Name+"."+f.Name, err)
			}
			if err := w.add(KindAPI, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) client(def *load.Definition) error {
	c := w.ctx
	for _, f := range def.Fields() {
		req, err := c.RequestModel(def, f)
		if err != nil {
			return NewGenerationError(KindRequest, def.Name+"."+f.Name, err)
		}
		if err := w.add(KindRequest, req); err != nil {
			return err
		}
		resp, err := c.ResponseModel(def, f)
		if err != nil {
			return NewGenerationError(KindResponse, def.Name+"."+f.Name, err)
		}
		if err := w.add(KindResponse, resp); err != nil {
			return err
		}
	}
	return nil
}
