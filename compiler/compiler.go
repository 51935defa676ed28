// Package compiler loads GraphQL schemas, maps them to data models and
// renders the generated sources.
package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/syssam/gqlcodegen/compiler/gen"
	"github.com/syssam/gqlcodegen/compiler/load"
	"github.com/syssam/gqlcodegen/compiler/render"
)

// Option configures Generate.
type Option func(*options)

type options struct {
	gen         []gen.GeneratorOption
	templateDir string
	ext         string
	workers     int
	logger      *slog.Logger
}

// WithGeneratorOptions passes options to the mapping generator.
func WithGeneratorOptions(opts ...gen.GeneratorOption) Option {
	return func(o *options) { o.gen = append(o.gen, opts...) }
}

// WithTemplateDir overrides embedded templates with the *.tmpl files of dir.
func WithTemplateDir(dir string) Option {
	return func(o *options) { o.templateDir = dir }
}

// WithExtension sets the extension of generated files.
func WithExtension(ext string) Option {
	return func(o *options) { o.ext = ext }
}

// WithWorkers sets the number of parallel render workers.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger of the mapping and rendering steps.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
		o.gen = append(o.gen, gen.WithLogger(l))
	}
}

// Extension returns the default source file extension of a language.
func Extension(language string) string {
	switch language {
	case "kotlin":
		return ".kt"
	case "go":
		return ".go"
	default:
		return ".java"
	}
}

// Generate maps the schema files with cfg and writes one source file per
// artifact into outDir. It returns the written paths. Nothing is written
// when cfg is invalid or mapping fails.
func Generate(ctx context.Context, cfg *gen.MappingConfig, outDir string, schemas []string, opts ...Option) ([]string, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	g, err := gen.New(cfg, o.gen...)
	if err != nil {
		return nil, err
	}
	if len(schemas) == 0 {
		return nil, nil
	}
	start := time.Now()
	doc, err := load.Files(schemas...)
	if err != nil {
		return nil, err
	}
	artifacts, err := g.Generate(doc)
	if err != nil {
		return nil, err
	}
	w, err := render.NewWriter(outDir)
	if err != nil {
		return nil, err
	}
	if o.templateDir != "" {
		if err := w.WithTemplateDir(o.templateDir); err != nil {
			return nil, err
		}
	}
	ext := o.ext
	if ext == "" {
		ext = Extension(g.Language().Name())
	}
	paths, err := w.WithExtension(ext).WithWorkers(o.workers).Write(ctx, artifacts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	o.logger.Info("generated sources",
		"schemas", len(schemas),
		"files", w.Metrics().FilesGenerated,
		"bytes", w.Metrics().TotalBytes,
		"elapsed", time.Since(start),
		"out", outDir,
	)
	return paths, nil
}
