package gen

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/load"
)

var testInfo = GeneratedInfo{Generator: "gqlcodegen", Version: "test", Date: "2020-01-01T00:00:00Z"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseSchema(t *testing.T, sources ...*ast.Source) *load.Document {
	t.Helper()
	doc, err := load.Parse(sources...)
	require.NoError(t, err)
	return doc
}

func source(name, input string) *ast.Source {
	return &ast.Source{Name: name, Input: input}
}

// newTestGenerator returns a Java generator configured with opts.
func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	cfg, err := NewConfig(opts...)
	require.NoError(t, err)
	g, err := New(cfg, WithLogger(discardLogger()), WithGeneratedInfo(testInfo))
	require.NoError(t, err)
	return g
}

// newTestContext binds a Java generator configured with opts to schema.
func newTestContext(t *testing.T, schema string, opts ...Option) *Context {
	t.Helper()
	return newTestGenerator(t, opts...).Context(parseSchema(t, source("schema.graphqls", schema)))
}

// newLoggedContext is newTestContext with a logger writing to the returned buffer.
func newLoggedContext(t *testing.T, schema string, opts ...Option) (*Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg, err := NewConfig(opts...)
	require.NoError(t, err)
	g, err := New(cfg, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))), WithGeneratedInfo(testInfo))
	require.NoError(t, err)
	return g.Context(parseSchema(t, source("schema.graphqls", schema))), &buf
}

func mustDefinition(t *testing.T, c *Context, name string) *load.Definition {
	t.Helper()
	def, ok := c.Document().Definition(name)
	require.True(t, ok, "definition %s", name)
	return def
}

func mustField(t *testing.T, def *load.Definition, name string) *load.Field {
	t.Helper()
	f, ok := def.Field(name)
	require.True(t, ok, "field %s.%s", def.Name, name)
	return f
}

func artifactsOf(artifacts []Artifact, kind ArtifactKind) []Artifact {
	var out []Artifact
	for _, a := range artifacts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

func artifactNames(artifacts []Artifact) []string {
	names := make([]string, len(artifacts))
	for i, a := range artifacts {
		names[i] = a.Name
	}
	return names
}
