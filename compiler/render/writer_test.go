package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlcodegen/compiler/gen"
	"github.com/syssam/gqlcodegen/compiler/load"
)

const schema = `
"A node"
interface Node { id: ID! }
union SearchResult = Event
enum Status { ACTIVE "Done" CLOSED @deprecated }
input EventInput { name: String = "untitled" }
type Event implements Node { id: ID! name: String related(first: Int): [Event] }
type Query { events(first: Int): [Event] }
type Subscription { eventCreated: Event }
`

func artifacts(t *testing.T, opts ...gen.Option) []gen.Artifact {
	t.Helper()
	opts = append([]gen.Option{gen.WithPackages("com.example", "com.example.model", "com.example.api")}, opts...)
	g, err := gen.New(gen.MustNewConfig(opts...), gen.WithGeneratedInfo(gen.GeneratedInfo{Generator: "gqlcodegen"}))
	require.NoError(t, err)
	doc, err := load.Parse(&ast.Source{Name: "schema.graphqls", Input: schema})
	require.NoError(t, err)
	out, err := g.Generate(doc)
	require.NoError(t, err)
	return out
}

func find(t *testing.T, artifacts []gen.Artifact, name string) gen.Artifact {
	t.Helper()
	for _, a := range artifacts {
		if a.Name == name {
			return a
		}
	}
	require.FailNow(t, "artifact not found", name)
	return gen.Artifact{}
}

func TestPath(t *testing.T) {
	w, err := NewWriter("out")
	require.NoError(t, err)

	a := gen.Artifact{Kind: gen.KindType, Name: "Event", Model: gen.DataModel{gen.KeyPackage: "com.example.model"}}
	assert.Equal(t, filepath.Join("out", "com", "example", "model", "Event.java"), w.Path(a))

	a.Model = gen.DataModel{}
	assert.Equal(t, filepath.Join("out", "Event.kt"), w.WithExtension("kt").Path(a))
}

func TestRenderAllKinds(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	all := artifacts(t, gen.WithClient(true), func(c *gen.MappingConfig) error {
		yes := true
		c.GenerateEqualsAndHashCode = &yes
		return nil
	})
	kinds := make(map[gen.ArtifactKind]bool)
	for _, a := range all {
		out, err := w.Render(a)
		require.NoError(t, err, "%s %s", a.Kind, a.Name)
		assert.NotEmpty(t, out)
		kinds[a.Kind] = true
	}
	for _, kind := range gen.ArtifactKinds() {
		assert.True(t, kinds[kind], "kind %s not rendered", kind)
	}
}

func TestRenderType(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	out, err := w.Render(find(t, artifacts(t), "Event"))
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "package com.example.model;")
	assert.Contains(t, src, "@javax.annotation.Generated(\n    value = \"gqlcodegen\"\n)")
	assert.Contains(t, src, "public class Event implements Node, SearchResult {")
	assert.Contains(t, src, "    @javax.validation.constraints.NotNull\n    private String id;")
	assert.Contains(t, src, "public String getName() {")
	assert.Contains(t, src, "public static Event.Builder builder() {")
	assert.NotContains(t, src, "related")
}

func TestRenderEnum(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	out, err := w.Render(find(t, artifacts(t), "Status"))
	require.NoError(t, err)

	assert.Contains(t, string(out), "public enum Status {\n    ACTIVE,\n    // Done\n    @Deprecated\n    CLOSED\n}")
}

func TestRenderOperations(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	all := artifacts(t, gen.WithSubscriptionReturnType("org.reactivestreams.Publisher"))

	out, err := w.Render(find(t, all, "QueryResolver"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "package com.example.api;")
	assert.Contains(t, string(out), "import com.example.model.*;")
	assert.Contains(t, string(out), "java.util.List<Event> events(Integer first) throws Exception;")

	out, err = w.Render(find(t, all, "SubscriptionResolver"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "org.reactivestreams.Publisher<Event> eventCreated() throws Exception;")

	out, err = w.Render(find(t, all, "EventResolver"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "java.util.List<Event> related(Event event, Integer first) throws Exception;")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	all := artifacts(t)

	paths, err := w.WithWorkers(2).Write(context.Background(), all)
	require.NoError(t, err)
	require.Len(t, paths, len(all))

	for i, p := range paths {
		assert.Equal(t, w.Path(all[i]), p)
		assert.FileExists(t, p)
	}
	data, err := os.ReadFile(filepath.Join(dir, "com", "example", "model", "Event.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public class Event")

	m := w.Metrics()
	assert.Equal(t, len(all), m.FilesGenerated)
	assert.Positive(t, m.TotalBytes)
}

func TestWriteParallel(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	var all []gen.Artifact
	for i := range 16 {
		for _, a := range artifacts(t) {
			pkg, _ := a.Model[gen.KeyPackage].(string)
			a.Model[gen.KeyPackage] = fmt.Sprintf("%s.p%d", pkg, i)
			all = append(all, a)
		}
	}
	paths, err := w.WithWorkers(8).Write(context.Background(), all)
	require.NoError(t, err)
	require.Len(t, paths, len(all))

	for i := range 16 {
		data, err := os.ReadFile(filepath.Join(dir, "com", "example", "model", fmt.Sprintf("p%d", i), "Event.java"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "public String getName() {")
	}
	assert.Equal(t, len(all), w.Metrics().FilesGenerated)
}

func TestWriteCanceled(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = w.Write(ctx, artifacts(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"enum.tmpl": {Data: []byte(`{{define "enum"}}enum {{.className}}{{end}}`)},
	}
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.WithTemplates(fsys, "*.tmpl"))

	out, err := w.Render(find(t, artifacts(t), "Status"))
	require.NoError(t, err)
	assert.Equal(t, "enum Status", string(out))

	require.Error(t, w.WithTemplates(fstest.MapFS{"bad.tmpl": {Data: []byte("{{define")}}, "*.tmpl"))
}

func TestWithTemplateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "union.tmpl"), []byte(`{{define "union"}}union {{.className}}{{end}}`), 0o644))
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.WithTemplateDir(dir))

	out, err := w.Render(find(t, artifacts(t), "SearchResult"))
	require.NoError(t, err)
	assert.Equal(t, "union SearchResult", string(out))
}

func TestWriteGo(t *testing.T) {
	fsys := fstest.MapFS{
		"go.tmpl": {Data: []byte(`{{define "type"}}package {{.package}}

type {{.className}} struct {
{{range .fields}}{{.Name}}   {{.Type}}
{{end}}}
{{end}}{{define "enum"}}package {{.package}}

func {{end}}`)},
	}
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.NoError(t, w.WithTemplates(fsys, "*.tmpl"))
	w.WithExtension(".go")

	event := gen.Artifact{Kind: gen.KindType, Name: "Event", Model: gen.DataModel{
		gen.KeyPackage:   "model",
		gen.KeyClassName: "Event",
		gen.KeyFields:    []*gen.Field{{Name: "ID", Type: "string"}},
	}}
	paths, err := w.Write(context.Background(), []gen.Artifact{event})
	require.NoError(t, err)
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "package model\n\ntype Event struct {\n\tID string\n}\n", string(data))

	broken := gen.Artifact{Kind: gen.KindEnum, Name: "Status", Model: gen.DataModel{gen.KeyPackage: "model"}}
	_, err = w.Write(context.Background(), []gen.Artifact{broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
	assert.FileExists(t, filepath.Join(dir, "model", "Status.go.error"))
}

func TestRenderUnknownKind(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.Render(gen.Artifact{Kind: "scalar", Name: "DateTime", Model: gen.DataModel{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"scalar"`)
}
