// Package render writes artifacts produced by the mapping engine to source
// files using text/template.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/gqlcodegen/compiler/gen"
)

//go:embed templates/java/*.tmpl
var javaTemplates embed.FS

// Funcs are the functions available to templates.
var Funcs = template.FuncMap{
	"capitalize":   gen.Capitalize,
	"uncapitalize": gen.Uncapitalize,
	"join":         strings.Join,
	"upper":        strings.ToUpper,
}

// Writer renders artifacts to files in parallel. Each artifact is rendered
// by the template named after its kind.
type Writer struct {
	tmpl    *template.Template
	outDir  string
	ext     string
	workers int

	mu      sync.Mutex
	metrics *Metrics
}

// Metrics tracks rendering performance.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     time.Duration
}

// NewWriter returns a writer of Java sources to outDir using the embedded
// templates.
func NewWriter(outDir string) (*Writer, error) {
	tmpl, err := template.New("gqlcodegen").Funcs(Funcs).ParseFS(javaTemplates, "templates/java/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return &Writer{
		tmpl:    tmpl,
		outDir:  outDir,
		ext:     ".java",
		workers: runtime.GOMAXPROCS(0),
		metrics: &Metrics{},
	}, nil
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithExtension sets the extension of written files, e.g. ".kt".
func (w *Writer) WithExtension(ext string) *Writer {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	w.ext = ext
	return w
}

// WithTemplates parses the templates matching patterns in fsys. Templates
// defining an artifact kind replace the embedded ones.
func (w *Writer) WithTemplates(fsys fs.FS, patterns ...string) error {
	if _, err := w.tmpl.ParseFS(fsys, patterns...); err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	return nil
}

// WithTemplateDir parses all *.tmpl files of dir.
func (w *Writer) WithTemplateDir(dir string) error {
	return w.WithTemplates(os.DirFS(dir), "*.tmpl")
}

// Metrics returns the rendering metrics.
func (w *Writer) Metrics() *Metrics {
	return w.metrics
}

// Path returns the output path of an artifact: the package as directories
// followed by the class name.
func (w *Writer) Path(a gen.Artifact) string {
	pkg, _ := a.Model[gen.KeyPackage].(string)
	dir := filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/"))
	return filepath.Join(w.outDir, dir, a.Name+w.ext)
}

// Write renders all artifacts in parallel and returns the written paths in
// artifact order.
func (w *Writer) Write(ctx context.Context, artifacts []gen.Artifact) ([]string, error) {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	paths := make([]string, len(artifacts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, a := range artifacts {
		paths[i] = w.Path(a)
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(paths[i], a)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Render executes the template of an artifact.
func (w *Writer) Render(a gen.Artifact) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.tmpl.ExecuteTemplate(&buf, string(a.Kind), a.Model); err != nil {
		return nil, fmt.Errorf("execute template %q for %s: %w", a.Kind, a.Name, err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeFile(path string, a gen.Artifact) error {
	start := time.Now()
	out, err := w.Render(a)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == ".go" {
		formatted, err := imports.Process(path, out, nil)
		if err != nil {
			// Keep the unformatted output for debugging.
			debugPath := path + ".error"
			_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
			_ = os.WriteFile(debugPath, out, 0o644)
			return fmt.Errorf("format %s: %w (unformatted written to %s)", path, err, debugPath)
		}
		out = formatted
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(out))
	w.metrics.RenderTime += time.Since(start)
	w.mu.Unlock()
	return nil
}
