// Package render provides the html/template backed TemplateRenderer used by
// the static generator. Templates are parsed once and shared across the
// generator workers.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/goliatone/go-garden/pkg/interfaces"
)

// NewRenderer returns a TemplateRenderer that loads templates from baseDir.
func NewRenderer(baseDir string) (interfaces.TemplateRenderer, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("render: inspect template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("render: template path %q is not a directory", baseDir)
	}
	return NewRendererFS(os.DirFS(baseDir)), nil
}

// NewRendererFS returns a TemplateRenderer over an arbitrary filesystem,
// which keeps tests and embedded template sets off the disk.
func NewRendererFS(fsys fs.FS) interfaces.TemplateRenderer {
	return &goTemplateRenderer{
		fsys:    fsys,
		filters: map[string]func(any, any) (any, error){},
	}
}

type goTemplateRenderer struct {
	fsys fs.FS

	mu      sync.Mutex
	filters map[string]func(any, any) (any, error)
	global  any

	once sync.Once
	tpl  *template.Template
	err  error
}

func (r *goTemplateRenderer) ensureTemplates() (*template.Template, error) {
	r.once.Do(func() {
		var files []string
		err := fs.WalkDir(r.fsys, ".", func(file string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			ext := strings.ToLower(path.Ext(file))
			if ext != ".html" && ext != ".tmpl" {
				return nil
			}
			files = append(files, file)
			return nil
		})
		if err != nil {
			r.err = err
			return
		}
		if len(files) == 0 {
			r.err = fmt.Errorf("render: no templates found")
			return
		}
		r.tpl, r.err = template.New("garden").Funcs(r.funcMap()).ParseFS(r.fsys, files...)
	})
	return r.tpl, r.err
}

func (r *goTemplateRenderer) funcMap() template.FuncMap {
	funcs := template.FuncMap{
		"safeHTML": func(value any) template.HTML { return toHTML(value) },
		"global": func() any {
			r.mu.Lock()
			defer r.mu.Unlock()
			return r.global
		},
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, fn := range r.filters {
		filter := fn
		funcs[name] = func(input any, params ...any) (any, error) {
			var param any
			if len(params) > 0 {
				param = params[0]
			}
			return filter(input, param)
		}
	}
	return funcs
}

func (r *goTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *goTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.ensureTemplates()
	if err != nil {
		return "", err
	}
	target := tpl.Lookup(name)
	if target == nil {
		// Allow referencing templates by file name without extension.
		for _, ext := range []string{".html", ".tmpl"} {
			if target = tpl.Lookup(name + ext); target != nil {
				break
			}
		}
	}
	if target == nil {
		return "", fmt.Errorf("render: template %q not found", name)
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := target.Execute(writer, data); err != nil {
		return "", err
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

func (r *goTemplateRenderer) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tpl, err := template.New("inline").Funcs(r.funcMap()).Parse(content)
	if err != nil {
		return "", err
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := tpl.Execute(writer, data); err != nil {
		return "", err
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

// RegisterFilter adds a template function. Filters must be registered before
// the first render; later registrations fail.
func (r *goTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return fmt.Errorf("render: filter requires name and function")
	}
	if r.parsed() {
		return fmt.Errorf("render: filters must be registered before rendering")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = fn
	return nil
}

// GlobalContext stores data exposed to every template through the global func.
func (r *goTemplateRenderer) GlobalContext(data any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.global = data
	return nil
}

func (r *goTemplateRenderer) parsed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tpl != nil || r.err != nil
}

func toHTML(value any) template.HTML {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case template.HTML:
		return v
	case string:
		return template.HTML(v)
	case []byte:
		return template.HTML(v)
	default:
		return template.HTML(fmt.Sprint(v))
	}
}
