package api

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"pasaratsiri/pkg/utils"
)

const (
	layoutPattern  = "templates/layout/*.html"
	partialPattern = "templates/partials/*.html"
	pagePattern    = "templates/pages/*.html"
)

// Renderer executes the embedded page templates for echo.Context.Render and
// the partials pushed over the live view websocket.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

func NewRenderer(fsys fs.FS) (*Renderer, error) {
	pages, err := fs.Glob(fsys, pagePattern)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates match %s", pagePattern)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		t, err := template.New(name).Funcs(Funcs()).ParseFS(fsys, layoutPattern, partialPattern, page)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}

	r.fragments, err = template.New("fragments").Funcs(Funcs()).ParseFS(fsys, partialPattern)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}

// Fragment renders one partial to a string.
func (r *Renderer) Fragment(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"rupiah": utils.Rupiah,
		"number": func(v interface{}) string {
			switch n := v.(type) {
			case int:
				return utils.Number(float64(n))
			case float64:
				return utils.Number(n)
			}
			return fmt.Sprint(v)
		},
		"initial": func(name string) string {
			return utils.Initial(name, "U")
		},
		"stars": func(rating float64) string {
			n := int(rating + 0.5)
			if n < 0 {
				n = 0
			}
			if n > 5 {
				n = 5
			}
			return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
		},
		"active": func(current, key string) string {
			if current == key {
				return "active"
			}
			return ""
		},
	}
}
