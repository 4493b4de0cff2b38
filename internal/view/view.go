// Package view renders the server-side HTML pages.  Every page is parsed
// together with the shared layout into its own template set so that each
// page can define its own "content" block.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages lists every renderable view name.
var Pages = []string{
	"home",
	"board-games",
	"customers",
	"orders",
	"rentals",
	"stocks",
	"genres",
	"stocks-has-rentals",
	"stocks-has-orders",
}

// Page is the data context handed to every template.  Data holds the named
// lists of the page, e.g. "genres" or "customers".
type Page struct {
	Title      string
	ResetToken string
	Data       map[string]any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the layout of the named page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"date":    formatDate,
	"optdate": formatOptionalDate,
	"price":   func(p float64) string { return fmt.Sprintf("%.2f", p) },
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
