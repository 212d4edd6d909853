// Package render projects view state and content onto HTML. Rendering never
// mutates its inputs, and every list is emitted in content order.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name of the full-page template.
const PageTemplate = "page.html"

// GlowRadius is half the cursor glow's size; the glow is centred on the
// pointer.
const GlowRadius = 200

// DefaultAssets is where the server mounts the stylesheet and client script.
const DefaultAssets = "/static"

// Page is the input of one render pass.
type Page struct {
	Snapshot view.Snapshot
	Content  *content.Model
	// ViewID is empty for static exports, which then omit the client script.
	ViewID string
	Assets string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Funcs returns the helpers the templates use.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"glow": Glow,
	}
}

// Template exposes the parsed set, e.g. for gin's SetHTMLTemplate.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Page writes the full page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	if p.Content == nil {
		return errors.New("render: nil content")
	}
	if p.Assets == "" {
		p.Assets = DefaultAssets
	}
	if err := r.tmpl.ExecuteTemplate(w, PageTemplate, p); err != nil {
		return errors.Wrap(err, "failed to render page")
	}
	return nil
}

// Project writes a single project card.
func (r *Renderer) Project(w io.Writer, p content.Project) error {
	if err := r.tmpl.ExecuteTemplate(w, "project", p); err != nil {
		return errors.Wrapf(err, "failed to render project %q", p.Title)
	}
	return nil
}

// Glow is the inline style that centres the cursor glow on the pointer.
func Glow(p view.Point) template.CSS {
	return template.CSS(fmt.Sprintf("transform: translate(%dpx, %dpx)", p.X-GlowRadius, p.Y-GlowRadius))
}
