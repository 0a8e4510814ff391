// Package view defines the rendering contract the web delivery depends on.
// The catalog core never inspects markup; it only supplies a view name and a
// data payload.
package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Renderer renders a named view with a data payload.
type Renderer interface {
	Render(w io.Writer, name string, data map[string]any) error
}

// TemplateRenderer renders views from a parsed html/template set.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every template matching pattern
// (e.g. "views/*.html").
func NewTemplateRenderer(pattern string) (*TemplateRenderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"capitalize": capitalize,
	}).ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// Render writes the named view to w.
func (r *TemplateRenderer) Render(w io.Writer, name string, data map[string]any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render view %q: %w", name, err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
