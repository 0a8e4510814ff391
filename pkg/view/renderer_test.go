package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestTemplateRenderer(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "greeting.html", `{{define "greeting"}}Hello {{capitalize .name}}{{end}}`)

	renderer, err := NewTemplateRenderer(filepath.Join(dir, "*.html"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, renderer.Render(&buf, "greeting", map[string]any{"name": "gala apple"}))
	assert.Equal(t, "Hello Gala apple", buf.String())
}

func TestRenderUnknownView(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "greeting.html", `{{define "greeting"}}hi{{end}}`)

	renderer, err := NewTemplateRenderer(filepath.Join(dir, "*.html"))
	require.NoError(t, err)

	err = renderer.Render(&strings.Builder{}, "missing", nil)
	assert.ErrorContains(t, err, "missing")
}

func TestNewTemplateRendererBadPattern(t *testing.T) {
	_, err := NewTemplateRenderer(filepath.Join(t.TempDir(), "*.html"))
	assert.Error(t, err)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Apple", capitalize("apple"))
	assert.Equal(t, "Apple pie", capitalize("apple pie"))
	assert.Equal(t, "", capitalize(""))
}
