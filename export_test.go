package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/view"
)

func TestExportSite(t *testing.T) {
	t.Parallel()

	m, err := content.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, exportSite(dir, view.ThemeLight, m))

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	page := string(html)

	assert.Contains(t, page, `class="portfolio light"`)
	assert.Contains(t, page, `href="static/portfolio.css"`)
	assert.NotContains(t, page, "portfolio.js")
	assert.NotContains(t, page, "typing-cursor")
	for _, id := range content.Sections() {
		assert.Contains(t, page, `<section id="`+id+`"`)
	}
	assert.Contains(t, page, `<section id="projects" class="visible">`)

	_, err = os.Stat(filepath.Join(dir, "static", "portfolio.css"))
	assert.NoError(t, err)
}

func TestLoadContent_Embedded(t *testing.T) {
	t.Parallel()

	m, err := loadContent("")
	require.NoError(t, err)
	assert.NotEmpty(t, m.Projects)
}

func TestLoadContent_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadContent(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load content")
}

func TestExportContentPath(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("content:\n  path: /srv/portfolio.yaml\n"), 0o600))
	t.Setenv("PORT", "")

	path, err := exportContentPath("", cfg)
	require.NoError(t, err)
	assert.Equal(t, "/srv/portfolio.yaml", path)

	path, err = exportContentPath("other.yaml", cfg)
	require.NoError(t, err)
	assert.Equal(t, "other.yaml", path)

	t.Chdir(t.TempDir())
	path, err = exportContentPath("", "")
	require.NoError(t, err)
	assert.Empty(t, path)
}
