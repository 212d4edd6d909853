package render

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/view"
)

func ptr(s string) *string { return &s }

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func defaultContent(t *testing.T) *content.Model {
	t.Helper()
	m, err := content.Default()
	require.NoError(t, err)
	return m
}

func renderPage(t *testing.T, snap view.Snapshot, m *content.Model) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, Page{Snapshot: snap, Content: m, ViewID: "v1"}))
	return buf.String()
}

func baseSnapshot() view.Snapshot {
	return view.Snapshot{Theme: view.ThemeDark, Revealed: []string{}, Typing: true}
}

func TestProject_OnlyPresentLinks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := newRenderer(t).Project(&buf, content.Project{
		Title:       "X",
		Description: "d",
		GitHub:      nil,
		Demo:        ptr("https://x"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `class="project-link"`))
	assert.Contains(t, out, `href="https://x"`)
	assert.Contains(t, out, `aria-label="View Demo"`)
	assert.NotContains(t, out, "View on GitHub")
}

func TestProject_OptionalTextOmitted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Project(&buf, content.Project{Title: "X", Description: "d"}))

	out := buf.String()
	assert.NotContains(t, out, "project-link\"")
	assert.NotContains(t, out, "project-team")
	assert.NotContains(t, out, "project-metrics")
}

func TestPage_Theme(t *testing.T) {
	t.Parallel()

	m := defaultContent(t)

	dark := renderPage(t, baseSnapshot(), m)
	assert.Contains(t, dark, `class="portfolio dark"`)
	assert.Contains(t, dark, `<span class="icon-moon" hidden>`)

	snap := baseSnapshot()
	snap.Theme = view.ThemeLight
	light := renderPage(t, snap, m)
	assert.Contains(t, light, `class="portfolio light"`)
	assert.Contains(t, light, `<span class="icon-sun" hidden>`)
}

func TestPage_RevealClasses(t *testing.T) {
	t.Parallel()

	snap := baseSnapshot()
	snap.Revealed = []string{"about", "projects"}
	out := renderPage(t, snap, defaultContent(t))

	assert.Contains(t, out, `<section id="about" class="about-section visible">`)
	assert.Contains(t, out, `<section id="projects" class="visible">`)
	assert.Contains(t, out, `<section id="experience" class="">`)
	assert.Contains(t, out, `<section id="skills" class="">`)
}

func TestPage_TypingCaret(t *testing.T) {
	t.Parallel()

	m := defaultContent(t)
	snap := baseSnapshot()
	assert.Contains(t, renderPage(t, snap, m), `class="typing-cursor"`)

	snap.Typing = false
	assert.NotContains(t, renderPage(t, snap, m), `class="typing-cursor"`)
}

func TestPage_GlowOffset(t *testing.T) {
	t.Parallel()

	snap := baseSnapshot()
	snap.Pointer = view.Point{X: 250, Y: 100}
	out := renderPage(t, snap, defaultContent(t))

	assert.Contains(t, out, `style="transform: translate(50px, -100px)"`)
}

func TestPage_ActiveSkill(t *testing.T) {
	t.Parallel()

	snap := baseSnapshot()
	snap.ActiveSkill = &view.SkillKey{Category: "Backend", Index: 2}
	out := renderPage(t, snap, defaultContent(t))

	assert.Equal(t, 1, strings.Count(out, "skill-item active"))
	assert.Contains(t, out, `<span class="skill-item active" data-category="Backend" data-index="2">Flask</span>`)
}

func TestPage_PreservesContentOrder(t *testing.T) {
	t.Parallel()

	m := defaultContent(t)
	out := renderPage(t, baseSnapshot(), m)

	last := -1
	for _, p := range m.Projects {
		idx := strings.Index(out, html.EscapeString(p.Title))
		require.Greater(t, idx, last, "project %q out of order", p.Title)
		last = idx
	}

	last = -1
	for _, term := range m.Coursework {
		idx := strings.Index(out, term.Name)
		require.Greater(t, idx, last, "term %q out of order", term.Name)
		last = idx
	}

	last = -1
	for _, id := range content.Sections() {
		idx := strings.Index(out, `<section id="`+id+`"`)
		require.Greater(t, idx, last, "section %q out of order", id)
		last = idx
	}
}

func TestPage_OutboundLinks(t *testing.T) {
	t.Parallel()

	m := defaultContent(t)
	out := renderPage(t, baseSnapshot(), m)

	assert.Contains(t, out, `href="mailto:iparekh@wpi.edu" class="social-link">`)
	assert.Contains(t, out, `href="https://github.com/ishaan1911" class="social-link" target="_blank" rel="noopener noreferrer"`)
	assert.Equal(t, 1, strings.Count(out, `class="cert-link"`))

	links := 0
	for _, p := range m.Projects {
		if p.GitHub != nil {
			links++
		}
		if p.Demo != nil {
			links++
		}
	}
	assert.Equal(t, links, strings.Count(out, `class="project-link"`))
}

func TestPage_StaticExportHasNoScript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := newRenderer(t).Page(&buf, Page{Snapshot: baseSnapshot(), Content: defaultContent(t), Assets: "static"})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "portfolio.js")
	assert.NotContains(t, out, "data-view-id")
	assert.NotContains(t, out, "data-version")
	assert.Contains(t, out, `href="static/portfolio.css"`)
}

func TestPage_CarriesSnapshotVersion(t *testing.T) {
	t.Parallel()

	snap := baseSnapshot()
	snap.Version = 7
	out := renderPage(t, snap, defaultContent(t))
	assert.Contains(t, out, `data-view-id="v1" data-version="7"`)
}

func TestPage_NilContent(t *testing.T) {
	t.Parallel()

	err := newRenderer(t).Page(&bytes.Buffer{}, Page{Snapshot: baseSnapshot()})
	require.Error(t, err)
}

func TestPage_DoesNotMutateContent(t *testing.T) {
	t.Parallel()

	m := defaultContent(t)
	before := *m
	renderPage(t, baseSnapshot(), m)
	assert.Equal(t, before, *m)
}
