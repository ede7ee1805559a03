package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/pkg/core"
	"github.com/leapstack-labs/analystdemo/pkg/view"
)

func summary(t *testing.T, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, content.BuildView(), opts))
	return buf.String()
}

func TestSummary_AllSections(t *testing.T) {
	out := summary(t, Options{NoColor: true})

	assert.NotContains(t, out, "\x1b[", "no ANSI escapes with NoColor")
	assert.True(t, strings.HasPrefix(out, content.Title))

	last := -1
	for _, s := range content.BuildView().Sections {
		idx := strings.Index(out, s.Name)
		require.GreaterOrEqual(t, idx, 0, "missing %s", s.Name)
		assert.Greater(t, idx, last)
		last = idx
	}

	for _, q := range content.ExampleQueries() {
		assert.Contains(t, out, q.Question)
		assert.Contains(t, out, q.SQL)
	}
}

func TestSummary_Tables(t *testing.T) {
	out := summary(t, Options{NoColor: true, Section: "sample-results"})

	for _, cell := range []string{"Rank", "Country", "Customers", "Total Sales", "United States", "5420", "$1,250,890.75", "Dahlia Buchanan", "110913"} {
		assert.Contains(t, out, cell)
	}
	assert.NotContains(t, out, content.SectionAbout)
}

func TestSummary_SectionByName(t *testing.T) {
	out := summary(t, Options{NoColor: true, Section: content.SectionArchitecture})
	assert.Contains(t, out, content.SectionArchitecture)
	assert.NotContains(t, out, content.SectionDemoVideo)
}

func TestSummary_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := Summary(&buf, content.BuildView(), Options{Section: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Contains(t, err.Error(), "demo-video")

	err = Summary(&buf, &core.ViewTree{}, Options{})
	assert.ErrorIs(t, err, core.ErrEmptyView)
}

func TestSummary_Width(t *testing.T) {
	out := summary(t, Options{NoColor: true, Section: "sample-results", Width: 10})
	assert.Contains(t, out, strings.Repeat("─", 10)+"\n")
	assert.NotContains(t, out, strings.Repeat("─", 11)+"\n")
}

func TestSummary_NarrowWidthNestedDivider(t *testing.T) {
	tree := view.New("Narrow").
		Section("Only", func(s *view.SectionBuilder) {
			s.Accordion("Nested", true, func(a *view.SectionBuilder) {
				a.Markdown("inside").Divider()
			})
		}).
		MustBuild()

	for _, width := range []int{1, 2, 3} {
		var buf bytes.Buffer
		require.NotPanics(t, func() {
			require.NoError(t, Summary(&buf, tree, Options{NoColor: true, Width: width}))
		})
		assert.Contains(t, buf.String(), "  ─\n")
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return got, cmd
}

func TestModel_Navigation(t *testing.T) {
	tree := content.BuildView()
	m := NewModel(tree)
	assert.Equal(t, "loading…", m.View())

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 0, m.Active())
	assert.Contains(t, m.View(), tree.Sections[0].Name)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Active())

	m, _ = apply(t, m, runes("l"))
	assert.Equal(t, 2, m.Active())

	m, _ = apply(t, m, runes("h"))
	assert.Equal(t, 1, m.Active())

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, len(tree.Sections)-1, m.Active(), "wraps to the last tab")

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Active(), "wraps to the first tab")
}

func TestModel_ShowsActiveSectionContent(t *testing.T) {
	m := NewModel(content.BuildView())
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Contains(t, m.View(), content.ExampleTitle(1, content.ExampleQueries()[0]))
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(content.BuildView())
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := apply(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Resize(t *testing.T) {
	m := NewModel(content.BuildView())
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 60, Height: 2})

	assert.Equal(t, 60, m.viewport.Width)
	assert.Equal(t, 1, m.viewport.Height)
}
