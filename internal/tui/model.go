package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/analystdemo/pkg/core"
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next tab")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev tab")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// chrome is the number of lines taken by the tab bar and help line.
const chrome = 4

// Model is the bubbletea model for the interactive browser.
type Model struct {
	tree     *core.ViewTree
	styles   styles
	keys     keyMap
	viewport viewport.Model
	active   int
	width    int
	ready    bool
}

// NewModel returns a model showing the first section of tree.
func NewModel(tree *core.ViewTree) Model {
	return Model{
		tree:   tree,
		styles: newStyles(lipgloss.DefaultRenderer()),
		keys:   defaultKeyMap(),
	}
}

// Active returns the index of the section being shown.
func (m Model) Active() int { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-chrome, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.setContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % len(m.tree.Sections)
			m.setContent()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active - 1 + len(m.tree.Sections)) % len(m.tree.Sections)
			m.setContent()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setContent() {
	if !m.ready {
		return
	}
	s := m.tree.Sections[m.active]
	m.viewport.SetContent(renderBlocks(m.styles, s.Blocks, max(m.width-2, 20)))
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.tree.Title))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(m.helpLine()))
	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, len(m.tree.Sections))
	for i, s := range m.tree.Sections {
		style := m.styles.tab
		if i == m.active {
			style = m.styles.activeTab
		}
		tabs[i] = style.Render(s.Name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) helpLine() string {
	parts := []string{}
	for _, b := range []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "↑/↓ scroll")
	return strings.Join(parts, " • ")
}

// Run starts the interactive browser and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, tree *core.ViewTree) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(tree), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
