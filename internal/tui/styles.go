package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent lipgloss.Color = "#29B5E8"
	colorMuted  lipgloss.Color = "#7F849C"
	colorNotice lipgloss.Color = "#F9E2AF"
	colorCode   lipgloss.Color = "#A6E3A1"
)

type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	accordion lipgloss.Style
	code      lipgloss.Style
	notice    lipgloss.Style
	muted     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(colorAccent),
		section:   r.NewStyle().Bold(true).Underline(true),
		accordion: r.NewStyle().Bold(true),
		code:      r.NewStyle().Foreground(colorCode).PaddingLeft(4),
		notice:    r.NewStyle().Foreground(colorNotice),
		muted:     r.NewStyle().Foreground(colorMuted),
		tab:       r.NewStyle().Padding(0, 1).Foreground(colorMuted),
		activeTab: r.NewStyle().Padding(0, 1).Bold(true).Foreground(colorAccent).Underline(true),
	}
}
