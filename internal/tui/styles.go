package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dakyol/dayboard/internal/theme"
)

// styles is the full style set for one palette. The active set lives in the
// package-level th and is rebuilt whenever the theme manager reports a new
// mode.
type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style

	panel       lipgloss.Style
	activePanel lipgloss.Style
	column      lipgloss.Style
	todayColumn lipgloss.Style

	title     lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	errText   lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style

	header lipgloss.Style
	footer lipgloss.Style

	selectedItem lipgloss.Style
	normalItem   lipgloss.Style
	doneItem     lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Primary).
			Padding(0, 2),

		inactiveTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(1, 2),

		activePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1),

		todayColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		title:     lipgloss.NewStyle().Bold(true).Foreground(p.Fg),
		accent:    lipgloss.NewStyle().Foreground(p.Accent),
		success:   lipgloss.NewStyle().Foreground(p.Success),
		warning:   lipgloss.NewStyle().Foreground(p.Warning),
		errText:   lipgloss.NewStyle().Foreground(p.Error),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),
		highlight: lipgloss.NewStyle().Foreground(p.Highlight),

		header: lipgloss.NewStyle().Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),

		selectedItem: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		normalItem:   lipgloss.NewStyle().Foreground(p.Fg),
		doneItem:     lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true),
	}
}

var th = newStyles(theme.PaletteFor(theme.Light))

func applyTheme(p theme.Palette) {
	th = newStyles(p)
}
