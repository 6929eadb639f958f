package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dakyol/dayboard/internal/store"
	"github.com/dakyol/dayboard/internal/theme"
)

type settingsModel struct {
	store  *store.Store
	themes *theme.Manager
	width  int
	height int

	settings []store.Setting
}

func newSettingsModel(s *store.Store, themes *theme.Manager) settingsModel {
	return settingsModel{
		store:  s,
		themes: themes,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load settings: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Theme):
			mode, err := s.themes.Toggle()
			if err != nil {
				return s, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Save theme: %v", err), isError: true}
				}
			}
			return s, tea.Batch(s.refresh(), func() tea.Msg {
				return statusMsg{text: "Theme: " + string(mode)}
			})
		}
	}
	return s, nil
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := th.title.Render("Settings")
	current := fmt.Sprintf("  %-16s %s", "theme", th.highlight.Render(string(s.themes.Current())))
	hint := th.muted.Render("Press t or enter to toggle light/dark")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, current)
	rows = append(rows, "")

	for _, setting := range s.settings {
		if setting.Key == "theme" {
			continue
		}
		rows = append(rows, fmt.Sprintf("  %-16s %s", setting.Key, th.highlight.Render(setting.Value)))
	}

	rows = append(rows, hint)

	return th.panel.Width(w).Render(strings.Join(rows, "\n"))
}
