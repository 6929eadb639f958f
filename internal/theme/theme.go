// Package theme tracks the light/dark flag. The current mode is persisted in
// the settings table and every change is published to subscribers, so views
// observe one shared source of truth instead of re-reading it independently.
package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/dakyol/dayboard/internal/pubsub"
	"github.com/dakyol/dayboard/internal/store"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

const settingKey = "theme"

// Palette is the color set a mode resolves to.
type Palette struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Fg        lipgloss.Color
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
}

var palettes = map[Mode]Palette{
	Dark: {
		Primary:   lipgloss.Color("#6C63FF"),
		Accent:    lipgloss.Color("#FF6B6B"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#2ECC71"),
		Warning:   lipgloss.Color("#F39C12"),
		Error:     lipgloss.Color("#E74C3C"),
		Fg:        lipgloss.Color("#C0CAF5"),
		Subtle:    lipgloss.Color("#414868"),
		Highlight: lipgloss.Color("#7AA2F7"),
	},
	Light: {
		Primary:   lipgloss.Color("#5A50E8"),
		Accent:    lipgloss.Color("#D64545"),
		Muted:     lipgloss.Color("#8A8A8A"),
		Success:   lipgloss.Color("#1E8E4E"),
		Warning:   lipgloss.Color("#B9770E"),
		Error:     lipgloss.Color("#C0392B"),
		Fg:        lipgloss.Color("#2D2D3A"),
		Subtle:    lipgloss.Color("#B8BDD9"),
		Highlight: lipgloss.Color("#3C6AD9"),
	},
}

// PaletteFor returns the color set for mode, falling back to light.
func PaletteFor(mode Mode) Palette {
	if p, ok := palettes[mode]; ok {
		return p
	}
	return palettes[Light]
}

// Manager owns the current mode. Toggle persists the new value and then
// notifies subscribers; the two writes happen in immediate sequence, with
// no transactional tie between them.
type Manager struct {
	store   *store.Store
	changes *pubsub.Broker[Mode]
	mode    Mode
}

// NewManager loads the persisted mode, defaulting to light when the setting
// is missing or unrecognized.
func NewManager(s *store.Store) *Manager {
	mode := Mode(s.GetSettingOr(settingKey, string(Light)))
	if _, ok := palettes[mode]; !ok {
		mode = Light
	}
	return &Manager{
		store:   s,
		changes: pubsub.NewBroker[Mode](),
		mode:    mode,
	}
}

func (m *Manager) Current() Mode {
	return m.mode
}

func (m *Manager) Palette() Palette {
	return PaletteFor(m.mode)
}

// Toggle flips the mode, persists it and publishes the new value.
func (m *Manager) Toggle() (Mode, error) {
	next := Dark
	if m.mode == Dark {
		next = Light
	}
	if err := m.store.SetSetting(settingKey, string(next)); err != nil {
		return m.mode, err
	}
	m.mode = next
	m.changes.Publish(next)
	return next, nil
}

// Watch returns a subscription delivering every mode change until ctx ends.
func (m *Manager) Watch(ctx context.Context) <-chan pubsub.Event[Mode] {
	return m.changes.Subscribe(ctx)
}
