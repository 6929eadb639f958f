package tui

import (
	"github.com/dakyol/dayboard/internal/store"
	"github.com/dakyol/dayboard/internal/theme"
)

// viewState represents the currently active view.
type viewState int

const (
	viewBoard viewState = iota
	viewTasks
	viewStats
	viewSettings
)

var viewNames = []string{"Board", "Tasks", "Stats", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// storeChangedMsg carries one collection change from the live subscription.
type storeChangedMsg struct {
	change store.Change
}

// themeChangedMsg carries a new mode from the theme manager.
type themeChangedMsg struct {
	mode theme.Mode
}

type boardDataMsg struct {
	events []store.Event
}

type tasksDataMsg struct {
	todos []store.Todo
}

type statsDataMsg struct {
	events []store.Event
	todos  []store.Todo
}

type settingsDataMsg struct {
	settings []store.Setting
}

type exportDoneMsg struct {
	path string
}
