package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dakyol/dayboard/internal/export"
	"github.com/dakyol/dayboard/internal/pubsub"
	"github.com/dakyol/dayboard/internal/store"
	"github.com/dakyol/dayboard/internal/theme"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	themes *theme.Manager
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	board    boardModel
	tasks    tasksModel
	stats    statsModel
	settings settingsModel

	watch      <-chan pubsub.Event[store.Change]
	themeWatch <-chan pubsub.Event[theme.Mode]

	help   help.Model
	status string
}

func NewApp(ctx context.Context, s *store.Store, themes *theme.Manager) App {
	h := help.New()
	h.ShowAll = false

	applyTheme(themes.Palette())

	return App{
		store:      s,
		themes:     themes,
		activeView: viewBoard,
		board:      newBoardModel(s),
		tasks:      newTasksModel(s),
		stats:      newStatsModel(s),
		settings:   newSettingsModel(s, themes),
		watch:      s.Watch(ctx),
		themeWatch: themes.Watch(ctx),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.board.Init(),
		a.tasks.Init(),
		a.waitForChange(),
		a.waitForTheme(),
	)
}

// waitForChange blocks on the store's live subscription and surfaces the
// next collection change as a message. It is re-armed after every delivery.
func (a App) waitForChange() tea.Cmd {
	ch := a.watch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{change: ev.Payload}
	}
}

func (a App) waitForTheme() tea.Cmd {
	ch := a.themeWatch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return themeChangedMsg{mode: ev.Payload}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.board.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (form, picker, text entry),
		// delegate first.
		if a.isCapturingInput() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewBoard
			return a, a.board.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTasks
			return a, a.tasks.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewStats
			return a, a.stats.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}

	case storeChangedMsg:
		// Snapshot-listener semantics: any change re-queries the full sets.
		cmds := []tea.Cmd{a.waitForChange()}
		switch msg.change.Collection {
		case "events":
			cmds = append(cmds, a.board.refresh(), a.stats.refresh())
		case "todos":
			cmds = append(cmds, a.tasks.refresh(), a.stats.refresh())
		}
		return a, tea.Batch(cmds...)

	case themeChangedMsg:
		applyTheme(theme.PaletteFor(msg.mode))
		return a, a.waitForTheme()

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case boardDataMsg:
		a.board, cmd = a.board.update(msg)
		return a, cmd
	case tasksDataMsg:
		a.tasks, cmd = a.tasks.update(msg)
		return a, cmd
	case statsDataMsg:
		a.stats, cmd = a.stats.update(msg)
		return a, cmd
	case settingsDataMsg:
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	switch a.activeView {
	case viewBoard:
		a.board, cmd = a.board.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isCapturingInput() bool {
	switch a.activeView {
	case viewBoard:
		return a.board.formActive || a.board.picking
	case viewTasks:
		return a.tasks.inputFocused
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewBoard:
		return a.board.refresh()
	case viewTasks:
		return a.tasks.refresh()
	case viewStats:
		return a.stats.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewBoard:
		content = a.board.view()
	case viewTasks:
		content = a.tasks.view()
	case viewStats:
		content = a.stats.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, th.activeTab.Render(name))
		} else {
			tabs = append(tabs, th.inactiveTab.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := th.title.Render("dayboard")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return th.header.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = th.muted.Render(" " + a.status)
	}

	left := th.footer.Render(helpView)
	right := status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := th.title.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := th.normalItem
		if i == a.exportCursor {
			cursor = "> "
			style = th.selectedItem
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, th.muted.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return th.activePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		events, err := a.store.ListEvents()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		todos, err := a.store.ListTodos()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("dayboard-export-%s.csv", dateStr))
			if err := export.ToCSV(events, todos, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("dayboard-export-%s.json", dateStr))
			if err := export.ToJSON(events, todos, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
