package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dakyol/dayboard/internal/board"
	"github.com/dakyol/dayboard/internal/store"
)

type boardModel struct {
	store  *store.Store
	width  int
	height int

	today       time.Time
	events      []store.Event
	days        []time.Time
	windowStart int
	dayCursor   int // index into the visible window
	eventCursor int

	// Day picker state for the creation dialog.
	picking          bool
	pickerWeekOffset int
	pickerCursor     int

	formActive  bool
	form        *huh.Form
	selectedDay time.Time

	// Form field pointers (survive value copies)
	formTitle *string
	formTime  *string
}

func newBoardModel(s *store.Store) boardModel {
	title, timeOfDay := "", ""
	return boardModel{
		store:     s,
		today:     time.Now(),
		formTitle: &title,
		formTime:  &timeOfDay,
	}
}

func (b boardModel) Init() tea.Cmd {
	return b.refresh()
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b boardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		events, err := b.store.ListEvents()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load events: %v", err), isError: true}
		}
		return boardDataMsg{events: events}
	}
}

func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	switch msg := msg.(type) {
	case boardDataMsg:
		b.events = msg.events
		b.days = board.ActiveDays(b.today, b.events)
		b.windowStart = board.ClampWindow(b.days, b.windowStart)
		b.clampCursors()
		return b, nil

	case tea.KeyMsg:
		if b.picking {
			return b.updatePicker(msg)
		}
		return b.updateBoard(msg)
	}
	return b, nil
}

func (b *boardModel) clampCursors() {
	visible := board.Window(b.days, b.windowStart)
	if b.dayCursor >= len(visible) {
		b.dayCursor = max(0, len(visible)-1)
	}
	dayEvents := b.focusedDayEvents()
	if b.eventCursor >= len(dayEvents) {
		b.eventCursor = max(0, len(dayEvents)-1)
	}
}

func (b boardModel) focusedDay() (time.Time, bool) {
	visible := board.Window(b.days, b.windowStart)
	if b.dayCursor < 0 || b.dayCursor >= len(visible) {
		return time.Time{}, false
	}
	return visible[b.dayCursor], true
}

func (b boardModel) focusedDayEvents() []store.Event {
	day, ok := b.focusedDay()
	if !ok {
		return nil
	}
	return board.EventsForDay(b.events, day)
}

func (b boardModel) updateBoard(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if b.dayCursor > 0 {
			b.dayCursor--
		} else if board.CanPrev(b.windowStart) {
			b.windowStart--
		}
		b.eventCursor = 0

	case key.Matches(msg, keys.Right):
		visible := board.Window(b.days, b.windowStart)
		if b.dayCursor < len(visible)-1 {
			b.dayCursor++
		} else if board.CanNext(b.days, b.windowStart) {
			b.windowStart++
		}
		b.eventCursor = 0

	case key.Matches(msg, keys.Up):
		if b.eventCursor > 0 {
			b.eventCursor--
		}

	case key.Matches(msg, keys.Down):
		if b.eventCursor < len(b.focusedDayEvents())-1 {
			b.eventCursor++
		}

	case key.Matches(msg, keys.New):
		// The floating-add path: day picker on the current week.
		b.picking = true
		b.pickerWeekOffset = 0
		b.pickerCursor = int(b.today.Weekday())

	case key.Matches(msg, keys.Enter):
		// Day-column path: seed the focused day directly.
		if day, ok := b.focusedDay(); ok {
			return b.openForm(day)
		}

	case key.Matches(msg, keys.Delete):
		dayEvents := b.focusedDayEvents()
		if b.eventCursor < len(dayEvents) {
			id := dayEvents[b.eventCursor].ID
			return b, func() tea.Msg {
				if err := b.store.DeleteEvent(id); err != nil {
					return statusMsg{text: fmt.Sprintf("Delete event: %v", err), isError: true}
				}
				return statusMsg{text: "Event deleted"}
			}
		}
	}
	return b, nil
}

func (b boardModel) updatePicker(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if b.pickerCursor > 0 {
			b.pickerCursor--
		}
	case key.Matches(msg, keys.Right):
		if b.pickerCursor < board.WindowSize-1 {
			b.pickerCursor++
		}
	case key.Matches(msg, keys.Up):
		b.pickerWeekOffset--
	case key.Matches(msg, keys.Down):
		b.pickerWeekOffset++
	case key.Matches(msg, keys.Enter):
		week := board.ModalWeek(b.today, b.pickerWeekOffset)
		b.picking = false
		return b.openForm(week[b.pickerCursor])
	case key.Matches(msg, keys.Back):
		b.picking = false
	}
	return b, nil
}

func (b boardModel) openForm(day time.Time) (boardModel, tea.Cmd) {
	b.selectedDay = board.Midnight(day)
	*b.formTitle = ""
	*b.formTime = ""

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(b.formTitle).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewInput().Title("Time (optional)").Placeholder("HH:MM").Value(b.formTime).
				Validate(validTimeOfDay),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

// validTimeOfDay accepts an empty string or a zero-padded 24-hour HH:MM.
// Padding matters: within a day these strings are sorted lexicographically.
func validTimeOfDay(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 5 {
		return errors.New("use HH:MM")
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return errors.New("use HH:MM")
	}
	return nil
}

func (b boardModel) updateForm(msg tea.Msg) (boardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			b.formActive = false
			b.form = nil
			return b, nil
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		title, timeOfDay := *b.formTitle, *b.formTime
		if title == "" {
			return b, nil
		}
		day := b.selectedDay
		return b, func() tea.Msg {
			if _, err := b.store.CreateEvent(day, title, timeOfDay); err != nil {
				return statusMsg{text: fmt.Sprintf("Create event: %v", err), isError: true}
			}
			return statusMsg{text: "Event added"}
		}
	}

	return b, cmd
}

func (b boardModel) view() string {
	w := b.width - 4

	if b.formActive && b.form != nil {
		title := th.title.Render("New Event")
		date := th.muted.Render(b.selectedDay.Format("Monday, Jan 02 2006"))
		content := lipgloss.JoinVertical(lipgloss.Left, title, date, "", b.form.View())
		return th.panel.Width(w).Render(content)
	}

	if b.picking {
		return b.renderPicker(w)
	}

	return b.renderBoard(w)
}

func (b boardModel) renderBoard(w int) string {
	visible := board.Window(b.days, b.windowStart)

	prev, next := " ", " "
	if board.CanPrev(b.windowStart) {
		prev = "‹"
	}
	if board.CanNext(b.days, b.windowStart) {
		next = "›"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		th.title.Render("Week Board"), "  ",
		th.muted.Render(prev), " ",
		th.muted.Render(b.rangeLabel(visible)), " ",
		th.muted.Render(next),
	)

	if len(visible) == 0 {
		return th.panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			header, "", th.muted.Render("No days in view"),
		))
	}

	colWidth := max(12, (w-2*len(visible))/len(visible))

	var cols []string
	for i, day := range visible {
		cols = append(cols, b.renderColumn(day, colWidth, i == b.dayCursor))
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	hints := th.muted.Render("  ←/→: day  ↑/↓: event  enter: add here  n: pick a day  d: delete")

	return lipgloss.JoinVertical(lipgloss.Left, " "+header, columns, hints)
}

func (b boardModel) rangeLabel(visible []time.Time) string {
	if len(visible) == 0 {
		return ""
	}
	first, last := visible[0], visible[len(visible)-1]
	return fmt.Sprintf("%s — %s", first.Format("Jan 02"), last.Format("Jan 02, 2006"))
}

func (b boardModel) renderColumn(day time.Time, width int, focused bool) string {
	headStyle := th.muted
	if board.SameDay(day, b.today) {
		headStyle = th.highlight
	}
	if focused {
		headStyle = headStyle.Bold(true)
	}
	head := headStyle.Render(day.Format("Mon 02"))

	var rows []string
	rows = append(rows, head)

	dayEvents := board.EventsForDay(b.events, day)
	if len(dayEvents) == 0 {
		rows = append(rows, th.muted.Render("—"))
	}
	for i, e := range dayEvents {
		timeStr := e.Time
		if timeStr == "" {
			timeStr = "--:--"
		}
		line := fmt.Sprintf("%s %s", timeStr, e.Title)
		if r := []rune(line); len(r) > width-2 {
			line = string(r[:width-3]) + "…"
		}
		style := th.normalItem
		if focused && i == b.eventCursor {
			style = th.selectedItem
		}
		rows = append(rows, style.Render(line))
	}

	colStyle := th.column
	if board.SameDay(day, b.today) {
		colStyle = th.todayColumn
	}
	if focused {
		colStyle = colStyle.BorderForeground(th.selectedItem.GetForeground())
	}
	return colStyle.Width(width).Render(strings.Join(rows, "\n"))
}

func (b boardModel) renderPicker(w int) string {
	week := board.ModalWeek(b.today, b.pickerWeekOffset)
	title := th.title.Render("Pick a day")
	label := th.muted.Render("week of " + week[0].Format("Jan 02, 2006"))

	var cells []string
	for i, day := range week {
		text := day.Format("Mon 02")
		style := th.normalItem
		if board.SameDay(day, b.today) {
			style = th.highlight
		}
		if i == b.pickerCursor {
			style = th.selectedItem
			text = "[" + text + "]"
		} else {
			text = " " + text + " "
		}
		cells = append(cells, style.Render(text))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)

	hints := th.muted.Render("←/→: day  ↑/↓: week  enter: choose  esc: cancel")

	return th.activePanel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, label, "", grid, "", hints),
	)
}
