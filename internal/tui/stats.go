package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dakyol/dayboard/internal/board"
	"github.com/dakyol/dayboard/internal/store"
)

// statsModel shows how the active window is filling up: one bar per active
// day plus open/done task counts.
type statsModel struct {
	store  *store.Store
	width  int
	height int

	today  time.Time
	events []store.Event
	todos  []store.Todo

	// windowCount is the number of events on active days, recomputed
	// alongside the chart. Stored events outside the range don't count.
	windowCount int

	chart barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		today: time.Now(),
		chart: barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		events, err := s.store.ListEvents()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load events: %v", err), isError: true}
		}
		todos, err := s.store.ListTodos()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load tasks: %v", err), isError: true}
		}
		return statsDataMsg{events: events, todos: todos}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.events = msg.events
		s.todos = msg.todos
		s.buildChart()
		return s, nil
	}
	return s, nil
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if s.height > 28 {
		chartHeight = 14
	}

	s.chart = barchart.New(chartWidth, chartHeight)
	s.windowCount = 0

	var bars []barchart.BarData
	for _, day := range board.ActiveDays(s.today, s.events) {
		count := len(board.EventsForDay(s.events, day))
		s.windowCount += count
		style := lipgloss.NewStyle().Foreground(th.highlight.GetForeground())
		if board.SameDay(day, s.today) {
			style = lipgloss.NewStyle().Foreground(th.selectedItem.GetForeground())
		}
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: day.Format("2006-01-02"), Value: float64(count), Style: style},
			},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	open, done := 0, 0
	for _, t := range s.todos {
		if t.Completed {
			done++
		} else {
			open++
		}
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		th.title.Render("Stats"), "  ",
		th.muted.Render(fmt.Sprintf("%d events in window", s.windowCount)),
	)

	taskLine := fmt.Sprintf("  %s %d open   %s %d done",
		th.warning.Render("●"), open,
		th.success.Render("●"), done,
	)

	return th.panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", s.chart.View(), "", th.muted.Render("Events per active day"), "", taskLine,
		),
	)
}
