package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dakyol/dayboard/internal/store"
)

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	todos  []store.Todo
	cursor int

	input        textinput.Model
	inputFocused bool
}

func newTasksModel(s *store.Store) tasksModel {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	return tasksModel{
		store: s,
		input: ti,
	}
}

func (t tasksModel) Init() tea.Cmd {
	return t.refresh()
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		todos, err := t.store.ListTodos()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load tasks: %v", err), isError: true}
		}
		return tasksDataMsg{todos: todos}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksDataMsg:
		t.todos = msg.todos
		if t.cursor >= len(t.todos) {
			t.cursor = max(0, len(t.todos)-1)
		}
		return t, nil

	case tea.KeyMsg:
		if t.inputFocused {
			return t.updateInput(msg)
		}
		return t.updateList(msg)
	}
	return t, nil
}

func (t tasksModel) updateInput(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		t.inputFocused = false
		t.input.Blur()
		t.input.SetValue("")
		return t, nil

	case key.Matches(msg, keys.Enter):
		text := strings.TrimSpace(t.input.Value())
		t.inputFocused = false
		t.input.Blur()
		t.input.SetValue("")
		if text == "" {
			// Empty input issues no mutation.
			return t, nil
		}
		return t, func() tea.Msg {
			if _, err := t.store.CreateTodo(text); err != nil {
				return statusMsg{text: fmt.Sprintf("Add task: %v", err), isError: true}
			}
			return statusMsg{text: "Task added"}
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t tasksModel) updateList(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, keys.Down):
		if t.cursor < len(t.todos)-1 {
			t.cursor++
		}
	case key.Matches(msg, keys.New):
		t.inputFocused = true
		return t, t.input.Focus()

	case key.Matches(msg, keys.Toggle):
		if t.cursor < len(t.todos) {
			todo := t.todos[t.cursor]
			return t, func() tea.Msg {
				if err := t.store.SetTodoCompleted(todo.ID, !todo.Completed); err != nil {
					return statusMsg{text: fmt.Sprintf("Toggle task: %v", err), isError: true}
				}
				return nil
			}
		}

	case key.Matches(msg, keys.Delete):
		if t.cursor < len(t.todos) {
			id := t.todos[t.cursor].ID
			return t, func() tea.Msg {
				if err := t.store.DeleteTodo(id); err != nil {
					return statusMsg{text: fmt.Sprintf("Delete task: %v", err), isError: true}
				}
				return statusMsg{text: "Task deleted"}
			}
		}
	}
	return t, nil
}

func (t tasksModel) view() string {
	w := t.width - 4
	title := th.title.Render("Tasks")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if t.inputFocused {
		rows = append(rows, "  "+t.input.View())
		rows = append(rows, "")
	}

	if len(t.todos) == 0 {
		rows = append(rows, th.muted.Render("No tasks yet. Press n to add one."))
	}

	for i, todo := range t.todos {
		check := "☐"
		style := th.normalItem
		if todo.Completed {
			check = "☑"
			style = th.doneItem
		}
		cursor := "  "
		if i == t.cursor && !t.inputFocused {
			cursor = "> "
			if !todo.Completed {
				style = th.selectedItem
			}
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, check, todo.Text)))
	}

	rows = append(rows, "")
	rows = append(rows, th.muted.Render("  n: new  space: toggle  d: delete"))

	return th.panel.Width(w).Render(strings.Join(rows, "\n"))
}
