package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreateTodo(text string) (*Todo, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO todos (id, text, completed, created_at) VALUES (?, ?, 0, ?)`,
		id, text, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	s.changes.Publish(Change{Collection: "todos", Op: OpCreate, ID: id})
	return s.GetTodo(id)
}

func (s *Store) GetTodo(id string) (*Todo, error) {
	t := &Todo{}
	var completed int
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, text, completed, created_at FROM todos WHERE id = ?`, id,
	).Scan(&t.ID, &t.Text, &completed, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get todo %s: %w", id, err)
	}
	t.Completed = completed == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}

// ListTodos returns all todos newest first, the store's default ordering by
// creation instant. The rowid tiebreak keeps same-second inserts stable.
func (s *Store) ListTodos() ([]Todo, error) {
	rows, err := s.db.Query(
		`SELECT id, text, completed, created_at FROM todos ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		var t Todo
		var completed int
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Text, &completed, &createdAt); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// SetTodoCompleted writes the completion flag for one todo.
func (s *Store) SetTodoCompleted(id string, completed bool) error {
	val := 0
	if completed {
		val = 1
	}
	_, err := s.db.Exec(`UPDATE todos SET completed = ? WHERE id = ?`, val, id)
	if err != nil {
		return fmt.Errorf("update todo %s: %w", id, err)
	}
	s.changes.Publish(Change{Collection: "todos", Op: OpUpdate, ID: id})
	return nil
}

// DeleteTodo removes a todo by key. Deleting an unknown key is not an error.
func (s *Store) DeleteTodo(id string) error {
	_, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	s.changes.Publish(Change{Collection: "todos", Op: OpDelete, ID: id})
	return nil
}
