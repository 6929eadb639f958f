package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dayFormat = "2006-01-02"

// CreateEvent inserts a calendar entry on the given day. Start and end are
// both stored at day granularity (UTC midnight of day); timeOfDay may be
// empty or a zero-padded "HH:MM" string.
func (s *Store) CreateEvent(day time.Time, title, timeOfDay string) (*Event, error) {
	id := uuid.NewString()
	dayStr := day.Format(dayFormat)
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO events (id, title, time, start, end, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, timeOfDay, dayStr, dayStr, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	s.changes.Publish(Change{Collection: "events", Op: OpCreate, ID: id})
	return s.GetEvent(id)
}

func (s *Store) GetEvent(id string) (*Event, error) {
	e := &Event{}
	var start, end, createdAt string
	err := s.db.QueryRow(
		`SELECT id, title, time, start, end, created_at FROM events WHERE id = ?`, id,
	).Scan(&e.ID, &e.Title, &e.Time, &start, &end, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	e.Start, _ = time.Parse(dayFormat, start)
	e.End, _ = time.Parse(dayFormat, end)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// ListEvents returns all events in creation order, the store's default sort.
func (s *Store) ListEvents() ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, time, start, end, created_at FROM events ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var start, end, createdAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.Time, &start, &end, &createdAt); err != nil {
			return nil, err
		}
		e.Start, _ = time.Parse(dayFormat, start)
		e.End, _ = time.Parse(dayFormat, end)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteEvent removes an event by key. Deleting an unknown key is not an error.
func (s *Store) DeleteEvent(id string) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	s.changes.Publish(Change{Collection: "events", Op: OpDelete, ID: id})
	return nil
}
