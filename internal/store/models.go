package store

import "time"

// Todo is a single to-do item. Identity keys are opaque strings assigned on
// creation and never change. CreatedAt is used only for ordering.
type Todo struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Event is one calendar entry. Start and End always carry the same calendar
// day at UTC midnight; the optional Time field holds a zero-padded 24-hour
// "HH:MM" string, empty meaning no time of day was chosen. Events are never
// mutated after creation.
type Event struct {
	ID        string
	Title     string
	Time      string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// Op identifies the kind of mutation behind a Change.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one successful mutation against a collection. Watchers
// are expected to re-query the full result set on every change.
type Change struct {
	Collection string // "todos" or "events"
	Op         Op
	ID         string
}
