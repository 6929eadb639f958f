package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dakyol/dayboard/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Events     []jsonEvent `json:"events"`
	Tasks      []jsonTask  `json:"tasks"`
}

type jsonEvent struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Day     string `json:"day"`
	Time    string `json:"time,omitempty"`
	Created string `json:"created_at"`
}

type jsonTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Created   string `json:"created_at"`
}

func ToJSON(events []store.Event, todos []store.Todo, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, e := range events {
		out.Events = append(out.Events, jsonEvent{
			ID:      e.ID,
			Title:   e.Title,
			Day:     e.Start.Format("2006-01-02"),
			Time:    e.Time,
			Created: e.CreatedAt.Format(time.RFC3339),
		})
	}

	for _, t := range todos {
		out.Tasks = append(out.Tasks, jsonTask{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Created:   t.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
