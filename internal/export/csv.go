package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/dakyol/dayboard/internal/store"
)

func ToCSV(events []store.Event, todos []store.Todo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Kind", "ID", "Title", "Day", "Time", "Completed", "Created"}); err != nil {
		return err
	}

	for _, e := range events {
		row := []string{
			"event",
			e.ID,
			e.Title,
			e.Start.Format("2006-01-02"),
			e.Time,
			"",
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	for _, t := range todos {
		completed := "no"
		if t.Completed {
			completed = "yes"
		}
		row := []string{
			"task",
			t.ID,
			t.Text,
			"",
			"",
			completed,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
