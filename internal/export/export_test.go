package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dakyol/dayboard/internal/store"
)

func sampleData() ([]store.Event, []store.Todo) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	events := []store.Event{
		{ID: "e1", Title: "Standup", Time: "09:30", Start: day, End: day, CreatedAt: created},
		{ID: "e2", Title: "Gym", Time: "", Start: day, End: day, CreatedAt: created},
	}
	todos := []store.Todo{
		{ID: "t1", Text: "Buy milk", Completed: false, CreatedAt: created},
		{ID: "t2", Text: "Ship release", Completed: true, CreatedAt: created},
	}
	return events, todos
}

func TestToCSV(t *testing.T) {
	events, todos := sampleData()
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ToCSV(events, todos, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header + 2 events + 2 tasks
	if len(records) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(records))
	}
	if records[0][0] != "Kind" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][2] != "Standup" || records[1][3] != "2024-06-15" || records[1][4] != "09:30" {
		t.Fatalf("unexpected event row %v", records[1])
	}
	if records[4][2] != "Ship release" || records[4][5] != "yes" {
		t.Fatalf("unexpected task row %v", records[4])
	}
}

func TestToCSVBadPath(t *testing.T) {
	events, todos := sampleData()
	err := ToCSV(events, todos, filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestToJSON(t *testing.T) {
	events, todos := sampleData()
	path := filepath.Join(t.TempDir(), "out.json")

	if err := ToJSON(events, todos, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt string `json:"exported_at"`
		Events     []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Day   string `json:"day"`
			Time  string `json:"time"`
		} `json:"events"`
		Tasks []struct {
			Text      string `json:"text"`
			Completed bool   `json:"completed"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ExportedAt == "" {
		t.Fatal("exported_at missing")
	}
	if len(out.Events) != 2 || len(out.Tasks) != 2 {
		t.Fatalf("expected 2 events and 2 tasks, got %d/%d", len(out.Events), len(out.Tasks))
	}
	if out.Events[0].Day != "2024-06-15" {
		t.Fatalf("unexpected day %q", out.Events[0].Day)
	}
	if !out.Tasks[1].Completed {
		t.Fatal("second task should be completed")
	}

	// The untimed event omits its time field.
	if strings.Count(string(data), `"time"`) != 1 {
		t.Fatalf("expected exactly one time field in output:\n%s", data)
	}
}
