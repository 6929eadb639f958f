package board

import (
	"testing"
	"time"

	"github.com/dakyol/dayboard/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eventOn(d time.Time, timeOfDay string) store.Event {
	return store.Event{Title: "e", Time: timeOfDay, Start: d, End: d}
}

// ============================================================
// ActiveDays
// ============================================================

func TestActiveDaysAlwaysIncludesToday(t *testing.T) {
	today := day(2024, time.June, 12)

	days := ActiveDays(today, nil)
	if len(days) != 1 {
		t.Fatalf("expected only today with no events, got %d days", len(days))
	}
	if !SameDay(days[0], today) {
		t.Fatalf("expected today, got %v", days[0])
	}
}

func TestActiveDaysScenario(t *testing.T) {
	// Wednesday, with events exactly at the window edges.
	today := day(2024, time.June, 12)
	events := []store.Event{
		eventOn(day(2024, time.June, 5), ""),
		eventOn(day(2024, time.June, 20), ""),
	}

	days := ActiveDays(today, events)
	want := []time.Time{
		day(2024, time.June, 5),
		day(2024, time.June, 12),
		day(2024, time.June, 20),
	}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d: %v", len(want), len(days), days)
	}
	for i := range want {
		if !SameDay(days[i], want[i]) {
			t.Fatalf("days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
}

func TestActiveDaysExcludesOutOfRange(t *testing.T) {
	today := day(2024, time.June, 12)
	events := []store.Event{
		eventOn(day(2024, time.June, 4), ""),  // today-8, outside
		eventOn(day(2024, time.June, 21), ""), // today+8, outside
	}

	days := ActiveDays(today, events)
	if len(days) != 1 {
		t.Fatalf("out-of-range events should not add days, got %v", days)
	}
}

func TestActiveDaysAscendingNoDuplicates(t *testing.T) {
	today := day(2024, time.June, 12)
	var events []store.Event
	// Several events per day across the whole range.
	for offset := -7; offset <= 7; offset++ {
		d := today.AddDate(0, 0, offset)
		events = append(events, eventOn(d, "09:00"), eventOn(d, "10:00"))
	}

	days := ActiveDays(today, events)
	if len(days) != 15 {
		t.Fatalf("expected all 15 days active, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i].After(days[i-1]) {
			t.Fatalf("days not strictly ascending at %d: %v then %v", i, days[i-1], days[i])
		}
	}
}

// ============================================================
// Window navigation
// ============================================================

func fifteenDays(today time.Time) []time.Time {
	var events []store.Event
	for offset := -7; offset <= 7; offset++ {
		events = append(events, eventOn(today.AddDate(0, 0, offset), ""))
	}
	return ActiveDays(today, events)
}

func TestWindowSlices(t *testing.T) {
	days := fifteenDays(day(2024, time.June, 12))

	visible := Window(days, 0)
	if len(visible) != 7 {
		t.Fatalf("expected 7 visible days, got %d", len(visible))
	}
	if !SameDay(visible[0], days[0]) {
		t.Fatal("window should start at days[0]")
	}

	// Near the end the window shrinks.
	visible = Window(days, 12)
	if len(visible) != 3 {
		t.Fatalf("expected 3 visible days near the end, got %d", len(visible))
	}
}

func TestWindowOutOfRange(t *testing.T) {
	days := fifteenDays(day(2024, time.June, 12))

	if got := Window(days, -1); got != nil {
		t.Fatalf("negative start should yield empty window, got %v", got)
	}
	if got := Window(days, len(days)); got != nil {
		t.Fatalf("past-the-end start should yield empty window, got %v", got)
	}
	if got := Window(nil, 0); got != nil {
		t.Fatalf("empty days should yield empty window, got %v", got)
	}
}

func TestNavigationBoundaries(t *testing.T) {
	days := fifteenDays(day(2024, time.June, 12))

	if CanPrev(0) {
		t.Fatal("prev should be disabled at start 0")
	}
	if !CanPrev(1) {
		t.Fatal("prev should be enabled at start 1")
	}
	if !CanNext(days, 7) {
		t.Fatal("next should be enabled at start 7 of 15")
	}
	if CanNext(days, 8) {
		t.Fatal("next should be disabled once the last day is visible")
	}
}

func TestClampWindow(t *testing.T) {
	days := fifteenDays(day(2024, time.June, 12))

	if got := ClampWindow(days, 3); got != 3 {
		t.Fatalf("in-range start should be kept, got %d", got)
	}
	if got := ClampWindow(days, 99); got != len(days)-1 {
		t.Fatalf("expected clamp to %d, got %d", len(days)-1, got)
	}
	if got := ClampWindow(days, -5); got != 0 {
		t.Fatalf("negative start clamps to 0, got %d", got)
	}
	if got := ClampWindow(nil, 4); got != 0 {
		t.Fatalf("empty set clamps to 0, got %d", got)
	}
}

// ============================================================
// EventsForDay
// ============================================================

func TestEventsForDayEmpty(t *testing.T) {
	today := day(2024, time.June, 12)
	events := []store.Event{eventOn(day(2024, time.June, 13), "")}

	got := EventsForDay(events, today)
	if len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}

func TestEventsForDaySortsByTime(t *testing.T) {
	d := day(2024, time.June, 12)
	events := []store.Event{
		eventOn(d, "14:00"),
		eventOn(d, "09:00"),
		eventOn(d, ""),
		eventOn(d, "11:30"),
	}

	got := EventsForDay(events, d)
	want := []string{"", "09:00", "11:30", "14:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Time != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Time, want[i])
		}
	}
}

func TestEventsForDayStableOnTies(t *testing.T) {
	d := day(2024, time.June, 12)
	events := []store.Event{
		{ID: "a", Time: "", Start: d, End: d},
		{ID: "b", Time: "", Start: d, End: d},
		{ID: "c", Time: "09:00", Start: d, End: d},
		{ID: "d", Time: "09:00", Start: d, End: d},
	}

	got := EventsForDay(events, d)
	order := make([]string, len(got))
	for i, e := range got {
		order[i] = e.ID
	}
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestEventsForDayUntimedSortsFirst(t *testing.T) {
	d := day(2024, time.June, 15)
	events := []store.Event{
		eventOn(d, "08:00"),
		eventOn(d, ""), // "Gym" without a time
		eventOn(d, "00:30"),
	}

	got := EventsForDay(events, d)
	if got[0].Time != "" {
		t.Fatalf("untimed event should sort first, got %q", got[0].Time)
	}
}

// ============================================================
// ModalWeek
// ============================================================

func TestModalWeekContainsToday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		today := day(2024, time.June, 9).AddDate(0, 0, offset) // Sun..Sat
		week := ModalWeek(today, 0)
		if len(week) != 7 {
			t.Fatalf("expected 7 days, got %d", len(week))
		}
		if week[0].Weekday() != time.Sunday {
			t.Fatalf("week should start on Sunday, got %v", week[0].Weekday())
		}
		found := false
		for _, d := range week {
			if SameDay(d, today) {
				found = true
			}
		}
		if !found {
			t.Fatalf("ModalWeek(%v, 0) does not contain today", today)
		}
	}
}

func TestModalWeekOffset(t *testing.T) {
	today := day(2024, time.June, 12)

	week0 := ModalWeek(today, 0)
	week1 := ModalWeek(today, 1)
	if !SameDay(week1[0], week0[0].AddDate(0, 0, 7)) {
		t.Fatalf("offset 1 should start 7 days after offset 0: %v vs %v", week1[0], week0[0])
	}

	weekBack := ModalWeek(today, -1)
	if !SameDay(weekBack[0], week0[0].AddDate(0, 0, -7)) {
		t.Fatal("offset -1 should start 7 days before offset 0")
	}
}

func TestWeekOffsetFor(t *testing.T) {
	today := day(2024, time.June, 12) // Wednesday, week of Jun 09

	tests := []struct {
		day  time.Time
		want int
	}{
		{day(2024, time.June, 12), 0},
		{day(2024, time.June, 9), 0},  // Sunday of the same week
		{day(2024, time.June, 15), 0}, // Saturday of the same week
		{day(2024, time.June, 16), 1}, // next Sunday
		{day(2024, time.June, 8), -1}, // previous Saturday
		{day(2024, time.June, 30), 3},
	}
	for _, tt := range tests {
		if got := WeekOffsetFor(today, tt.day); got != tt.want {
			t.Errorf("WeekOffsetFor(%v) = %d, want %d", tt.day.Format("2006-01-02"), got, tt.want)
		}
		// The computed offset must actually show the day.
		week := ModalWeek(today, WeekOffsetFor(today, tt.day))
		found := false
		for _, d := range week {
			if SameDay(d, tt.day) {
				found = true
			}
		}
		if !found {
			t.Errorf("ModalWeek at offset for %v does not contain it", tt.day)
		}
	}
}

// ============================================================
// SameDay / Midnight
// ============================================================

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 12, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("same calendar day should match regardless of time")
	}
	if SameDay(a, b.Add(time.Second)) {
		t.Fatal("midnight rollover should not match")
	}
}

func TestMidnight(t *testing.T) {
	d := time.Date(2024, time.June, 12, 15, 30, 45, 99, time.UTC)
	m := Midnight(d)
	if m.Hour() != 0 || m.Minute() != 0 || m.Second() != 0 || m.Nanosecond() != 0 {
		t.Fatalf("Midnight left time-of-day: %v", m)
	}
	if !SameDay(d, m) {
		t.Fatal("Midnight changed the calendar day")
	}
}
