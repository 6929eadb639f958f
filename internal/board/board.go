// Package board holds the pure scheduling logic behind the weekly event
// board: which days are active, which slice of them is visible, how events
// order within a day, and which week the creation dialog shows.
package board

import (
	"sort"
	"time"

	"github.com/dakyol/dayboard/internal/store"
)

// WindowSize is the maximum number of day columns shown at once.
const WindowSize = 7

// activeRadius is the number of days considered on each side of today.
const activeRadius = 7

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ActiveDays returns, in ascending order, the days from the 15-day range
// centered on today that are either today itself or carry at least one
// event. Today is always included.
func ActiveDays(today time.Time, events []store.Event) []time.Time {
	today = Midnight(today)

	var days []time.Time
	for offset := -activeRadius; offset <= activeRadius; offset++ {
		day := today.AddDate(0, 0, offset)
		if offset == 0 {
			days = append(days, day)
			continue
		}
		for _, e := range events {
			if SameDay(e.Start, day) {
				days = append(days, day)
				break
			}
		}
	}
	return days
}

// Window returns the contiguous slice days[start : start+WindowSize],
// shorter near the end. Out-of-range starts yield an empty window.
func Window(days []time.Time, start int) []time.Time {
	if start < 0 || start >= len(days) {
		return nil
	}
	end := start + WindowSize
	if end > len(days) {
		end = len(days)
	}
	return days[start:end]
}

// CanPrev reports whether the window can shift one step back.
func CanPrev(start int) bool {
	return start > 0
}

// CanNext reports whether the window can shift one step forward.
func CanNext(days []time.Time, start int) bool {
	return start+WindowSize < len(days)
}

// ClampWindow pulls an out-of-range window start back into range after the
// active-day set shrinks. An empty set clamps to 0.
func ClampWindow(days []time.Time, start int) int {
	if start < 0 {
		return 0
	}
	if start >= len(days) {
		start = len(days) - 1
	}
	if start < 0 {
		return 0
	}
	return start
}

// EventsForDay returns the events starting on day, ascending by their HH:MM
// time string with a missing time sorting as "00:00". The sort is stable so
// equal times keep the store's ordering. Zero-padded 24-hour strings compare
// lexicographically in chronological order.
func EventsForDay(events []store.Event, day time.Time) []store.Event {
	var out []store.Event
	for _, e := range events {
		if SameDay(e.Start, day) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortTime(out[i].Time) < sortTime(out[j].Time)
	})
	return out
}

func sortTime(t string) string {
	if t == "" {
		return "00:00"
	}
	return t
}

// ModalWeek returns the 7 days of the Sunday-start week containing today,
// shifted by weekOffset whole weeks.
func ModalWeek(today time.Time, weekOffset int) []time.Time {
	today = Midnight(today)
	sunday := today.AddDate(0, 0, -int(today.Weekday())+7*weekOffset)

	week := make([]time.Time, WindowSize)
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// WeekOffsetFor returns the offset whose ModalWeek contains day, so the
// day picker can open showing the week of a specific board column.
func WeekOffsetFor(today, day time.Time) int {
	sunday := startOfWeekUTC(today)
	target := startOfWeekUTC(day)
	return int(target.Sub(sunday).Hours() / 24 / WindowSize)
}

// startOfWeekUTC normalizes t to the Sunday of its calendar week at UTC
// midnight, so week distances are exact multiples of 24h.
func startOfWeekUTC(t time.Time) time.Time {
	utc := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return utc.AddDate(0, 0, -int(utc.Weekday()))
}
