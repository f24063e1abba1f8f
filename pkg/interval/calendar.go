package interval

import (
	"fmt"
	"time"
)

// Millisecond is the smallest step used to close a window: a window ends one millisecond
// before the next one starts.
const Millisecond = time.Millisecond

// Week is one ISO-8601 week in UTC, Monday 00:00:00.000 to Sunday 23:59:59.999.
type Week struct {
	Year  int // ISO week-year, may differ from the calendar year around January 1st
	Week  int
	Start time.Time
	End   time.Time
}

// Month is one calendar month in UTC, first day 00:00:00.000 to last day 23:59:59.999.
type Month struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Next returns the first instant of the following month.
func (m Month) Next() time.Time {
	return m.Start.AddDate(0, 1, 0)
}

// Contains reports whether t falls in [Start, Next). Instants between End and Next, i.e. below
// millisecond resolution, still belong to the month.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start) && t.Before(m.Next())
}

// Next returns the Monday 00:00 of the following week.
func (w Week) Next() time.Time {
	return w.Start.AddDate(0, 0, 7)
}

// Contains reports whether t falls in [Start, Next).
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.Next())
}

// StartOfWeek truncates t to Monday 00:00 UTC of its ISO week.
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	days := int(t.Weekday())
	if days == 0 { // Sunday
		days = 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(days-1), 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) Week {
	start := StartOfWeek(t)
	year, week := start.ISOWeek()
	return Week{
		Year:  year,
		Week:  week,
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-Millisecond),
	}
}

// WeeksBetween returns every ISO week intersecting [start, end] in chronological order.
// It returns nil when start is after end.
func WeeksBetween(start, end time.Time) []Week {
	if start.After(end) {
		return nil
	}

	var weeks []Week
	for cursor := StartOfWeek(start); !cursor.After(end); cursor = cursor.AddDate(0, 0, 7) {
		weeks = append(weeks, WeekOf(cursor))
	}
	return weeks
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return NewMonth(t.Year(), t.Month())
}

// NewMonth builds the window for year/month.
func NewMonth(year int, month time.Month) Month {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{
		Year:  start.Year(),
		Month: start.Month(),
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-Millisecond),
	}
}

// MonthsBetween returns every calendar month intersecting [start, end] in chronological order.
// It returns nil when start is after end.
func MonthsBetween(start, end time.Time) []Month {
	if start.After(end) {
		return nil
	}

	var months []Month
	for m := MonthOf(start); !m.Start.After(end); m = NewMonth(m.Year, m.Month+1) {
		months = append(months, m)
	}
	return months
}
