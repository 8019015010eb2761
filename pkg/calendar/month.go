// Package calendar computes and renders month grids.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the date key layout shared with the note store.
const LayoutISO = "2006-01-02"

var monthLayouts = []string{"2006-01", "2006-1", "January 2006", "Jan 2006", "1/2006"}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns midnight UTC of the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Offset is the weekday of the first day, 0 for Sunday.
func (m Month) Offset() int {
	return int(m.First().Weekday())
}

// Add shifts the month by n, which may be negative.
func (m Month) Add(n int) Month {
	return MonthOf(m.First().AddDate(0, n, 0))
}

// Next returns the following month.
func (m Month) Next() Month { return m.Add(1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return m.Add(-1) }

// Date formats day of m as a note key. Days outside the month are clamped.
func (m Month) Date(day int) string {
	return m.Day(day).Format(LayoutISO)
}

// Day returns the given day of the month, clamped to [1, Days()].
func (m Month) Day(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if n := m.Days(); day > n {
		day = n
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date key falls in m.
func (m Month) Contains(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return MonthOf(t) == m
}

// String renders the month as "January 2006".
func (m Month) String() string {
	return m.First().Format("January 2006")
}

// Key renders the month as "2006-01".
func (m Month) Key() string {
	return m.First().Format("2006-01")
}

// ParseMonth accepts "2006-01", "January 2006", "Jan 2006" and "1/2006".
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("calendar: unrecognised month %q", s)
}

// FormatDate renders t as a note key.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDate parses a note key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(LayoutISO, s)
}

// AddMonths moves t by n months keeping the day of month, clamped to the end
// of the target month: Jan 31 plus one month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	target := MonthOf(t).Add(n)
	day := t.Day()
	if days := target.Days(); day > days {
		day = days
	}
	return time.Date(target.Year, target.Month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
