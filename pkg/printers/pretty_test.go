package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	was := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = was })

	var buf bytes.Buffer
	return &PrettyPrint{
		Out: &buf,
		Now: func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) },
	}, &buf
}

func TestTitleWithCount(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.TitleWithCount("March 2024", 1)
	pp.TitleWithCount("April 2024", 3)

	out := buf.String()
	assert.Contains(t, out, "March 2024 - 1 event\n")
	assert.Contains(t, out, "April 2024 - 3 events\n")
}

func TestNotesSortedTable(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Notes(store.Notes{
		"2024-03-15": "Dentist",
		"2024-03-01": "Payday",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "2024-03-01")
		assert.Contains(t, lines[0], "Fri")
		assert.Contains(t, lines[0], "Payday")
		assert.Contains(t, lines[1], "2024-03-15")
		assert.Contains(t, lines[1], "Dentist")
	}
}

func TestNotesEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Notes(nil)
	assert.Contains(t, buf.String(), "none")
}

func TestCalendarGrid(t *testing.T) {
	pp, buf := newPrinter(t)
	month := calendar.Month{Year: 2024, Month: time.February}
	pp.Calendar(calendar.Build(month, nil, pp.now()))

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], "February 2024")
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])
	// February 2024 starts on a Thursday.
	assert.Equal(t, "             1  2  3", lines[2])
	assert.Contains(t, buf.String(), "29")
	assert.NotContains(t, buf.String(), "30")
}

func TestMonthLong(t *testing.T) {
	pp, buf := newPrinter(t)
	month := calendar.Month{Year: 2024, Month: time.March}
	pp.MonthLong(calendar.Build(month, map[string]string{"2024-03-15": "Dentist"}, pp.now()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 31)
	assert.Equal(t, " 1 F", lines[0])
	assert.Equal(t, " 3 S", lines[2])
	assert.Equal(t, "15 F  Dentist", lines[14])
}
