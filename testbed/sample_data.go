package main

import (
	"time"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

func sampleMonth(flag string, now time.Time) (calendar.Month, error) {
	if flag == "" {
		return calendar.MonthOf(now), nil
	}
	return calendar.ParseMonth(flag)
}

// sampleNotes spreads a handful of notes over month, including one long
// enough to exercise truncation.
func sampleNotes(month calendar.Month) store.Notes {
	return store.Notes{
		month.Date(1):  "Pay rent",
		month.Date(3):  "Dentist 9:30",
		month.Date(11): "Ship the storage refactor and write up the migration notes for everyone",
		month.Date(14): "Team lunch",
		month.Date(22): "Flight to Lisbon",
		month.Date(31): "Month end close",
	}
}
