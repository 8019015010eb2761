// Package store persists day notes under a single key-value entry.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

// LayoutISO is the layout of every note key.
const LayoutISO = "2006-01-02"

// ErrInvalidDate is returned when a note key is not a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("store: invalid date, want YYYY-MM-DD")

// Notes maps a YYYY-MM-DD date to the note text for that day. A missing key
// means the day has no note; no entry ever holds blank text.
type Notes map[string]string

// Clone returns an independent copy of n.
func (n Notes) Clone() Notes {
	out := make(Notes, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}

// Dates returns the note keys in calendar order.
func (n Notes) Dates() []string {
	dates := make([]string, 0, len(n))
	for k := range n {
		dates = append(dates, k)
	}
	sort.Strings(dates)
	return dates
}

// NoteStore defines the persistence contract for day notes.
type NoteStore interface {
	// Load returns the full mapping. Missing or malformed data yields an
	// empty mapping.
	Load() (Notes, error)
	// Save records text for date. Blank text is ignored.
	Save(date, text string) error
	// Delete removes the note for date, if any.
	Delete(date string) error
	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Blank reports whether text would be rejected by Save.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ValidDate reports whether date is a well formed note key.
func ValidDate(date string) bool {
	t, err := time.Parse(LayoutISO, date)
	return err == nil && t.Format(LayoutISO) == date
}

// sanitize drops blank entries so a hand-edited payload cannot break the
// no-empty-text invariant.
func sanitize(n Notes) Notes {
	out := make(Notes, len(n))
	for k, v := range n {
		if Blank(v) {
			continue
		}
		out[k] = v
	}
	return out
}
