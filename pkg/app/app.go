// Package app holds the calendar view state and the editor workflow on top of
// a note store. Terminal and CLI front ends share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

// State is an immutable snapshot of the view. Notes and Grid are copies and
// may be read freely by the receiver.
type State struct {
	Month      calendar.Month
	Cursor     string
	Selected   string
	Draft      string
	EditorOpen bool
	Notes      store.Notes
	Grid       calendar.Grid
	Status     string
	Err        error
}

// Note returns the note for date in this snapshot.
func (s State) Note(date string) (string, bool) {
	n, ok := s.Notes[date]
	return n, ok
}

// Options configures a Service.
type Options struct {
	// Now supplies the current time; time.Now when nil.
	Now func() time.Time
	// Start is the date the cursor begins on; today when zero.
	Start time.Time
	// Logger receives diagnostics; disabled when zero.
	Logger *zerolog.Logger
}

// Service owns the view state and mediates every note mutation.
type Service struct {
	store store.NoteStore
	now   func() time.Time
	log   zerolog.Logger

	mu         sync.Mutex
	notes      store.Notes
	cursor     time.Time
	selected   string
	draft      string
	editorOpen bool
	status     string
	err        error

	subs   map[int]chan State
	nextID int
}

// New loads notes from s and positions the view on opts.Start.
func New(s store.NoteStore, opts Options) (*Service, error) {
	if s == nil {
		return nil, errors.New("app: no store configured")
	}
	svc := &Service{
		store: s,
		now:   opts.Now,
		log:   zerolog.Nop(),
		subs:  make(map[int]chan State),
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if opts.Logger != nil {
		svc.log = *opts.Logger
	}
	start := opts.Start
	if start.IsZero() {
		start = svc.now()
	}
	svc.cursor = dateOnly(start)

	notes, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("app: load notes: %w", err)
	}
	svc.notes = notes
	return svc, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Snapshot returns the current state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() State {
	month := calendar.MonthOf(s.cursor)
	return State{
		Month:      month,
		Cursor:     calendar.FormatDate(s.cursor),
		Selected:   s.selected,
		Draft:      s.draft,
		EditorOpen: s.editorOpen,
		Notes:      s.notes.Clone(),
		Grid:       calendar.Build(month, s.notes, s.now()),
		Status:     s.status,
		Err:        s.err,
	}
}

// Subscribe registers for state changes. Sends never block: a subscriber that
// falls behind misses intermediate snapshots but can always call Snapshot.
// The returned func unsubscribes and closes the channel.
func (s *Service) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan State, 16)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// publishLocked fans the current state out to subscribers. Caller holds s.mu.
func (s *Service) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	st := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
}

func (s *Service) mutate(fn func()) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.publishLocked()
	return s.snapshotLocked()
}

// NextMonth shows the following month. The cursor keeps its day of month,
// clamped to the month's length.
func (s *Service) NextMonth() State {
	return s.mutate(func() {
		s.cursor = calendar.AddMonths(s.cursor, 1)
		s.status = ""
	})
}

// PrevMonth shows the preceding month.
func (s *Service) PrevMonth() State {
	return s.mutate(func() {
		s.cursor = calendar.AddMonths(s.cursor, -1)
		s.status = ""
	})
}

// MoveCursor moves the cursor by days, changing month when it crosses one.
func (s *Service) MoveCursor(days int) State {
	return s.mutate(func() {
		s.cursor = s.cursor.AddDate(0, 0, days)
	})
}

// Today moves the cursor to the current date.
func (s *Service) Today() State {
	return s.mutate(func() {
		s.cursor = dateOnly(s.now())
		s.status = ""
	})
}

// Open binds the editor to date, seeding the draft with its existing note.
func (s *Service) Open(date string) (State, error) {
	if !store.ValidDate(date) {
		return s.Snapshot(), fmt.Errorf("%w: %q", store.ErrInvalidDate, date)
	}
	t, _ := calendar.ParseDate(date)
	return s.mutate(func() {
		s.cursor = t
		s.selected = date
		s.draft = s.notes[date]
		s.editorOpen = true
		s.err = nil
	}), nil
}

// OpenCursor opens the editor on the cursor's date.
func (s *Service) OpenCursor() State {
	st, _ := s.Open(s.Snapshot().Cursor)
	return st
}

// SetDraft replaces the draft text. It has no effect when the editor is closed.
func (s *Service) SetDraft(text string) State {
	return s.mutate(func() {
		if s.editorOpen {
			s.draft = text
		}
	})
}

// SaveDraft commits the draft to the selected day and closes the editor. A
// blank draft is ignored and the editor stays open. When the store fails the
// editor stays open with the draft intact and the error is returned.
func (s *Service) SaveDraft() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editorOpen || store.Blank(s.draft) {
		return s.snapshotLocked(), nil
	}
	if err := s.store.Save(s.selected, s.draft); err != nil {
		s.err = err
		s.status = "save failed"
		s.log.Error().Err(err).Str("date", s.selected).Msg("save note")
		s.publishLocked()
		return s.snapshotLocked(), err
	}
	s.notes[s.selected] = s.draft
	s.status = "Saved " + s.selected
	s.err = nil
	s.editorOpen = false
	s.draft = ""
	s.publishLocked()
	return s.snapshotLocked(), nil
}

// Close discards the draft and hides the editor.
func (s *Service) Close() State {
	return s.mutate(func() {
		s.editorOpen = false
		s.draft = ""
	})
}

// Save stores text for date without going through the editor.
func (s *Service) Save(date, text string) error {
	if !store.ValidDate(date) {
		return fmt.Errorf("%w: %q", store.ErrInvalidDate, date)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if store.Blank(text) {
		return nil
	}
	if err := s.store.Save(date, text); err != nil {
		s.err = err
		s.publishLocked()
		return err
	}
	s.notes[date] = text
	s.err = nil
	s.publishLocked()
	return nil
}

// Delete removes the note for date. The store is always asked, since another
// process may have written date since the last reload.
func (s *Service) Delete(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(date); err != nil {
		s.err = err
		s.status = "delete failed"
		s.log.Error().Err(err).Str("date", date).Msg("delete note")
		s.publishLocked()
		return err
	}
	delete(s.notes, date)
	s.status = "Deleted " + date
	s.err = nil
	s.publishLocked()
	return nil
}

// DeleteCursor removes the note under the cursor.
func (s *Service) DeleteCursor() error {
	return s.Delete(s.Snapshot().Cursor)
}

// Reload re-reads the store, keeping any open draft.
func (s *Service) Reload() error {
	notes, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("app: reload notes: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.publishLocked()
	return nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.store.Watch(ctx)
}
