package store

import (
	"context"
	"sync"
)

// Memory is a NoteStore that never touches disk. It backs tests and the
// --ephemeral flag.
type Memory struct {
	mu    sync.Mutex
	notes Notes

	// FailWrites, when set, is returned from every Save and Delete.
	FailWrites error
	// Writes counts successful persists.
	Writes int
}

// NewMemory returns a Memory seeded with a copy of seed.
func NewMemory(seed Notes) *Memory {
	return &Memory{notes: sanitize(seed)}
}

// Load implements NoteStore.
func (m *Memory) Load() (Notes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notes.Clone(), nil
}

// Save implements NoteStore.
func (m *Memory) Save(date, text string) error {
	if Blank(text) {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.notes[date] = text
	m.Writes++
	return nil
}

// Delete implements NoteStore.
func (m *Memory) Delete(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.notes, date)
	m.Writes++
	return nil
}

// Watch implements NoteStore. Nothing else can write a Memory, so the
// channel only closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
