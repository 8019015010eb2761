package app

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T, seed store.Notes) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(seed)
	svc, err := New(mem, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, mem
}

func TestNewStartsOnToday(t *testing.T) {
	svc, _ := newTestService(t, nil)
	st := svc.Snapshot()
	if st.Month != (calendar.Month{Year: 2024, Month: time.March}) {
		t.Fatalf("unexpected month %v", st.Month)
	}
	if st.Cursor != "2024-03-10" {
		t.Fatalf("unexpected cursor %q", st.Cursor)
	}
	if st.EditorOpen {
		t.Fatalf("editor should start closed")
	}
	c, _ := st.Grid.Cell(10)
	if !c.IsToday {
		t.Fatalf("expected day 10 flagged as today")
	}
}

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Fatalf("expected error without store")
	}
}

func TestSaveDraftScenario(t *testing.T) {
	svc, mem := newTestService(t, nil)

	st, err := svc.Open("2024-03-15")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !st.EditorOpen || st.Selected != "2024-03-15" || st.Draft != "" {
		t.Fatalf("unexpected state after open: %+v", st)
	}

	svc.SetDraft("Dentist")
	st, err = svc.SaveDraft()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if st.EditorOpen {
		t.Fatalf("editor should close after save")
	}
	notes, _ := mem.Load()
	if len(notes) != 1 || notes["2024-03-15"] != "Dentist" {
		t.Fatalf("unexpected store contents %v", notes)
	}

	st, _ = svc.Open("2024-03-15")
	if st.Draft != "Dentist" {
		t.Fatalf("reopened draft = %q, want Dentist", st.Draft)
	}
	c, _ := st.Grid.Cell(15)
	if !c.HasNote {
		t.Fatalf("expected cell 15 to carry a note")
	}
}

func TestSaveDraftBlankIsIgnored(t *testing.T) {
	svc, mem := newTestService(t, nil)
	_, _ = svc.Open("2024-03-15")
	svc.SetDraft("   ")

	st, err := svc.SaveDraft()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !st.EditorOpen {
		t.Fatalf("blank save should leave the editor open")
	}
	if mem.Writes != 0 {
		t.Fatalf("blank save wrote to the store")
	}
	if _, ok := st.Note("2024-03-15"); ok {
		t.Fatalf("blank save created an entry")
	}
}

func TestCloseDiscardsDraft(t *testing.T) {
	svc, mem := newTestService(t, store.Notes{"2024-03-15": "Dentist"})
	_, _ = svc.Open("2024-03-15")
	svc.SetDraft("Dentist moved")

	st := svc.Close()
	if st.EditorOpen || st.Draft != "" {
		t.Fatalf("unexpected state after close: %+v", st)
	}
	if mem.Writes != 0 {
		t.Fatalf("close persisted the draft")
	}
	if n, _ := st.Note("2024-03-15"); n != "Dentist" {
		t.Fatalf("note changed on close: %q", n)
	}
}

func TestSaveDraftStoreFailureKeepsEditor(t *testing.T) {
	svc, mem := newTestService(t, nil)
	boom := errors.New("quota exceeded")
	mem.FailWrites = boom

	_, _ = svc.Open("2024-03-15")
	svc.SetDraft("Dentist")
	st, err := svc.SaveDraft()
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if !st.EditorOpen || st.Draft != "Dentist" {
		t.Fatalf("editor should stay open with draft: %+v", st)
	}
	if !errors.Is(st.Err, boom) {
		t.Fatalf("state should carry the error, got %v", st.Err)
	}
	if _, ok := st.Note("2024-03-15"); ok {
		t.Fatalf("failed save should not appear in the view")
	}
}

func TestOpenRejectsBadDate(t *testing.T) {
	svc, _ := newTestService(t, nil)
	if _, err := svc.Open("2024-02-30"); !errors.Is(err, store.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if svc.Snapshot().EditorOpen {
		t.Fatalf("editor opened on a bad date")
	}
}

func TestDelete(t *testing.T) {
	svc, mem := newTestService(t, store.Notes{"2024-03-15": "Dentist"})
	if err := svc.Delete("2024-03-15"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	notes, _ := mem.Load()
	if _, ok := notes["2024-03-15"]; ok {
		t.Fatalf("note still stored after delete")
	}
	if _, ok := svc.Snapshot().Note("2024-03-15"); ok {
		t.Fatalf("note still in view after delete")
	}
}

func TestDeleteNoteWrittenElsewhere(t *testing.T) {
	svc, mem := newTestService(t, nil)
	// Another writer adds a note before the service reloads.
	if err := mem.Save("2024-03-15", "Dentist"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := svc.Snapshot().Note("2024-03-15"); ok {
		t.Fatalf("service saw the note without a reload")
	}

	if err := svc.Delete("2024-03-15"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	notes, _ := mem.Load()
	if _, ok := notes["2024-03-15"]; ok {
		t.Fatalf("note still stored after delete: %v", notes)
	}
}

func TestDeleteFailureKeepsNote(t *testing.T) {
	svc, mem := newTestService(t, store.Notes{"2024-03-15": "Dentist"})
	boom := errors.New("disk full")
	mem.FailWrites = boom

	if err := svc.Delete("2024-03-15"); !errors.Is(err, boom) {
		t.Fatalf("delete error = %v, want %v", err, boom)
	}
	st := svc.Snapshot()
	if n, _ := st.Note("2024-03-15"); n != "Dentist" {
		t.Fatalf("note after failed delete = %q", n)
	}
	if st.Err == nil {
		t.Fatalf("failed delete not surfaced in state")
	}
}

func TestMonthNavigationRoundTrip(t *testing.T) {
	svc, _ := newTestService(t, nil)
	start := svc.Snapshot().Month

	st := svc.NextMonth()
	if st.Month != start.Next() {
		t.Fatalf("next month = %v, want %v", st.Month, start.Next())
	}
	st = svc.PrevMonth()
	if st.Month != start {
		t.Fatalf("round trip landed on %v, want %v", st.Month, start)
	}
}

func TestMonthNavigationClampsCursor(t *testing.T) {
	mem := store.NewMemory(nil)
	svc, err := New(mem, Options{Now: fixedNow, Start: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	st := svc.NextMonth()
	if st.Cursor != "2024-02-29" {
		t.Fatalf("cursor = %q, want 2024-02-29", st.Cursor)
	}
	if st.Grid.Offset != 4 || len(st.Grid.Cells) != 29 {
		t.Fatalf("unexpected February grid: offset=%d cells=%d", st.Grid.Offset, len(st.Grid.Cells))
	}
}

func TestMoveCursorCrossesMonth(t *testing.T) {
	svc, _ := newTestService(t, nil)
	st := svc.MoveCursor(22)
	if st.Cursor != "2024-04-01" || st.Month.Month != time.April {
		t.Fatalf("unexpected cursor %q month %v", st.Cursor, st.Month)
	}
	st = svc.Today()
	if st.Cursor != "2024-03-10" {
		t.Fatalf("today = %q", st.Cursor)
	}
}

func TestSubscribeReceivesChanges(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ch, cancel := svc.Subscribe()
	defer cancel()

	svc.NextMonth()
	select {
	case st := <-ch:
		if st.Month.Month != time.April {
			t.Fatalf("published month %v", st.Month)
		}
	case <-time.After(time.Second):
		t.Fatalf("no state published")
	}

	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after unsubscribe")
	}
	// Mutations after unsubscribe must not panic.
	svc.PrevMonth()
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	svc, mem := newTestService(t, nil)
	if err := mem.Save("2024-03-01", "payday"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := svc.Snapshot().Note("2024-03-01"); ok {
		t.Fatalf("service saw write before reload")
	}
	if err := svc.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n, _ := svc.Snapshot().Note("2024-03-01"); n != "payday" {
		t.Fatalf("reload missed note, got %q", n)
	}
}

func TestDirectSave(t *testing.T) {
	svc, mem := newTestService(t, nil)
	if err := svc.Save("2024-03-15", "   "); err != nil {
		t.Fatalf("blank save: %v", err)
	}
	if mem.Writes != 0 {
		t.Fatalf("blank direct save wrote")
	}
	if err := svc.Save("03/15", "x"); !errors.Is(err, store.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if err := svc.Save("2024-03-15", "Dentist"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n, _ := svc.Snapshot().Note("2024-03-15"); n != "Dentist" {
		t.Fatalf("view missing saved note")
	}
}
