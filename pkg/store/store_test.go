package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	path string
	key  string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Key() string {
	if t.key == "" {
		return DefaultKey
	}
	return t.key
}

func newTestStore(t *testing.T) (NoteStore, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	return p, base
}

func TestLoadEmptyWhenKeyMissing(t *testing.T) {
	p, _ := newTestStore(t)

	notes, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSaveThenLoad(t *testing.T) {
	p, base := newTestStore(t)

	require.NoError(t, p.Save("2024-03-15", "Dentist"))

	notes, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-03-15": "Dentist"}, notes)

	// A fresh store over the same path sees the persisted key.
	again, err := Load(testConfig{path: base})
	require.NoError(t, err)
	notes, err = again.Load()
	require.NoError(t, err)
	assert.Equal(t, "Dentist", notes["2024-03-15"])

	raw, err := os.ReadFile(filepath.Join(base, DefaultKey))
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-03-15":"Dentist"}`, string(raw))
}

func TestSaveBlankIsIgnored(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		p, base := newTestStore(t)

		require.NoError(t, p.Save("2024-03-15", text))

		notes, err := p.Load()
		require.NoError(t, err)
		assert.NotContains(t, notes, "2024-03-15")
		_, err = os.Stat(filepath.Join(base, DefaultKey))
		assert.True(t, os.IsNotExist(err), "blank save should not write the key")
	}
}

func TestSaveBlankKeepsExistingNote(t *testing.T) {
	p, _ := newTestStore(t)
	require.NoError(t, p.Save("2024-03-15", "Dentist"))
	require.NoError(t, p.Save("2024-03-15", "   "))

	notes, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, "Dentist", notes["2024-03-15"])
}

func TestSaveKeepsTextVerbatim(t *testing.T) {
	p, _ := newTestStore(t)
	require.NoError(t, p.Save("2024-03-15", "  lunch with Sam "))

	notes, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, "  lunch with Sam ", notes["2024-03-15"])
}

func TestDeleteRemovesNote(t *testing.T) {
	p, base := newTestStore(t)
	require.NoError(t, p.Save("2024-03-15", "Dentist"))
	require.NoError(t, p.Save("2024-03-16", "Gym"))

	require.NoError(t, p.Delete("2024-03-15"))

	again, err := Load(testConfig{path: base})
	require.NoError(t, err)
	notes, err := again.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-03-16": "Gym"}, notes)
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	p, _ := newTestStore(t)
	assert.NoError(t, p.Delete("1999-01-01"))
}

func TestWriteFailureLeavesNotesUnchanged(t *testing.T) {
	p, base := newTestStore(t)
	require.NoError(t, p.Save("2024-03-15", "Dentist"))

	// A regular file where diskv expects its temp dir makes every write fail.
	tmp := filepath.Join(base, ".tmp")
	require.NoError(t, os.RemoveAll(tmp))
	require.NoError(t, os.WriteFile(tmp, []byte("in the way"), 0o644))

	err := p.Save("2024-03-16", "Gym")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store: write notes")

	err = p.Delete("2024-03-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store: write notes")

	want := Notes{"2024-03-15": "Dentist"}
	assert.Equal(t, want, p.(*persistence).notes)

	// Once writes work again the rolled back entries stay gone.
	require.NoError(t, os.Remove(tmp))
	require.NoError(t, p.Save("2024-03-17", "Lunch"))
	notes, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-03-15": "Dentist", "2024-03-17": "Lunch"}, notes)
}

func TestMalformedPayloadReadsAsEmpty(t *testing.T) {
	for name, payload := range map[string]string{
		"garbage": "{not json",
		"array":   `["a","b"]`,
		"null":    "null",
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(base, DefaultKey), []byte(payload), 0o644))

			p, err := Load(testConfig{path: base})
			require.NoError(t, err)
			notes, err := p.Load()
			require.NoError(t, err)
			assert.Empty(t, notes)

			// The store stays usable and overwrites the bad payload.
			require.NoError(t, p.Save("2024-01-01", "new year"))
			notes, err = p.Load()
			require.NoError(t, err)
			assert.Equal(t, Notes{"2024-01-01": "new year"}, notes)
		})
	}
}

func TestLoadDropsBlankEntries(t *testing.T) {
	base := t.TempDir()
	payload := `{"2024-01-01":"  ","2024-01-02":"ok"}`
	require.NoError(t, os.WriteFile(filepath.Join(base, DefaultKey), []byte(payload), 0o644))

	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	notes, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-01-02": "ok"}, notes)
}

func TestCustomKey(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base, key: "work"})
	require.NoError(t, err)
	require.NoError(t, p.Save("2024-05-01", "standup"))

	_, err = os.Stat(filepath.Join(base, "work"))
	assert.NoError(t, err)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(Notes{"2024-01-01": "seed", "2024-01-02": " "})

	notes, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-01-01": "seed"}, notes)

	require.NoError(t, m.Save("2024-01-03", ""))
	assert.Equal(t, 0, m.Writes)

	require.NoError(t, m.Save("2024-01-03", "x"))
	require.NoError(t, m.Delete("2024-01-01"))
	assert.Equal(t, 2, m.Writes)

	boom := errors.New("quota exceeded")
	m.FailWrites = boom
	assert.ErrorIs(t, m.Save("2024-01-04", "y"), boom)
	notes, err = m.Load()
	require.NoError(t, err)
	assert.Equal(t, Notes{"2024-01-03": "x"}, notes)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("2024-2-3"))
	assert.False(t, ValidDate("tomorrow"))
}

func TestNotesDatesSorted(t *testing.T) {
	n := Notes{"2024-03-02": "b", "2023-12-31": "a", "2024-03-10": "c"}
	assert.Equal(t, []string{"2023-12-31", "2024-03-02", "2024-03-10"}, n.Dates())
}
