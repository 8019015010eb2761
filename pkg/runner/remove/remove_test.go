package remove

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/store"
)

func TestRemove(t *testing.T) {
	color.NoColor = true
	mem := store.NewMemory(store.Notes{"2024-03-15": "Dentist"})
	svc, err := app.New(mem, app.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := Remove{Date: "2024-03-15", Service: svc, Out: &buf}
	require.NoError(t, r.Do(context.Background()))
	assert.Equal(t, "2024-03-15  Dentist\n", buf.String())

	notes, _ := mem.Load()
	assert.Empty(t, notes)

	buf.Reset()
	require.NoError(t, r.Do(context.Background()))
	assert.Equal(t, "no event on 2024-03-15\n", buf.String())
}

func TestRemoveInvalidDate(t *testing.T) {
	svc, err := app.New(store.NewMemory(nil), app.Options{})
	require.NoError(t, err)

	r := Remove{Date: "march", Service: svc}
	assert.ErrorIs(t, r.Do(context.Background()), store.ErrInvalidDate)
}
