package info

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

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv("CALNOTE_CONFIG_PATH", "")
	svc, err := app.New(store.NewMemory(store.Notes{"2024-03-15": "Dentist"}), app.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	i := Info{
		Config:  &store.FileConfig{Path: "/tmp/calnote", StorageKey: "events", LogPath: "/tmp/calnote.log"},
		Service: svc,
		Out:     &buf,
	}
	require.NoError(t, i.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "CALNOTE_CONFIG_PATH env var not set")
	assert.Contains(t, out, "/tmp/calnote")
	assert.Contains(t, out, "/tmp/calnote.log")
	assert.Contains(t, out, "events")
}
