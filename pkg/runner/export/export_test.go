package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/calnote/pkg/app"
	notes "tableflip.dev/calnote/pkg/export"
	"tableflip.dev/calnote/pkg/store"
)

func TestExport(t *testing.T) {
	svc, err := app.New(store.NewMemory(store.Notes{"2024-03-15": "Dentist"}), app.Options{})
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	e := Export{Format: notes.YAML, Service: svc, Out: &buf, Now: now}
	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, buf.String(), "2024-03-15")
	assert.Contains(t, buf.String(), "  text: Dentist\n")

	buf.Reset()
	e.Format = notes.ICS
	require.NoError(t, e.Do(context.Background()))
	assert.True(t, strings.HasPrefix(buf.String(), "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, buf.String(), "SUMMARY:Dentist\r\n")
}
