package cal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

func now() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) }

func TestCalDefaultsToCurrentMonth(t *testing.T) {
	color.NoColor = true
	svc, err := app.New(store.NewMemory(nil), app.Options{Now: now})
	require.NoError(t, err)

	var buf bytes.Buffer
	c := Cal{Service: svc, Out: &buf, Now: now}
	require.NoError(t, c.Do(context.Background()))
	assert.Contains(t, buf.String(), "March 2024")
	assert.Contains(t, buf.String(), "31")
}

func TestCalLong(t *testing.T) {
	color.NoColor = true
	svc, err := app.New(store.NewMemory(store.Notes{"2024-02-14": "Valentine"}), app.Options{Now: now})
	require.NoError(t, err)

	var buf bytes.Buffer
	m := calendar.Month{Year: 2024, Month: time.February}
	c := Cal{Month: &m, Long: true, Service: svc, Out: &buf, Now: now}
	require.NoError(t, c.Do(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "February 2024 - 1 event", lines[0])
	assert.Len(t, lines, 1+29)
	assert.Equal(t, "14 W  Valentine", lines[14])
}
