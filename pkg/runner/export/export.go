// Package export provides the runner logic for dumping every note.
package export

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calnote/pkg/app"
	notes "tableflip.dev/calnote/pkg/export"
)

// Export writes all notes in Format.
type Export struct {
	Format notes.Format

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no store")
	}
	out := e.Out
	if out == nil {
		out = color.Output
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return notes.Write(out, e.Format, e.Service.Snapshot().Notes, now())
}
