// Package remove provides the runner logic for deleting a day's note.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/store"
)

// Remove deletes the note stored for Date.
type Remove struct {
	Date    string
	Service *app.Service
	Out     io.Writer
}

// Do deletes the note. A day without a note is reported, not treated as an
// error.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no store")
	}
	if !store.ValidDate(n.Date) {
		return fmt.Errorf("%w: %q", store.ErrInvalidDate, n.Date)
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	text, had := n.Service.Snapshot().Note(n.Date)
	if err := n.Service.Delete(n.Date); err != nil {
		return err
	}
	if !had {
		_, _ = color.New(color.Faint, color.Italic).Fprintf(out, "no event on %s\n", n.Date)
		return nil
	}
	_, _ = color.New(color.CrossedOut).Fprintf(out, "%s  %s\n", n.Date, text)
	return nil
}
