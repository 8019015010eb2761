// Package cal prints a month of the calendar.
package cal

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/printers"
)

type Cal struct {
	// Month to print; the current month when nil.
	Month *calendar.Month
	// Long prints one line per day with its note.
	Long bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (c *Cal) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not print calendar, no store")
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	month := calendar.MonthOf(now())
	if c.Month != nil {
		month = *c.Month
	}

	g := calendar.Build(month, c.Service.Snapshot().Notes, now())
	pp := printers.PrettyPrint{Out: c.Out, Now: now}
	if c.Long {
		pp.TitleWithCount(month.String(), g.NoteCount())
		pp.MonthLong(g)
		return nil
	}
	pp.Calendar(g)
	return nil
}
