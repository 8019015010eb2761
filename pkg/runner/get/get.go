package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/export"
	"tableflip.dev/calnote/pkg/printers"
	"tableflip.dev/calnote/pkg/store"
)

// Get lists notes for a day, a month or everything.
type Get struct {
	// Date limits the listing to a single day.
	Date string
	// Month limits the listing to one month; the current month when nil and
	// neither Date nor All is set.
	Month *calendar.Month
	All   bool
	JSON  bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no store")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: now}

	notes := n.Service.Snapshot().Notes
	title := "All events"
	selected := store.Notes{}
	switch {
	case n.Date != "":
		if !store.ValidDate(n.Date) {
			return fmt.Errorf("%w: %q", store.ErrInvalidDate, n.Date)
		}
		title = n.Date
		if text, ok := notes[n.Date]; ok {
			selected[n.Date] = text
		}
	case n.All:
		selected = notes
	default:
		month := calendar.MonthOf(now())
		if n.Month != nil {
			month = *n.Month
		}
		title = month.String()
		for date, text := range notes {
			if month.Contains(date) {
				selected[date] = text
			}
		}
	}

	if n.JSON {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		return export.Write(out, export.JSON, selected, now())
	}

	pp.TitleWithCount(title, len(selected))
	pp.Notes(selected)
	return nil
}
