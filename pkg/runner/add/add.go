package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/printers"
	"tableflip.dev/calnote/pkg/store"
)

// Add saves a note for one day.
type Add struct {
	Date    string
	Message string

	Service *app.Service
	Out     io.Writer
}

// ErrEmptyMessage is returned when the note text is blank.
var ErrEmptyMessage = errors.New("add: note text is empty")

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no store")
	}
	if store.Blank(n.Message) {
		return ErrEmptyMessage
	}
	if err := n.Service.Save(n.Date, n.Message); err != nil {
		return err
	}

	t, _ := calendar.ParseDate(n.Date)
	month := calendar.MonthOf(t)
	notes := n.Service.Snapshot().Notes

	inMonth := store.Notes{}
	for date, text := range notes {
		if month.Contains(date) {
			inMonth[date] = text
		}
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.TitleWithCount(month.String(), len(inMonth))
	pp.Notes(inMonth)
	return nil
}
