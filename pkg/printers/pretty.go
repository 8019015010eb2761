package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

type PrettyPrint struct {
	Out io.Writer
	Now func() time.Time
}

var (
	spacing = strings.Repeat(" ", len("2006-01-02  "))
)

// DetectColor turns colour off when f is not a terminal.
func DetectColor(f *os.File) {
	if f == nil {
		return
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Notes prints one row per note, oldest first.
func (pp *PrettyPrint) Notes(notes store.Notes) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), spacing+"none\n\n")
		return
	}

	today := pp.now().Format(calendar.LayoutISO)
	d := color.New(color.FgHiYellow, color.Faint)
	b := color.New(color.Bold, color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, date := range notes.Dates() {
		weekday := ""
		if t, err := calendar.ParseDate(date); err == nil {
			weekday = t.Weekday().String()[0:3]
		}
		printer := d
		if date == today {
			printer = b
		}
		tbl.AddRow(printer.Sprint(date), weekday, notes[date])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Note prints a single saved note.
func (pp *PrettyPrint) Note(date, text string) {
	pp.Notes(store.Notes{date: text})
}
