package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calnote/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a compact month grid. Days with a note are bold, today is
// underlined.
func (pp *PrettyPrint) Calendar(g calendar.Grid) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := g.Month.String()
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	hf := color.New(color.Faint)
	heads := make([]string, 0, len(calendar.Weekdays))
	for _, d := range calendar.Weekdays {
		heads = append(heads, d[0:2])
	}
	_, _ = hf.Fprintln(w, strings.Join(heads, " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for _, week := range g.Rows() {
		for i, day := range week {
			if i > 0 {
				_, _ = fmt.Fprint(w, " ")
			}
			if day == 0 {
				_, _ = fmt.Fprint(w, "  ")
				continue
			}
			c, _ := g.Cell(day)
			printer := l1
			if c.HasNote {
				printer = l2
			}
			if c.IsToday {
				printer = color.New(color.Underline, color.Bold)
			}
			_, _ = printer.Fprintf(w, "%2d", day)
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

// MonthLong prints one line per day with the day's note beside it.
func (pp *PrettyPrint) MonthLong(g calendar.Grid) {
	w := pp.out()
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	d := time.Weekday(g.Offset)
	for _, c := range g.Cells {
		printer := p
		if c.IsToday {
			printer = b
		}
		if d == time.Sunday {
			printer = s
			if c.IsToday {
				printer = bs
			}
		}
		_, _ = printer.Fprintf(w, "%2d %s", c.Day, d.String()[0:1])
		if c.HasNote {
			_, _ = p.Fprintf(w, "  %s", c.Note)
		}
		_, _ = fmt.Fprint(w, "\n")

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
}
