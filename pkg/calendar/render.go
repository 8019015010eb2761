package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
)

// Weekdays are the header labels, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const todayMarker = "●"

// Options controls grid styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	BlankStyle    lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	// CellWidth is the inner width of a day cell. Values under 4 use 4.
	CellWidth int
	// ShowNotes adds a second line with a truncated note preview.
	ShowNotes bool
	// Selected is the date key drawn with SelectedStyle.
	Selected string
}

// DefaultOptions returns the styling used by the terminal UI.
func DefaultOptions() Options {
	accent := mustHex("#60a5fa")
	slate := mustHex("#374151")
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		BlankStyle:    lipgloss.NewStyle(),
		EmptyStyle:    lipgloss.NewStyle().Background(lipgloss.Color(slate.Hex())).Foreground(lipgloss.Color("252")),
		EntryStyle:    lipgloss.NewStyle().Background(lipgloss.Color(accent.Hex())).Foreground(lipgloss.Color("#1f2937")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color(accent.BlendLab(slate, 0.5).Hex())).Foreground(lipgloss.Color("15")),
		CellWidth:     10,
		ShowNotes:     true,
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Render produces the weekday header followed by one block per week.
func Render(g Grid, opts Options) string {
	if len(g.Cells) == 0 {
		return ""
	}
	width := opts.CellWidth
	if width < 4 {
		width = 4
	}

	header := make([]string, 0, 7)
	for _, wd := range Weekdays {
		header = append(header, opts.HeaderStyle.Width(width).Align(lipgloss.Center).Render(wd))
	}
	lines := []string{strings.Join(header, " ")}

	for _, week := range g.Rows() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cell, ok := g.Cell(day)
			if !ok {
				cells = append(cells, opts.BlankStyle.Width(width).Render(blankCell(opts.ShowNotes)))
				continue
			}
			cells = append(cells, renderCell(cell, width, opts))
		}
		lines = append(lines, joinCells(cells))
	}
	return strings.Join(lines, "\n")
}

func blankCell(showNotes bool) string {
	if showNotes {
		return " \n "
	}
	return " "
}

func renderCell(c Cell, width int, opts Options) string {
	style := opts.EmptyStyle
	if c.HasNote {
		style = opts.EntryStyle
	}
	if c.Date == opts.Selected && opts.Selected != "" {
		style = opts.SelectedStyle.Inherit(style)
	}

	top := fmt.Sprintf("%2d", c.Day)
	if c.IsToday {
		top += " " + opts.TodayStyle.Inherit(style).Render(todayMarker)
	}
	text := top
	if opts.ShowNotes {
		text += "\n" + Preview(c.Note, width)
	}
	return style.Width(width).Render(text)
}

// Preview fits note to width on one line, marking truncation with "…".
func Preview(note string, width int) string {
	note = strings.Join(strings.Fields(note), " ")
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(note, uint(width), "…")
}

func joinCells(cells []string) string {
	parts := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
