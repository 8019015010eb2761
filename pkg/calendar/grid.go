package calendar

import "time"

// Cell describes a single day rendered in the grid.
type Cell struct {
	Day     int
	Date    string
	Note    string
	HasNote bool
	IsToday bool
}

// Grid is the computed layout of one month.
type Grid struct {
	Month  Month
	Offset int
	Cells  []Cell
}

// Build computes the grid for month. Cells with a key in notes are flagged,
// and the cell matching now's date is marked as today.
func Build(month Month, notes map[string]string, now time.Time) Grid {
	today := now.Format(LayoutISO)
	days := month.Days()
	g := Grid{
		Month:  month,
		Offset: month.Offset(),
		Cells:  make([]Cell, 0, days),
	}
	for i := 1; i <= days; i++ {
		date := month.Date(i)
		note, ok := notes[date]
		g.Cells = append(g.Cells, Cell{
			Day:     i,
			Date:    date,
			Note:    note,
			HasNote: ok,
			IsToday: date == today,
		})
	}
	return g
}

// Cell returns the cell for day, or false when day is outside the month.
func (g Grid) Cell(day int) (Cell, bool) {
	if day < 1 || day > len(g.Cells) {
		return Cell{}, false
	}
	return g.Cells[day-1], true
}

// Rows lays the month out in weeks of seven slots starting on Sunday. Slots
// before the first or after the last day hold 0.
func (g Grid) Rows() [][]int {
	total := g.Offset + len(g.Cells)
	count := (total + 6) / 7
	rows := make([][]int, 0, count)
	for row := 0; row < count; row++ {
		week := make([]int, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - g.Offset + 1
			if day >= 1 && day <= len(g.Cells) {
				week[col] = day
			}
		}
		rows = append(rows, week)
	}
	return rows
}

// NoteCount returns how many days in the grid carry a note.
func (g Grid) NoteCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.HasNote {
			n++
		}
	}
	return n
}
