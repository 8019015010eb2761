package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

func newCalendarCmd(opts *options) *cobra.Command {
	var cellWidth int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Preview the month grid with sample notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			month, err := sampleMonth(opts.month, now)
			if err != nil {
				return err
			}
			svc, err := app.New(store.NewMemory(sampleNotes(month)), app.Options{Start: month.First()})
			if err != nil {
				return err
			}
			cal := calendar.DefaultOptions()
			if cellWidth > 0 {
				cal.CellWidth = cellWidth
			}
			return run(&calendarModel{
				testbedModel: newTestbedModel(*opts),
				svc:          svc,
				opts:         cal,
				fixedWidth:   cellWidth > 0,
			})
		},
	}

	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "fixed cell width; derived from the frame when 0")
	return cmd
}

type calendarModel struct {
	testbedModel
	svc        *app.Service
	opts       calendar.Options
	fixedWidth bool
}

func (m *calendarModel) Init() tea.Cmd { return nil }

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, cmd := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.svc.MoveCursor(-1)
	case "right", "l":
		m.svc.MoveCursor(1)
	case "up", "k":
		m.svc.MoveCursor(-7)
	case "down", "j":
		m.svc.MoveCursor(7)
	case "[":
		m.svc.PrevMonth()
	case "]":
		m.svc.NextMonth()
	case "n":
		m.opts.ShowNotes = !m.opts.ShowNotes
	}
	return m, nil
}

func (m *calendarModel) View() string {
	st := m.svc.Snapshot()
	opts := m.opts
	opts.Selected = st.Cursor
	if !m.fixedWidth {
		w, _ := m.contentSize()
		opts.CellWidth = clamp((w-6)/7, 4, 16)
	}
	content := st.Month.String() + "\n\n" + calendar.Render(st.Grid, opts) +
		"\n\n←↓↑→ move · [ ] month · n toggle notes · q quit"
	return m.composeView(content)
}
