package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"
)

type options struct {
	full   bool
	width  int
	height int
	month  string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Preview calnote TUI components in isolation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 24, "window height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.month, "month", "", "month to preview (e.g. \"March 2026\"), defaults to now")

	rootCmd.AddCommand(newCalendarCmd(&opts))
	rootCmd.AddCommand(newEditorCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// testbedModel frames a component and keeps a short log of the messages it
// saw underneath.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	log []string
}

const (
	minFrameHeight = 12
	logLines       = 5
)

func newTestbedModel(opts options) testbedModel {
	return testbedModel{
		fullscreen: opts.full,
		maxWidth:   opts.width,
		maxHeight:  opts.height,
	}
}

// Update tracks the terminal size and quits on ctrl+c. It reports whether the
// message was consumed.
func (m *testbedModel) Update(msg tea.Msg) (bool, tea.Cmd) {
	m.record(msg)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return true, tea.Quit
		}
	}
	return false, nil
}

func (m *testbedModel) record(msg tea.Msg) {
	line := describeMsg(msg)
	if line == "" {
		return
	}
	m.log = append(m.log, line)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func describeMsg(msg tea.Msg) string {
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("%T key=%q", msg, v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("%T size=%dx%d", msg, v.Width, v.Height)
	case fmt.Stringer:
		return fmt.Sprintf("%T %s", msg, v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%T %+v", msg, v)
	}
}

// contentSize is the space inside the frame.
func (m *testbedModel) contentSize() (int, int) {
	w, h := m.frameSize()
	return max(1, w-2), max(1, h-2)
}

func (m *testbedModel) frameSize() (int, int) {
	space := max(minFrameHeight, m.termHeight-logLines-1)
	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, space)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = space
	}
	return width, height
}

func (m *testbedModel) composeView(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}
	width, height := m.frameSize()
	inner, innerHeight := m.contentSize()

	body := lipgloss.NewStyle().
		Width(inner).
		Height(innerHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width).
		Height(height).
		Render(body)

	placed := lipgloss.Place(m.termWidth, max(1, m.termHeight-logLines-1),
		lipgloss.Center, lipgloss.Top, frame)

	log := lipgloss.NewStyle().
		Faint(true).
		Width(m.termWidth).
		Render(strings.Join(m.log, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, placed, log)
}

func clamp(value, min, max int) int {
	if max <= 0 {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
