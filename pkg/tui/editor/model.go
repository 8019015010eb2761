// Package editor implements the popup used to edit one day's note.
package editor

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calnote/pkg/tui/theme"
)

// SaveMsg asks the owner to commit the draft.
type SaveMsg struct{ Draft string }

// CloseMsg asks the owner to discard the draft.
type CloseMsg struct{}

// DraftMsg reports an edit to the draft.
type DraftMsg struct{ Draft string }

// Model is a modal text input bound to a single date.
type Model struct {
	date  string
	input textinput.Model
	width int
	err   string

	styles theme.ModalTheme
}

// New returns an editor for date seeded with draft.
func New(date, draft string, styles theme.ModalTheme) *Model {
	in := textinput.New()
	in.Placeholder = "Event Description"
	in.Prompt = "› "
	in.SetValue(draft)
	in.CursorEnd()
	return &Model{date: date, input: in, styles: styles, width: 40}
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Value returns the current draft.
func (m *Model) Value() string { return m.input.Value() }

// SetError shows msg under the input until the next keystroke.
func (m *Model) SetError(msg string) { m.err = msg }

// SetWidth sizes the popup.
func (m *Model) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	m.width = width
	inner := width - m.styles.Frame.GetHorizontalFrameSize() - lipgloss.Width(m.input.Prompt) - 1
	if inner < 8 {
		inner = 8
	}
	m.input.SetWidth(inner)
}

// Update handles key presses. Enter and esc are turned into SaveMsg and
// CloseMsg for the owner; other keys edit the draft.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			draft := m.input.Value()
			return func() tea.Msg { return SaveMsg{Draft: draft} }
		case "esc":
			return func() tea.Msg { return CloseMsg{} }
		}
		m.err = ""
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, func() tea.Msg { return DraftMsg{Draft: after} })
	}
	return cmd
}

// View renders the framed popup.
func (m *Model) View() string {
	lines := []string{
		m.styles.Title.Render("Edit Event for " + m.date),
		"",
		m.styles.Body.Render(m.input.View()),
		"",
		m.styles.Hint.Render("enter save · esc close"),
	}
	if m.err != "" {
		lines = append(lines, m.styles.Hint.Render(m.err))
	}
	inner := m.width - m.styles.Frame.GetHorizontalFrameSize()
	return m.styles.Frame.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
