// Package tui runs the interactive month calendar.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
	"tableflip.dev/calnote/pkg/tui/editor"
	"tableflip.dev/calnote/pkg/tui/help"
	"tableflip.dev/calnote/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeHelp
)

const helpLine = "←↓↑→ move · [ ] month · t today · enter edit · x delete · ? help · q quit"

// Model is the Bubble Tea model for the calendar.
type Model struct {
	svc *app.Service
	ctx context.Context

	state app.State
	mode  mode

	editor *editor.Model
	help   *help.Model

	stateCh     <-chan app.State
	unsubscribe func()
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme   theme.Theme
	calOpts calendar.Options

	status     string
	termWidth  int
	termHeight int
}

type stateMsg struct{}

type stateClosedMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type errMsg struct{ err error }

// New creates a calendar model backed by svc.
func New(ctx context.Context, svc *app.Service) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		svc:     svc,
		ctx:     ctx,
		theme:   theme.Default(),
		calOpts: calendar.DefaultOptions(),
	}
	if svc != nil {
		m.state = svc.Snapshot()
		m.stateCh, m.unsubscribe = svc.Subscribe()
	}
	return m
}

// Init starts the state subscription and the store watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForState(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) waitForState() tea.Cmd {
	if m.stateCh == nil {
		return nil
	}
	ch := m.stateCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return stateMsg{}
		}
		return stateClosedMsg{}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Close releases the subscription and the watcher.
func (m *Model) Close() {
	m.stopWatch()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) reloadCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if err := svc.Reload(); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case stateMsg:
		m.refresh()
		cmds = append(cmds, m.waitForState())
	case stateClosedMsg:
		m.stateCh = nil
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Type == store.EventNotesChanged {
			cmds = append(cmds, m.reloadCmd())
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case editor.DraftMsg:
		m.state = m.svc.SetDraft(msg.Draft)
	case editor.SaveMsg:
		m.svc.SetDraft(msg.Draft)
		st, err := m.svc.SaveDraft()
		m.state = st
		switch {
		case err != nil:
			m.status = "ERR: " + err.Error()
			if m.editor != nil {
				m.editor.SetError("not saved: " + err.Error())
			}
		case !st.EditorOpen:
			m.closeEditor()
			m.status = st.Status
		}
	case editor.CloseMsg:
		m.state = m.svc.Close()
		m.closeEditor()
		m.status = "Closed without saving"
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		// Pastes and cursor blinks belong to the open editor.
		if m.mode == modeEdit && m.editor != nil {
			cmds = append(cmds, m.editor.Update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	m.state = m.svc.Snapshot()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.Close()
		return tea.Quit
	}

	switch m.mode {
	case modeEdit:
		if m.editor != nil {
			return m.editor.Update(msg)
		}
		m.mode = modeNormal
		return nil
	case modeHelp:
		switch key {
		case "?", "q", "esc":
			m.mode = modeNormal
			return nil
		}
		if m.help != nil {
			return m.help.Update(msg)
		}
		return nil
	}

	switch key {
	case "q":
		m.Close()
		return tea.Quit
	case "left", "h":
		m.state = m.svc.MoveCursor(-1)
	case "right", "l":
		m.state = m.svc.MoveCursor(1)
	case "up", "k":
		m.state = m.svc.MoveCursor(-7)
	case "down", "j":
		m.state = m.svc.MoveCursor(7)
	case "[", "p", "pgup":
		m.state = m.svc.PrevMonth()
	case "]", "n", "pgdown":
		m.state = m.svc.NextMonth()
	case "t":
		m.state = m.svc.Today()
	case "enter", "e":
		return m.openEditor()
	case "x", "d", "delete":
		date := m.state.Cursor
		if err := m.svc.DeleteCursor(); err != nil {
			m.status = "ERR: " + err.Error()
		} else if _, had := m.state.Note(date); had {
			m.status = "Deleted " + date
		}
		m.refresh()
	case "?":
		m.mode = modeHelp
		if m.help == nil {
			m.help = help.New(m.helpSize())
		}
	}
	return nil
}

func (m *Model) openEditor() tea.Cmd {
	m.state = m.svc.OpenCursor()
	m.editor = editor.New(m.state.Selected, m.state.Draft, m.theme.Modal)
	m.editor.SetWidth(m.editorWidth())
	m.mode = modeEdit
	m.status = ""
	return m.editor.Init()
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.mode = modeNormal
}

func (m *Model) applySizes() {
	if m.termWidth <= 0 {
		return
	}
	// Seven columns separated by single spaces.
	w := (m.termWidth - 6) / 7
	if w < 4 {
		w = 4
	}
	if w > 16 {
		w = 16
	}
	m.calOpts.CellWidth = w
	m.calOpts.ShowNotes = w >= 6
	if m.editor != nil {
		m.editor.SetWidth(m.editorWidth())
	}
	if m.help != nil {
		m.help.SetSize(m.helpSize())
	}
}

func (m *Model) editorWidth() int {
	w := m.termWidth - 4
	if w <= 0 || w > 60 {
		w = 60
	}
	return w
}

func (m *Model) helpSize() (int, int) {
	w, h := m.termWidth-4, m.termHeight-4
	if w <= 0 {
		w = 60
	}
	if h <= 0 {
		h = 20
	}
	return w, h
}

// View renders the header, grid, cursor detail and footer.
func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		return m.help.View()
	}

	opts := m.calOpts
	opts.Selected = m.state.Cursor

	sections := []string{
		m.renderHeader(),
		calendar.Render(m.state.Grid, opts),
		m.renderDetail(),
	}
	if m.mode == modeEdit && m.editor != nil {
		sections = append(sections, m.editor.View())
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	prev := m.theme.Header.Nav.Render("◀ Prev")
	next := m.theme.Header.Nav.Render("Next ▶")
	title := m.theme.Header.Title.Render(m.state.Month.String())

	width := 7*m.calOpts.CellWidth + 6
	gap := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(title)
	if gap < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, prev, " ", title, " ", next)
	}
	left := gap / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		prev, strings.Repeat(" ", left), title, strings.Repeat(" ", gap-left), next)
}

func (m *Model) renderDetail() string {
	date := m.theme.Detail.Date.Render(m.state.Cursor)
	if note, ok := m.state.Note(m.state.Cursor); ok {
		return date + "  " + m.theme.Detail.Note.Render(note)
	}
	return date + "  " + m.theme.Detail.Empty.Render("no event")
}

func (m *Model) renderFooter() string {
	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d events this month", m.state.Grid.NoteCount())
	}
	line := m.theme.Footer.Status.Render(status)
	if strings.HasPrefix(status, "ERR:") {
		line = m.theme.Footer.Error.Render(status)
	}
	return line + "\n" + m.theme.Footer.Help.Render(helpLine)
}

// Run starts the calendar program and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(ctx, svc)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
