package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/tui/editor"
	"tableflip.dev/calnote/pkg/tui/theme"
)

func newEditorCmd(opts *options) *cobra.Command {
	var draft string

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Preview the note editor popup",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.FormatDate(time.Now())
			ed := editor.New(date, draft, theme.Default().Modal)
			return run(&editorModel{
				testbedModel: newTestbedModel(*opts),
				editor:       ed,
			})
		},
	}

	cmd.Flags().StringVar(&draft, "draft", "", "text to seed the editor with")
	return cmd
}

type editorModel struct {
	testbedModel
	editor *editor.Model
	last   string
}

func (m *editorModel) Init() tea.Cmd { return m.editor.Init() }

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, cmd := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, _ := m.contentSize()
		m.editor.SetWidth(min(w, 60))
		return m, nil
	case editor.SaveMsg:
		m.last = fmt.Sprintf("would save %q", msg.Draft)
		return m, nil
	case editor.CloseMsg:
		return m, tea.Quit
	case editor.DraftMsg:
		return m, nil
	}
	return m, m.editor.Update(msg)
}

func (m *editorModel) View() string {
	content := m.editor.View()
	if m.last != "" {
		content += "\n\n" + m.last
	}
	return m.composeView(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
