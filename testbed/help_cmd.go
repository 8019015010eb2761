package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/tui/help"
)

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "help-page",
		Short: "Render the key binding help page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&helpModel{testbedModel: newTestbedModel(*opts)})
		},
	}
}

type helpModel struct {
	testbedModel
	help *help.Model
}

func (m *helpModel) Init() tea.Cmd { return nil }

func (m *helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, cmd := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		if m.help == nil {
			m.help = help.New(w, h)
		} else {
			m.help.SetSize(w, h)
		}
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		}
	}
	if m.help == nil {
		return m, nil
	}
	return m, m.help.Update(msg)
}

func (m *helpModel) View() string {
	if m.help == nil {
		return m.composeView("help page unavailable")
	}
	return m.composeView(m.help.View())
}
