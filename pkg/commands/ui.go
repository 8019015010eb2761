package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar in the terminal",
		Example: `
calnote ui
calnote ui --ephemeral
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{Service: s.Service}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
