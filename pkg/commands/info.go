package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where notes are stored.",
		Example: `
calnote info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			i := info.Info{
				Config:  s.Config,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
