package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/commands/options"
	"tableflip.dev/calnote/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	var long bool

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "print a month, days with notes in bold",
		Example: `
calnote cal
calnote cal --month "February 2024"
calnote cal --long
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			month, err := mo.GetMonth()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			c := cal.Cal{Month: month, Long: long, Service: s.Service, Out: cmd.OutOrStdout()}
			return c.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Print one line per day with its note.")

	topLevel.AddCommand(cmd)
}
