package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/commands/options"
	"tableflip.dev/calnote/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:     "rm <date>",
		Aliases: []string{"remove", "delete"},
		Short:   "delete the note for a day",
		Example: `
calnote rm 2024-03-15
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one date")
			}
			var err error
			date, err = options.ParseDay(args[0], time.Now())
			return err
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dateCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := remove.Remove{Date: date, Service: s.Service, Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
