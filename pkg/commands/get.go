package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/commands/options"
	"tableflip.dev/calnote/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	var all bool
	var date string

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "list notes for a day, a month or everything",
		Long: options.Wrap80(`List notes. With no arguments the current month is shown.
Pass a date for a single day, --month for another month or --all for every note.`),
		Example: `
calnote get
calnote get 2024-03-15
calnote get --month 2024-02
calnote get --all --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			date = ""
			switch len(args) {
			case 0:
				return nil
			case 1:
				if mo.MonthString != "" || all {
					return errors.New("a date can not be combined with --month or --all")
				}
				var err error
				date, err = options.ParseDay(args[0], time.Now())
				return err
			default:
				return errors.New("too many dates set, confused")
			}
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dateCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			month, err := mo.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			g := get.Get{
				Date:    date,
				Month:   month,
				All:     all,
				JSON:    oo.JSON,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&all, "all", false, "List every stored note.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
