package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/commands/options"
	"tableflip.dev/calnote/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var date, message string

	cmd := &cobra.Command{
		Use:   "add [date] <text>",
		Short: "save the note for a day",
		Long: options.Wrap80(`Save the note for a day, replacing any note already there.
The date is the first argument or --on. Blank text is rejected.`),
		Example: `
calnote add 2024-03-15 Dentist at 9
calnote add --on 3/15 Dentist at 9
`,
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			if date, err = on.GetOn(); err != nil {
				return err
			}
			if date == "" {
				if len(args) < 2 {
					return errors.New("requires a date and a note")
				}
				if date, err = options.ParseDay(args[0], time.Now()); err != nil {
					return err
				}
				args = args[1:]
			}
			if len(args) < 1 {
				return errors.New("requires a note")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			a := add.Add{
				Date:    date,
				Message: message,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
