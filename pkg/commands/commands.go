package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "calnote",
		Short: options.Wrap80("A month calendar with one note per day, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddStoreArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addGet(topLevel)
	addCal(topLevel)
	addExport(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
