package options

import (
	"github.com/spf13/cobra"
)

// StoreOptions select how notes are stored for a command run.
type StoreOptions struct {
	Ephemeral bool
	Debug     bool
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep notes in memory only; nothing is read from or written to disk.")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Log at debug level to the configured log file.")
}
