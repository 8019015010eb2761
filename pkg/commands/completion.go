package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(calnote completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(calnote completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// dateCompletions lists stored dates starting with toComplete.
func dateCompletions(toComplete string) []string {
	if so.Ephemeral {
		return nil
	}
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	notes, err := p.Load()
	if err != nil {
		return nil
	}
	return matchingDates(notes, toComplete)
}

func matchingDates(notes store.Notes, prefix string) []string {
	var out []string
	for _, d := range notes.Dates() {
		if strings.HasPrefix(d, prefix) {
			out = append(out, d)
		}
	}
	return out
}
