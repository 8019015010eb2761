package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	notes "tableflip.dev/calnote/pkg/export"
	"tableflip.dev/calnote/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	format := string(notes.JSON)

	names := make([]string, 0, len(notes.Formats))
	for _, f := range notes.Formats {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write every note to stdout",
		Example: `
calnote export
calnote export --format yaml
calnote export --format ics > notes.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := notes.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			e := export.Export{Format: f, Service: s.Service, Out: cmd.OutOrStdout()}
			return e.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format,
		fmt.Sprintf("Output format. One of %s.", strings.Join(names, ", ")))
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
