package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/calendar"
)

// MonthOptions holds the --month flag.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month="2024-02" or --month="February 2024".`)
}

// GetMonth returns the parsed month, or nil when the flag is unset.
func (o *MonthOptions) GetMonth() (*calendar.Month, error) {
	if o.MonthString == "" {
		return nil, nil
	}
	m, err := calendar.ParseMonth(o.MonthString)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
