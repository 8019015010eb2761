package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
	"tableflip.dev/calnote/pkg/timeutil"
)

const (
	layoutLoose    = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions holds the --on date flag.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-3-15", --on="3/15" or --on="+2d".`)
}

// GetOn returns the flag as a YYYY-MM-DD key, or "" when unset.
func (o *OnOptions) GetOn() (string, error) {
	return o.GetOnFrom(time.Now())
}

// GetOnFrom resolves the flag relative to now.
func (o *OnOptions) GetOnFrom(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	return ParseDay(o.OnString, now)
}

// ParseDay accepts YYYY-MM-DD, YYYY-M-D, M/D or a relative day such as
// "tomorrow" or "+1w". A M/D day resolves to its next occurrence on or after
// now, so "2/29" lands on the next leap day.
func ParseDay(s string, now time.Time) (string, error) {
	if date, err := timeutil.Resolve(s, now); err == nil {
		return date, nil
	} else if !errors.Is(err, timeutil.ErrNotRelative) {
		return "", fmt.Errorf("%w: %v", store.ErrInvalidDate, err)
	}
	if t, err := time.Parse(layoutLoose, s); err == nil {
		return calendar.FormatDate(t), nil
	}
	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", store.ErrInvalidDate, s)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for year := now.Year(); ; year++ {
		d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		// 2/29 only exists in leap years; skip years where it normalises away.
		if d.Day() == t.Day() && !d.Before(today) {
			return calendar.FormatDate(d), nil
		}
	}
}
