// Package timeutil resolves relative day expressions such as "tomorrow" or
// "+1w2d".
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/calnote/pkg/calendar"
)

// ErrNotRelative is returned when the input is not a relative expression, so
// callers can fall back to absolute layouts.
var ErrNotRelative = errors.New("timeutil: not a relative date")

// Offset is a calendar shift. Months are applied before days.
type Offset struct {
	Months int
	Days   int
}

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	keywords       = map[string]Offset{
		"today":     {},
		"tomorrow":  {Days: 1},
		"yesterday": {Days: -1},
	}
	unitMap = map[string]Offset{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"m":      {Months: 1},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
	}
)

// ParseOffset parses "today", "tomorrow", "yesterday" or a signed sequence of
// segments like "+3d", "-1w" or "+1m2d".
func ParseOffset(input string) (Offset, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if off, ok := keywords[lower]; ok {
		return off, nil
	}
	if lower == "" || (lower[0] != '+' && lower[0] != '-') {
		return Offset{}, ErrNotRelative
	}
	sign := 1
	if lower[0] == '-' {
		sign = -1
	}

	remaining := lower[1:]
	var total Offset
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Offset{}, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Offset{}, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return Offset{}, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total.Months += value * base.Months
		total.Days += value * base.Days
		remaining = remaining[len(matches[0]):]
	}
	if total == (Offset{}) {
		return Offset{}, fmt.Errorf("offset %q moves nowhere", input)
	}
	total.Months *= sign
	total.Days *= sign
	return total, nil
}

// Apply shifts now's date by o. Month steps clamp to the end of the month.
func (o Offset) Apply(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return calendar.AddMonths(day, o.Months).AddDate(0, 0, o.Days)
}

// Resolve returns the YYYY-MM-DD key input refers to, relative to now.
func Resolve(input string, now time.Time) (string, error) {
	off, err := ParseOffset(input)
	if err != nil {
		return "", err
	}
	return calendar.FormatDate(off.Apply(now)), nil
}
