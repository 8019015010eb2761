// Package export writes notes in interchange formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/calnote/pkg/store"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	ICS  Format = "ics"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, YAML, ICS}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// Note is one exported day.
type Note struct {
	Date string `json:"date" yaml:"date"`
	Text string `json:"text" yaml:"text"`
}

// List flattens notes into calendar order.
func List(notes store.Notes) []Note {
	out := make([]Note, 0, len(notes))
	for _, date := range notes.Dates() {
		out = append(out, Note{Date: date, Text: notes[date]})
	}
	return out
}

// Write encodes notes to w. now stamps ICS output.
func Write(w io.Writer, f Format, notes store.Notes, now time.Time) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(List(notes))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(List(notes)); err != nil {
			return err
		}
		return enc.Close()
	case ICS:
		return WriteICS(w, notes, now)
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}
