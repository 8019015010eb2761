package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tableflip.dev/calnote/pkg/store"
)

const productID = "-//tableflip.dev//calnote//EN"

var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tableflip.dev/calnote"))

// UID is the stable identifier of the VEVENT for date.
func UID(date string) string {
	return uuid.NewSHA1(uidSpace, []byte(date)).String() + "@calnote"
}

// WriteICS renders every note as an all-day VEVENT.
func WriteICS(w io.Writer, notes store.Notes, now time.Time) error {
	ew := &errWriter{w: w}
	ew.line("BEGIN:VCALENDAR")
	ew.line("VERSION:2.0")
	ew.line("PRODID:" + productID)
	ew.line("CALSCALE:GREGORIAN")
	stamp := now.UTC().Format("20060102T150405Z")

	for _, n := range List(notes) {
		day, err := time.Parse(store.LayoutISO, n.Date)
		if err != nil {
			continue
		}
		ew.line("BEGIN:VEVENT")
		ew.line("UID:" + UID(n.Date))
		ew.line("DTSTAMP:" + stamp)
		ew.line("DTSTART;VALUE=DATE:" + day.Format("20060102"))
		ew.line("DTEND;VALUE=DATE:" + day.AddDate(0, 0, 1).Format("20060102"))
		ew.line("SUMMARY:" + escapeText(n.Text))
		ew.line("END:VEVENT")
	}
	ew.line("END:VCALENDAR")
	return ew.err
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprint(e.w, fold(s), "\r\n")
}

// maxLineOctets is the content line limit, excluding the CRLF.
const maxLineOctets = 75

// fold breaks s into lines of at most maxLineOctets octets. Continuation
// lines start with a single space and never split a UTF-8 sequence.
func fold(s string) string {
	if len(s) <= maxLineOctets {
		return s
	}
	var b strings.Builder
	limit := maxLineOctets
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			cut = limit
		}
		b.WriteString(s[:cut])
		b.WriteString("\r\n ")
		s = s[cut:]
		limit = maxLineOctets - 1
	}
	b.WriteString(s)
	return b.String()
}
