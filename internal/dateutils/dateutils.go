// Package dateutils normalizes the date formats found in bank statements to
// canonical YYYY-MM-DD strings.
package dateutils

import (
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output layout.
const DateLayoutISO = "2006-01-02"

// layouts is the ordered list of accepted input formats. Order matters:
// several inputs are ambiguous between day-first and month-first readings,
// and day-first formats win.
var layouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/06",
	"02-01-06",
	"06-01-02",
	"02.01.2006",
	"02.01.06",
	"01/02/2006",
	"01-02-2006",
	"02 01 2006",
	"02 01 06",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseDate tries each accepted format against the full input string and
// returns the canonical YYYY-MM-DD form of the first match. Two-digit years
// are windowed: values below 50 map to 2000-2049, values 50-99 to 1950-1999.
// Returns ok=false when no format matches; callers decide whether a missing
// date is fatal for the record.
func ParseDate(raw string) (string, bool) {
	raw = strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
	if raw == "" {
		return "", false
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if twoDigitYear(layout) {
			t = rewindow(t)
		}
		return t.Format(DateLayoutISO), true
	}
	return "", false
}

// twoDigitYear reports whether the layout carries a two-digit year.
func twoDigitYear(layout string) bool {
	return !strings.Contains(layout, "2006")
}

// rewindow overrides Go's 1969-2068 pivot for two-digit years with the
// statement convention: 00-49 are 2000s, 50-99 are 1900s.
func rewindow(t time.Time) time.Time {
	yy := t.Year() % 100
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
