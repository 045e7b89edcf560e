package aggregate

import (
	"strings"
	"time"
)

// InvalidMonth labels transactions whose date cannot be parsed.
const InvalidMonth = "Invalid Date"

// dateLayouts are tried in order when reading a transaction date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2006",
	"January 2006",
	"2006-01",
}

// ParseDate reads a user-supplied date string using the formats the entry
// form and API clients send.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthLabel formats t as "Mon YYYY".
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}
