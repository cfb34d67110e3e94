package timeutil

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate accepts a calendar date alone or with a time-of-day suffix.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &time.ParseError{
		Value:   s,
		Message: "unable to parse date string",
	}
}

// CompactDate renders a date as yyyymmdd. Unparseable input just loses its dashes.
func CompactDate(s string) string {
	if t, err := ParseDate(s); err == nil {
		return t.Format("20060102")
	}
	return strings.ReplaceAll(s, "-", "")
}

// LocalDateTime joins a date and an "hh:mm" clock time the way itineraries
// are displayed, without a zone: 2024-05-01T08:10.
func LocalDateTime(date, clock string) string {
	return date + "T" + clock
}
