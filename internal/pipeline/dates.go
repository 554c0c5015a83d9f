package pipeline

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when coercing free-text timestamps.
// The first layout is also the output format, so exported values re-parse
// stably on the next stage.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006/01/02",
}

// ParseDate leniently coerces a free-text timestamp to UTC. Unparsable
// values come back nil and are treated downstream as an absent milestone.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "nat") {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders a normalized timestamp for export, empty when absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
