package jdate

import "time"

// Timestamp layouts in decreasing strictness. Offset- and zone-bearing
// layouts go first so that a looser layout never matches a prefix of a
// stricter input and silently drops its offset.
var timestampLayouts = []string{
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseDate parses s as a calendar date in the form "2006-01-02" and
// reports whether the entire input matched.
func ParseDate(s string) (Date, bool) {
	v, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, false
	}
	return NewDate(v.Year(), v.Month(), v.Day()), true
}

// ParseTimestamp parses s, trying each supported layout in order and
// taking the first that matches the entire input.
//
// The seconds component may carry a fractional part of up to microsecond
// precision. Inputs with an explicit offset are normalized to the
// zero-offset instant, so the returned value is independent of the
// textual offset used.
func ParseTimestamp(s string) (Timestamp, bool) {
	for _, layout := range timestampLayouts {
		v, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return ToTimestamp(v), true
	}
	return 0, false
}
