package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

var flexibleLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	layoutDate,
	"2006-01-02 15:04:05",
}

// ParseFlexibleDate accepts the date shapes clients actually send
// (RFC 3339 with or without fractional seconds, plain YYYY-MM-DD).
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range flexibleLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// NormalizeDate rewrites a parsable date string into canonical RFC 3339
// UTC form. Unparsable or empty input is returned unchanged; the stores
// never raise on malformed snapshots.
func NormalizeDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := ParseFlexibleDate(s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatHumanDate renders RFC 3339 input as "January 02, 2006" for the
// printed documents. Falls back to the raw string.
func FormatHumanDate(s string) string {
	t, err := ParseFlexibleDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 02, 2006")
}

// BoardingTime subtracts one hour from an "HH:MM" departure string.
// Returns the fallback when the input does not parse.
func BoardingTime(departure, fallback string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(departure))
	if err != nil {
		return fallback
	}
	return t.Add(-time.Hour).Format("15:04")
}
