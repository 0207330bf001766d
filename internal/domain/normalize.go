package domain

import (
	"strings"
	"time"
)

// NormalizeDate converts t to UTC and truncates it to midnight.
// Used for every per-calendar-day field (record and purchase dates).
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeOptional trims s and returns nil for a nil or blank value.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeSearchQuery trims an autocomplete query and compresses inner
// whitespace. An empty result means "match nothing".
func NormalizeSearchQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
