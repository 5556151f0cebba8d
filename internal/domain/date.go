package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when decoding upstream dates
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date is a calendar date. The month and year are the ones written in the
// source value, never shifted into the server time zone.
type Date struct {
	time.Time
}

// NewDate creates a Date at midnight UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD and the datetime forms the vehicle API emits
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return NewDate(y, m, d), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// InMonth reports whether the date falls in the given calendar month.
// The zero date never matches.
func (d Date) InMonth(month time.Month, year int) bool {
	if d.IsZero() {
		return false
	}
	return d.Month() == month && d.Year() == year
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(time.DateOnly))), nil
}

// UnmarshalJSON leaves the zero date for null or unparseable values so a
// single bad record does not fail a whole log listing.
func (d *Date) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == "" {
		*d = Date{}
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		*d = Date{}
		return nil
	}

	*d = parsed
	return nil
}
