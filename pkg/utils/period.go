package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// ParseMonthYear reads month (1-12) and year query values. Empty values
// fall back to the reference time.
func ParseMonthYear(monthStr, yearStr string, ref time.Time) (time.Month, int, error) {
	month := ref.Month()
	year := ref.Year()

	if s := strings.TrimSpace(monthStr); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, ErrInvalidPeriod
		}
		month = time.Month(m)
	}

	if s := strings.TrimSpace(yearStr); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, ErrInvalidPeriod
		}
		year = y
	}

	return month, year, nil
}

// ParseBoundedInt parses s, returning def when empty and an error when the
// value falls outside [min, max].
func ParseBoundedInt(s string, def, min, max int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, ErrInvalidPeriod
	}
	return n, nil
}

// ParseIntList parses a comma separated list of positive integers
func ParseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, errors.New("invalid id " + strconv.Quote(part))
		}
		out = append(out, n)
	}
	return out, nil
}
