// utils/dates.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// DayFormat is the calendar-day identifier used for effective dates.
const DayFormat = "2006-01-02"

// ErrBadDate marks a date string that is not a valid YYYY-MM-DD day.
var ErrBadDate = errors.New("invalid date")

// ParseDay parses a YYYY-MM-DD day identifier into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrBadDate, s)
	}
	return t.UTC(), nil
}

// DayOf truncates a time to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
