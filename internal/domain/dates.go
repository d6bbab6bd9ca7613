package domain

import (
	"math"
	"time"
)

// DateLayout is the ISO 8601 calendar-date format used for every external
// exchange of item dates.
const DateLayout = "2006-01-02"

// Day is the length of one calendar day. Item dates carry no time of day, so
// every date arithmetic in the timeline is a whole multiple of it.
const Day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MustParseDate is ParseDate for literals known to be valid. It panics on
// malformed input.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of days from start to end, rounded up to a
// whole day. It is negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	return TruncateDay(time.Now())
}

// TruncateDay drops the time-of-day component of t, interpreting it in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
