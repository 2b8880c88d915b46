package engine

import "time"

// Clock supplies the current instant. Birthday windows and calendar
// projection read "today" through it so tests can pin the date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar date of c.Now() at midnight UTC, the
// representation birthdays are stored in.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
