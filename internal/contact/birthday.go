package contact

import "time"

// NextOccurrence returns the next date, on or after the calendar day of now,
// on which birthDate recurs. The result is midnight UTC.
// time.Date normalizes Feb 29 to March 1 when the target year is not a leap year.
func NextOccurrence(now, birthDate time.Time) time.Time {
	today := truncateDay(now)
	candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// DaysUntil returns the number of days from now's calendar day to the next
// occurrence of birthDate.
func DaysUntil(now, birthDate time.Time) int {
	return int(NextOccurrence(now, birthDate).Sub(truncateDay(now)).Hours() / 24)
}

// truncateDay keeps the calendar date of t (in its own location) at UTC midnight.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
