package engine

import (
	"time"

	"github.com/tartampluch/contactbook/internal/contact"
)

// BirthdayEntry is a read-only view of a contact's birthday, ready for
// listing. It decouples the console from the record type.
type BirthdayEntry struct {
	// UID is the record ID.
	UID string

	Name string

	// DateOfBirth is the stored birthday.
	DateOfBirth time.Time

	// NextOccurrence is the birthday in the current or next year.
	NextOccurrence time.Time

	// DaysUntil counts days from today to NextOccurrence (0 = today).
	DaysUntil int

	// AgeNext is the age the person will turn at NextOccurrence.
	AgeNext int
}

func newBirthdayEntry(now time.Time, r *contact.Record) BirthdayEntry {
	next := contact.NextOccurrence(now, *r.Birthday)
	return BirthdayEntry{
		UID:            r.ID,
		Name:           r.Name,
		DateOfBirth:    *r.Birthday,
		NextOccurrence: next,
		DaysUntil:      contact.DaysUntil(now, *r.Birthday),
		AgeNext:        next.Year() - r.Birthday.Year(),
	}
}

// Upcoming lists the birthdays due within windowDays, in book order.
func Upcoming(book *contact.Book, now time.Time, windowDays int) []BirthdayEntry {
	var out []BirthdayEntry
	for _, r := range book.UpcomingBirthdays(now, windowDays) {
		out = append(out, newBirthdayEntry(now, r))
	}
	return out
}
