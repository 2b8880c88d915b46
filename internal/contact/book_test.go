package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contactbook/internal/contact"
)

func newBook(t *testing.T, names ...string) *contact.Book {
	t.Helper()
	b := contact.NewBook()
	for _, n := range names {
		b.Add(contact.NewRecord(n))
	}
	return b
}

func names(records []*contact.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestBook_AddFindDelete(t *testing.T) {
	b := newBook(t, "Bob", "Alice", "Carol")
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, names(b.All()), "Insertion order is preserved")

	r, ok := b.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", r.Name)

	_, ok = b.Find("alice")
	assert.False(t, ok, "Lookup is case-sensitive")

	// Overwrite keeps the original position.
	replacement := contact.NewRecord("Bob")
	b.Add(replacement)
	got, _ := b.Find("Bob")
	assert.Same(t, replacement, got)
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, names(b.All()))

	b.Delete("Alice")
	b.Delete("Nobody")
	_, ok = b.Find("Alice")
	assert.False(t, ok)
	assert.Equal(t, []string{"Bob", "Carol"}, names(b.All()))
}

func TestBook_Rename(t *testing.T) {
	b := newBook(t, "Alice", "Bob")
	alice, _ := b.Find("Alice")
	id := alice.ID

	require.NoError(t, b.Rename("Alice", "Alicia"))
	_, ok := b.Find("Alice")
	assert.False(t, ok)
	r, ok := b.Find("Alicia")
	require.True(t, ok)
	assert.Equal(t, "Alicia", r.Name)
	assert.Equal(t, id, r.ID, "Rename keeps the identity")

	assert.ErrorIs(t, b.Rename("Ghost", "Other"), contact.ErrNotFound)
	assert.ErrorIs(t, b.Rename("Bob", ""), contact.ErrEmptyName)
	require.NoError(t, b.Rename("Bob", "Bob"))
	assert.Equal(t, 2, b.Len())
}

func TestBook_RenameOntoExistingOverwrites(t *testing.T) {
	b := newBook(t, "Alice", "Bob")
	alice, _ := b.Find("Alice")

	require.NoError(t, b.Rename("Alice", "Bob"))
	assert.Equal(t, 1, b.Len())
	got, _ := b.Find("Bob")
	assert.Same(t, alice, got, "Existing record under the new name is replaced")
}

func TestBook_UpcomingBirthdays(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		want     bool
	}{
		{"Today", "15.06.1990", true},
		{"In seven days", "22.06.1990", true},
		{"In eight days", "23.06.1990", false},
		{"Yesterday rolls to next year", "14.06.1990", false},
		{"Earlier this year", "01.01.1990", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := contact.NewBook()
			r := contact.NewRecord("Person")
			require.NoError(t, r.SetBirthday(tt.birthday))
			b.Add(r)
			got := b.UpcomingBirthdays(now, 7)
			if tt.want {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestBook_UpcomingBirthdays_YearWrap(t *testing.T) {
	now := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	b := contact.NewBook()
	r := contact.NewRecord("NewYear")
	require.NoError(t, r.SetBirthday("02.01.1980"))
	b.Add(r)

	assert.Len(t, b.UpcomingBirthdays(now, 7), 1, "Jan 2 is 4 days after Dec 29")
	assert.Equal(t, 4, contact.DaysUntil(now, *r.Birthday))
}

func TestBook_UpcomingBirthdays_KeepsBookOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	b := contact.NewBook()
	for _, c := range []struct{ name, bday string }{
		{"Far", "21.06.1990"},
		{"NoBirthday", ""},
		{"Near", "16.06.1990"},
	} {
		r := contact.NewRecord(c.name)
		if c.bday != "" {
			require.NoError(t, r.SetBirthday(c.bday))
		}
		b.Add(r)
	}

	assert.Equal(t, []string{"Far", "Near"}, names(b.UpcomingBirthdays(now, 7)))
}

func TestNextOccurrence_Leapling(t *testing.T) {
	born := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	// Non-leap year: Feb 29 falls on March 1.
	now := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), contact.NextOccurrence(now, born))
	assert.Equal(t, 2, contact.DaysUntil(now, born))

	// Leap year keeps Feb 29.
	now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), contact.NextOccurrence(now, born))
}

func TestBook_Search(t *testing.T) {
	b := contact.NewBook()
	carol := contact.NewRecord("Carol")
	require.NoError(t, carol.AddPhone("380501234567"))
	require.NoError(t, carol.SetEmail("carol@example.com"))
	b.Add(carol)
	dave := contact.NewRecord("Dave")
	dave.SetNote("Plays chess")
	b.Add(dave)

	assert.Equal(t, []string{"Carol"}, names(b.Search("CAROL")))
	assert.Equal(t, []string{"Carol"}, names(b.Search("0501")))
	assert.Equal(t, []string{"Carol"}, names(b.Search("example")))
	assert.Equal(t, []string{"Dave"}, names(b.Search("chess")))
	assert.Empty(t, b.Search("zzz"))
}

func TestBook_Tags(t *testing.T) {
	b := contact.NewBook()
	a := contact.NewRecord("Alice")
	a.AddTags("work", "friends")
	b.Add(a)
	c := contact.NewRecord("Carol")
	c.AddTags("Work")
	b.Add(c)
	b.Add(contact.NewRecord("Dave"))

	assert.Equal(t, []string{"Alice", "Carol"}, names(b.SearchByTag("WORK")))
	assert.Equal(t, []string{"Alice"}, names(b.ContactsWithAllTags("work", "Friends")))
	assert.Empty(t, b.ContactsWithAllTags("work", "family"))
	assert.Equal(t, []string{"friends", "work"}, b.AllTags())
}

func TestBook_String(t *testing.T) {
	assert.Equal(t, "List is empty", contact.NewBook().String())
	b := newBook(t, "Alice")
	assert.Equal(t, "Contact name: Alice, phones: ", b.String())
}
