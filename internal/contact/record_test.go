package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contactbook/internal/contact"
)

func TestNewRecord_AssignsID(t *testing.T) {
	a := contact.NewRecord("Alice")
	b := contact.NewRecord("Alice")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "Each record gets its own ID")
	assert.Equal(t, "Alice", a.Name)
}

func TestRecord_Phones(t *testing.T) {
	r := contact.NewRecord("John")
	require.NoError(t, r.AddPhone("123456789"))
	require.NoError(t, r.AddPhone("380501234567"))
	require.NoError(t, r.AddPhone("123456789"), "Duplicate add is a no-op")
	assert.Equal(t, []string{"123456789", "380501234567"}, r.Phones)

	// Invalid phone leaves the record untouched.
	assert.ErrorIs(t, r.AddPhone("12ab"), contact.ErrInvalidPhone)
	assert.Len(t, r.Phones, 2)

	// Edit keeps the position.
	require.NoError(t, r.EditPhone("123456789", "987654321"))
	assert.Equal(t, []string{"987654321", "380501234567"}, r.Phones)

	got, ok := r.FindPhone("987654321")
	assert.True(t, ok)
	assert.Equal(t, "987654321", got)
	_, ok = r.FindPhone("123456789")
	assert.False(t, ok)

	// Unknown old phone.
	assert.ErrorIs(t, r.EditPhone("000000000", "111111111"), contact.ErrPhoneNotFound)
	// Invalid new phone: no partial mutation.
	assert.ErrorIs(t, r.EditPhone("987654321", "1"), contact.ErrInvalidPhone)
	assert.Equal(t, []string{"987654321", "380501234567"}, r.Phones)

	// Editing onto an existing value does not duplicate it.
	require.NoError(t, r.EditPhone("987654321", "380501234567"))
	assert.Equal(t, []string{"380501234567"}, r.Phones)

	// Removal is tolerant.
	r.RemovePhone("000000000")
	assert.Len(t, r.Phones, 1)
	r.RemovePhone("380501234567")
	assert.Empty(t, r.Phones)
}

func TestRecord_Birthday(t *testing.T) {
	r := contact.NewRecord("Carol")
	require.NoError(t, r.SetBirthday("29.02.2024"))
	require.NotNil(t, r.Birthday)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *r.Birthday)

	// Failed validation keeps the previous birthday.
	assert.Error(t, r.SetBirthday("29.02.2023"))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *r.Birthday)

	require.NoError(t, r.SetBirthday("01.03.1990"))
	assert.Equal(t, time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC), *r.Birthday)
}

func TestRecord_Email(t *testing.T) {
	r := contact.NewRecord("Carol")
	assert.ErrorIs(t, r.RemoveEmail(), contact.ErrEmailAlreadyUnset)

	require.NoError(t, r.SetEmail("carol@example.com"))
	assert.ErrorIs(t, r.EditEmail("not-an-email"), contact.ErrInvalidEmail)
	assert.Equal(t, "carol@example.com", r.Email)

	require.NoError(t, r.EditEmail("carol@work.example"))
	assert.Equal(t, "carol@work.example", r.Email)

	require.NoError(t, r.RemoveEmail())
	assert.Empty(t, r.Email)
}

func TestRecord_AddressAndNote(t *testing.T) {
	r := contact.NewRecord("Carol")
	r.SetAddress("1 Main St")
	r.EditAddress("2 Side St")
	assert.Equal(t, "2 Side St", r.Address)
	r.RemoveAddress()
	assert.Empty(t, r.Address)

	r.SetNote("met at the conference")
	r.EditNote("call back on Monday")
	assert.Equal(t, "call back on Monday", r.Note)
	r.ClearNote()
	assert.Empty(t, r.Note)
}

func TestRecord_Tags(t *testing.T) {
	r := contact.NewRecord("Carol")
	r.AddTags("Work", "FRIENDS", "work", " ", "family")
	assert.Equal(t, []string{"work", "friends", "family"}, r.Tags)
	assert.True(t, r.HasTag("WORK"))

	r.RemoveTag("Friends")
	assert.Equal(t, []string{"work", "family"}, r.Tags)
	r.RemoveTag("absent")
	assert.Equal(t, []string{"work", "family"}, r.Tags)
}

func TestRecord_String(t *testing.T) {
	r := contact.NewRecord("Carol")
	require.NoError(t, r.AddPhone("380501234567"))
	assert.Equal(t, "Contact name: Carol, phones: 380501234567", r.String())

	require.NoError(t, r.SetBirthday("05.06.1990"))
	require.NoError(t, r.SetEmail("carol@example.com"))
	r.AddTags("vip")
	assert.Equal(t, "Contact name: Carol, phones: 380501234567, birthday: 05.06.1990, email: carol@example.com, tags: vip", r.String())
}
