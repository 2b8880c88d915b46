package contact

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one contact. Name uniqueness is enforced by Book, not here.
// Empty Email, Address and Note mean "not set".
type Record struct {
	// ID is stable across renames and is used as the vCard/iCal UID.
	ID       string
	Name     string
	Phones   []string
	Birthday *time.Time
	Email    string
	Address  string
	Note     string
	// Tags are lower-cased and unique, kept in insertion order.
	Tags []string
}

// NewRecord creates an empty contact with a fresh ID.
func NewRecord(name string) *Record {
	return &Record{ID: uuid.NewString(), Name: name}
}

// AddPhone validates raw and appends it. Adding a phone that is already
// stored is a no-op.
func (r *Record) AddPhone(raw string) error {
	phone, err := ValidatePhone(raw)
	if err != nil {
		return err
	}
	if !slices.Contains(r.Phones, phone) {
		r.Phones = append(r.Phones, phone)
	}
	return nil
}

// RemovePhone deletes value if present; removing an unknown phone is a no-op.
func (r *Record) RemovePhone(value string) {
	r.Phones = slices.DeleteFunc(r.Phones, func(p string) bool { return p == value })
}

// EditPhone replaces old by next, keeping its position.
func (r *Record) EditPhone(old, next string) error {
	i := slices.Index(r.Phones, old)
	if i < 0 {
		return ErrPhoneNotFound
	}
	phone, err := ValidatePhone(next)
	if err != nil {
		return err
	}
	if old != phone && slices.Contains(r.Phones, phone) {
		// The new value is already stored: drop the old entry instead of
		// duplicating it.
		r.Phones = slices.Delete(r.Phones, i, i+1)
		return nil
	}
	r.Phones[i] = phone
	return nil
}

// FindPhone returns value if the record stores it.
func (r *Record) FindPhone(value string) (string, bool) {
	if slices.Contains(r.Phones, value) {
		return value, true
	}
	return "", false
}

// SetBirthday validates a DD.MM.YYYY date and overwrites any existing one.
func (r *Record) SetBirthday(raw string) error {
	bday, err := ValidateBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = &bday
	return nil
}

// SetEmail validates and overwrites the email.
func (r *Record) SetEmail(raw string) error {
	if err := CheckEmail(raw); err != nil {
		return err
	}
	r.Email = raw
	return nil
}

// EditEmail is SetEmail; both overwrite.
func (r *Record) EditEmail(raw string) error {
	return r.SetEmail(raw)
}

// RemoveEmail clears the email, failing when none is set.
func (r *Record) RemoveEmail() error {
	if r.Email == "" {
		return ErrEmailAlreadyUnset
	}
	r.Email = ""
	return nil
}

func (r *Record) SetAddress(text string)  { r.Address = text }
func (r *Record) EditAddress(text string) { r.Address = text }
func (r *Record) RemoveAddress()          { r.Address = "" }

func (r *Record) SetNote(text string)  { r.Note = text }
func (r *Record) EditNote(text string) { r.Note = text }
func (r *Record) ClearNote()           { r.Note = "" }

// AddTags lower-cases tags and merges them into the tag set.
func (r *Record) AddTags(tags ...string) {
	for _, t := range tags {
		t = normalizeTag(t)
		if t != "" && !slices.Contains(r.Tags, t) {
			r.Tags = append(r.Tags, t)
		}
	}
}

// RemoveTag deletes tag case-insensitively; unknown tags are ignored.
func (r *Record) RemoveTag(tag string) {
	tag = normalizeTag(tag)
	r.Tags = slices.DeleteFunc(r.Tags, func(t string) bool { return t == tag })
}

// HasTag reports whether the record carries tag, ignoring case.
func (r *Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, normalizeTag(tag))
}

// Rename changes the name field only. Use Book.Rename to re-key the book.
func (r *Record) Rename(newName string) {
	r.Name = newName
}

// String renders the record on one line.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Contact name: ")
	b.WriteString(r.Name)
	b.WriteString(", phones: ")
	b.WriteString(strings.Join(r.Phones, "; "))
	if r.Birthday != nil {
		b.WriteString(", birthday: ")
		b.WriteString(FormatBirthday(*r.Birthday))
	}
	if r.Email != "" {
		b.WriteString(", email: ")
		b.WriteString(r.Email)
	}
	if r.Address != "" {
		b.WriteString(", address: ")
		b.WriteString(r.Address)
	}
	if r.Note != "" {
		b.WriteString(", note: ")
		b.WriteString(r.Note)
	}
	if len(r.Tags) > 0 {
		b.WriteString(", tags: ")
		b.WriteString(strings.Join(r.Tags, ", "))
	}
	return b.String()
}

// matches reports whether query (already lower-cased) occurs in any field.
func (r *Record) matches(query string) bool {
	fields := []string{r.Name, r.Email, r.Address, r.Note}
	fields = append(fields, r.Phones...)
	fields = append(fields, r.Tags...)
	if r.Birthday != nil {
		fields = append(fields, FormatBirthday(*r.Birthday))
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
