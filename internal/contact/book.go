package contact

import (
	"slices"
	"strings"
	"time"
)

// Book is the keyed collection of records. Iteration follows insertion order
// so listings are deterministic. Every key equals its record's Name.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts r under r.Name, replacing any record with the same name in place.
func (b *Book) Add(r *Record) {
	if _, ok := b.records[r.Name]; !ok {
		b.order = append(b.order, r.Name)
	}
	b.records[r.Name] = r
}

// Find looks a record up by exact, case-sensitive name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes name if present.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
}

// Rename re-keys the record stored under oldName. A record already stored
// under newName is overwritten.
func (b *Book) Rename(oldName, newName string) error {
	r, ok := b.records[oldName]
	if !ok {
		return ErrNotFound
	}
	if newName == "" {
		return ErrEmptyName
	}
	if oldName == newName {
		return nil
	}
	b.Delete(oldName)
	r.Rename(newName)
	b.Add(r)
	return nil
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.order)
}

// All returns the records in insertion order.
func (b *Book) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns the records whose next birthday falls within
// windowDays days of now, both ends inclusive. Results keep book order and
// are not sorted by proximity.
func (b *Book) UpcomingBirthdays(now time.Time, windowDays int) []*Record {
	var out []*Record
	for _, r := range b.All() {
		if r.Birthday == nil {
			continue
		}
		if days := DaysUntil(now, *r.Birthday); days >= 0 && days <= windowDays {
			out = append(out, r)
		}
	}
	return out
}

// Search returns records with query in any field, ignoring case.
func (b *Book) Search(query string) []*Record {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []*Record
	for _, r := range b.All() {
		if r.matches(query) {
			out = append(out, r)
		}
	}
	return out
}

// SearchByTag returns the records carrying tag.
func (b *Book) SearchByTag(tag string) []*Record {
	var out []*Record
	for _, r := range b.All() {
		if r.HasTag(tag) {
			out = append(out, r)
		}
	}
	return out
}

// ContactsWithAllTags returns the records carrying every one of tags.
func (b *Book) ContactsWithAllTags(tags ...string) []*Record {
	var out []*Record
	for _, r := range b.All() {
		all := true
		for _, t := range tags {
			if !r.HasTag(t) {
				all = false
				break
			}
		}
		if all {
			out = append(out, r)
		}
	}
	return out
}

// AllTags returns every tag in use, sorted.
func (b *Book) AllTags() []string {
	var tags []string
	for _, r := range b.All() {
		for _, t := range r.Tags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags
}

func (b *Book) String() string {
	if b.Len() == 0 {
		return "List is empty"
	}
	lines := make([]string, 0, b.Len())
	for _, r := range b.All() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
