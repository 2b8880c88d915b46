package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
)

const uidPrefix = "urn:uuid:"

// ExportVCards writes every record as a vCard 4.0 and returns the count.
func ExportVCards(w io.Writer, book *contact.Book) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0
	for _, r := range book.All() {
		if err := enc.Encode(toCard(r)); err != nil {
			return count, fmt.Errorf("%s: %s: %w", config.ErrVCardEncode, r.Name, err)
		}
		count++
	}
	return count, nil
}

func toCard(r *contact.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldUID, uidPrefix+r.ID)
	card.SetValue(vcard.FieldFormattedName, r.Name)
	for _, p := range r.Phones {
		card.AddValue(vcard.FieldTelephone, p)
	}
	if r.Birthday != nil {
		card.SetValue(vcard.FieldBirthday, r.Birthday.Format(config.DateFormatFullDash))
	}
	if r.Email != "" {
		card.SetValue(vcard.FieldEmail, r.Email)
	}
	if r.Address != "" {
		card.AddAddress(&vcard.Address{StreetAddress: r.Address})
	}
	if r.Note != "" {
		card.SetValue(vcard.FieldNote, r.Note)
	}
	for _, t := range r.Tags {
		card.AddValue(vcard.FieldCategories, t)
	}
	return card
}

// ImportVCards merges the cards read from r into book and returns the
// number of contacts created or updated. A stream the decoder rejects fails
// the import before any contact is touched; nameless cards and invalid
// fields are skipped with a warning.
func ImportVCards(r io.Reader, book *contact.Book) (int, error) {
	// Decode the whole stream first so a broken card leaves the book as it was.
	decoder := vcard.NewDecoder(r)
	var cards []vcard.Card
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		cards = append(cards, card)
	}

	stats := struct{ processed, imported int }{processed: len(cards)}
	for _, card := range cards {
		name := cardName(card)
		if name == "" {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, contact.ErrEmptyName)
			continue
		}

		rec, ok := book.Find(name)
		if !ok {
			rec = contact.NewRecord(name)
			if id, err := uuid.Parse(strings.TrimPrefix(card.Value(vcard.FieldUID), uidPrefix)); err == nil {
				rec.ID = id.String()
			}
		}
		mergeCard(rec, card)
		book.Add(rec)
		stats.imported++
	}

	slog.Info(config.MsgVCardImported,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyTotal, stats.processed,
		config.LogKeyImported, stats.imported,
	)
	return stats.imported, nil
}

// cardName picks FN, then N. Whitespace runs become underscores so the
// name stays a single console token.
func cardName(card vcard.Card) string {
	name := card.Value(vcard.FieldFormattedName)
	if name == "" {
		if n := card.Name(); n != nil {
			name = strings.TrimSpace(n.GivenName + " " + n.FamilyName)
		}
	}
	return strings.Join(strings.Fields(name), "_")
}

// mergeCard copies the card fields onto rec; fields the card lacks keep
// their current value.
func mergeCard(rec *contact.Record, card vcard.Card) {
	for _, tel := range card.Values(vcard.FieldTelephone) {
		if err := rec.AddPhone(digitsOnly(tel)); err != nil {
			logSkippedField(rec.Name, vcard.FieldTelephone, err)
		}
	}

	if raw := card.Value(vcard.FieldBirthday); raw != "" {
		bday, yearKnown, err := parseDate(raw)
		switch {
		case err != nil:
			logSkippedField(rec.Name, vcard.FieldBirthday, err)
		case !yearKnown:
			logSkippedField(rec.Name, vcard.FieldBirthday, errors.New(config.ReasonYearDigits))
		default:
			if err := rec.SetBirthday(contact.FormatBirthday(bday)); err != nil {
				logSkippedField(rec.Name, vcard.FieldBirthday, err)
			}
		}
	}

	if email := card.Value(vcard.FieldEmail); email != "" {
		if err := rec.SetEmail(email); err != nil {
			logSkippedField(rec.Name, vcard.FieldEmail, err)
		}
	}

	if addr := card.Address(); addr != nil {
		if text := formatAddress(addr); text != "" {
			rec.SetAddress(text)
		}
	}

	if note := card.Value(vcard.FieldNote); note != "" {
		rec.SetNote(note)
	}

	for _, v := range card.Values(vcard.FieldCategories) {
		rec.AddTags(strings.Split(v, ",")...)
	}
}

func formatAddress(a *vcard.Address) string {
	var parts []string
	for _, p := range []string{a.PostOfficeBox, a.ExtendedAddress, a.StreetAddress, a.Locality, a.Region, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func logSkippedField(name, field string, err error) {
	slog.Warn(config.MsgSkippedField,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name,
		config.LogKeyKey, field,
		config.LogKeyError, err)
}

// parseDate handles the vCard date formats. The boolean reports whether
// the year is known.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (Year unknown) - vCard specific
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
