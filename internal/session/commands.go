package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
	"github.com/tartampluch/contactbook/internal/engine"
)

// CommandKind enumerates every command the console understands.
type CommandKind int

const (
	CmdHello CommandKind = iota
	CmdHelp
	CmdAdd
	CmdChange
	CmdPhone
	CmdRemovePhone
	CmdShow
	CmdSearch
	CmdAll
	CmdDelete
	CmdRename
	CmdAddBirthday
	CmdShowBirthday
	CmdBirthdays
	CmdAddEmail
	CmdEditEmail
	CmdRemoveEmail
	CmdAddAddress
	CmdEditAddress
	CmdRemoveAddress
	CmdAddNote
	CmdEditNote
	CmdRemoveNote
	CmdAddTag
	CmdRemoveTag
	CmdFindTag
	CmdFindTags
	CmdTags
	CmdExportVCard
	CmdImportVCard
	CmdExportCalendar
	CmdExit
)

// handler runs a command whose argument count has been checked and returns
// the message to print.
type handler func(s *Session, args []string) (string, error)

type command struct {
	kind    CommandKind
	name    string
	minArgs int
	usage   string
	run     handler
}

// commandTable lists the commands in help order. Keywords are unique.
func commandTable() []*command {
	return []*command{
		{CmdHello, "hello", 0, "hello", runHello},
		{CmdHelp, "help", 0, "help", runHelp},
		{CmdAdd, "add", 2, "add <name> <phone>", runAdd},
		{CmdChange, "change", 3, "change <name> <old phone> <new phone>", runChange},
		{CmdPhone, "phone", 1, "phone <name>", runPhone},
		{CmdRemovePhone, "remove-phone", 2, "remove-phone <name> <phone>", runRemovePhone},
		{CmdShow, "show", 1, "show <name>", runShow},
		{CmdSearch, "search", 1, "search <text>", runSearch},
		{CmdAll, "all", 0, "all", runAll},
		{CmdDelete, "delete", 1, "delete <name>", runDelete},
		{CmdRename, "rename", 2, "rename <name> <new name>", runRename},
		{CmdAddBirthday, "add-birthday", 2, "add-birthday <name> <DD.MM.YYYY>", runAddBirthday},
		{CmdShowBirthday, "show-birthday", 1, "show-birthday <name>", runShowBirthday},
		{CmdBirthdays, "birthdays", 0, "birthdays [days]", runBirthdays},
		{CmdAddEmail, "add-email", 2, "add-email <name> <email>", runSetEmail},
		{CmdEditEmail, "edit-email", 2, "edit-email <name> <email>", runEditEmail},
		{CmdRemoveEmail, "remove-email", 1, "remove-email <name>", runRemoveEmail},
		{CmdAddAddress, "add-address", 2, "add-address <name> <address...>", runAddAddress},
		{CmdEditAddress, "edit-address", 2, "edit-address <name> <address...>", runEditAddress},
		{CmdRemoveAddress, "remove-address", 1, "remove-address <name>", runRemoveAddress},
		{CmdAddNote, "add-note", 2, "add-note <name> <text...>", runAddNote},
		{CmdEditNote, "edit-note", 2, "edit-note <name> <text...>", runEditNote},
		{CmdRemoveNote, "remove-note", 1, "remove-note <name>", runRemoveNote},
		{CmdAddTag, "add-tag", 2, "add-tag <name> <tag...>", runAddTag},
		{CmdRemoveTag, "remove-tag", 2, "remove-tag <name> <tag>", runRemoveTag},
		{CmdFindTag, "find-tag", 1, "find-tag <tag>", runFindTag},
		{CmdFindTags, "find-tags", 1, "find-tags <tag...>", runFindTags},
		{CmdTags, "tags", 0, "tags", runTags},
		{CmdExportVCard, "export-vcard", 1, "export-vcard <file>", runExportVCard},
		{CmdImportVCard, "import-vcard", 1, "import-vcard <file>", runImportVCard},
		{CmdExportCalendar, "export-calendar", 1, "export-calendar <file>", runExportCalendar},
		{CmdExit, "exit", 0, "exit", nil},
		{CmdExit, "close", 0, "close", nil},
	}
}

// -----------------------------------------------------------------------------
// Lookup helpers
// -----------------------------------------------------------------------------

func (s *Session) existing(name string) (*contact.Record, error) {
	r, ok := s.book.Find(name)
	if !ok {
		return nil, contact.ErrNotFound
	}
	return r, nil
}

// upsert applies fn to the named contact, creating it when missing. A new
// contact is only stored when fn succeeds.
func (s *Session) upsert(name string, fn func(r *contact.Record) error) (bool, error) {
	r, ok := s.book.Find(name)
	if !ok {
		r = contact.NewRecord(name)
	}
	if err := fn(r); err != nil {
		return false, err
	}
	if !ok {
		s.book.Add(r)
	}
	return !ok, nil
}

// edit applies fn to an existing contact.
func (s *Session) edit(name string, fn func(r *contact.Record) error) error {
	r, err := s.existing(name)
	if err != nil {
		return err
	}
	return fn(r)
}

func (s *Session) listRecords(records []*contact.Record, query string) string {
	if len(records) == 0 {
		return s.t(config.TKeyNoResults, map[string]any{"Query": query})
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func rest(args []string) string {
	return strings.Join(args[1:], " ")
}

// -----------------------------------------------------------------------------
// General
// -----------------------------------------------------------------------------

func runHello(s *Session, _ []string) (string, error) {
	return s.t(config.TKeyHello, nil), nil
}

func runHelp(s *Session, _ []string) (string, error) {
	var b strings.Builder
	b.WriteString(s.styles.header.Render(s.t(config.TKeyHelpHeader, nil)))
	for _, c := range s.ordered {
		b.WriteString("\n  ")
		b.WriteString(c.usage)
	}
	return b.String(), nil
}

// -----------------------------------------------------------------------------
// Contacts & phones
// -----------------------------------------------------------------------------

func runAdd(s *Session, args []string) (string, error) {
	name, phone := args[0], args[1]
	created, err := s.upsert(name, func(r *contact.Record) error {
		return r.AddPhone(phone)
	})
	if err != nil {
		return "", err
	}
	data := map[string]any{"Name": name, "Phone": phone}
	if created {
		return s.t(config.TKeyContactAdded, data), nil
	}
	return s.t(config.TKeyPhoneAdded, data), nil
}

func runChange(s *Session, args []string) (string, error) {
	name, old, next := args[0], args[1], args[2]
	err := s.edit(name, func(r *contact.Record) error {
		return r.EditPhone(old, next)
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyPhoneChanged, map[string]any{"Name": name, "Old": old, "New": next}), nil
}

func runPhone(s *Session, args []string) (string, error) {
	r, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	if len(r.Phones) == 0 {
		return s.t(config.TKeyNoPhones, map[string]any{"Name": r.Name}), nil
	}
	return s.t(config.TKeyPhoneList, map[string]any{"Name": r.Name, "Phones": strings.Join(r.Phones, "; ")}), nil
}

func runRemovePhone(s *Session, args []string) (string, error) {
	name, phone := args[0], args[1]
	err := s.edit(name, func(r *contact.Record) error {
		r.RemovePhone(phone)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyPhoneRemoved, map[string]any{"Name": name, "Phone": phone}), nil
}

func runShow(s *Session, args []string) (string, error) {
	r, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func runSearch(s *Session, args []string) (string, error) {
	query := strings.Join(args, " ")
	return s.listRecords(s.book.Search(query), query), nil
}

func runAll(s *Session, _ []string) (string, error) {
	if s.book.Len() == 0 {
		return s.t(config.TKeyBookEmpty, nil), nil
	}
	return s.renderTable(s.book.All()), nil
}

func runDelete(s *Session, args []string) (string, error) {
	if _, err := s.existing(args[0]); err != nil {
		return "", err
	}
	s.book.Delete(args[0])
	return s.t(config.TKeyContactDeleted, map[string]any{"Name": args[0]}), nil
}

func runRename(s *Session, args []string) (string, error) {
	if err := s.book.Rename(args[0], args[1]); err != nil {
		return "", err
	}
	return s.t(config.TKeyContactRenamed, map[string]any{"Old": args[0], "New": args[1]}), nil
}

// -----------------------------------------------------------------------------
// Birthdays
// -----------------------------------------------------------------------------

func runAddBirthday(s *Session, args []string) (string, error) {
	name := args[0]
	var bday string
	_, err := s.upsert(name, func(r *contact.Record) error {
		if err := r.SetBirthday(args[1]); err != nil {
			return err
		}
		bday = contact.FormatBirthday(*r.Birthday)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyBirthdayAdded, map[string]any{"Name": name, "Birthday": bday}), nil
}

func runShowBirthday(s *Session, args []string) (string, error) {
	r, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	if r.Birthday == nil {
		return s.t(config.TKeyBirthdayNotSet, map[string]any{"Name": r.Name}), nil
	}
	return s.t(config.TKeyBirthdayShow, map[string]any{
		"Name":     r.Name,
		"Birthday": contact.FormatBirthday(*r.Birthday),
	}), nil
}

func runBirthdays(s *Session, args []string) (string, error) {
	days := s.window
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return s.t(config.TKeyInvalidDays, nil), nil
		}
		days = n
	}

	entries := engine.Upcoming(s.book, engine.Today(s.clock), days)
	if len(entries) == 0 {
		return s.t(config.TKeyNoUpcoming, map[string]any{"Days": days}), nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = s.t(config.TKeyUpcomingLine, map[string]any{
			"Name":     e.Name,
			"Birthday": contact.FormatBirthday(e.NextOccurrence),
			"Days":     e.DaysUntil,
		})
	}
	return strings.Join(lines, "\n"), nil
}

// -----------------------------------------------------------------------------
// Email, address, note
// -----------------------------------------------------------------------------

func runSetEmail(s *Session, args []string) (string, error) {
	name, email := args[0], args[1]
	if _, err := s.upsert(name, func(r *contact.Record) error { return r.SetEmail(email) }); err != nil {
		return "", err
	}
	return s.t(config.TKeyEmailSet, map[string]any{"Name": name, "Email": email}), nil
}

func runEditEmail(s *Session, args []string) (string, error) {
	name, email := args[0], args[1]
	if err := s.edit(name, func(r *contact.Record) error { return r.EditEmail(email) }); err != nil {
		return "", err
	}
	return s.t(config.TKeyEmailSet, map[string]any{"Name": name, "Email": email}), nil
}

func runRemoveEmail(s *Session, args []string) (string, error) {
	if err := s.edit(args[0], (*contact.Record).RemoveEmail); err != nil {
		return "", err
	}
	return s.t(config.TKeyEmailRemoved, map[string]any{"Name": args[0]}), nil
}

func runAddAddress(s *Session, args []string) (string, error) {
	text := rest(args)
	_, err := s.upsert(args[0], func(r *contact.Record) error {
		r.SetAddress(text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyAddressSet, map[string]any{"Name": args[0]}), nil
}

func runEditAddress(s *Session, args []string) (string, error) {
	text := rest(args)
	err := s.edit(args[0], func(r *contact.Record) error {
		r.EditAddress(text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyAddressSet, map[string]any{"Name": args[0]}), nil
}

func runRemoveAddress(s *Session, args []string) (string, error) {
	err := s.edit(args[0], func(r *contact.Record) error {
		r.RemoveAddress()
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyAddressRemoved, map[string]any{"Name": args[0]}), nil
}

func runAddNote(s *Session, args []string) (string, error) {
	text := rest(args)
	_, err := s.upsert(args[0], func(r *contact.Record) error {
		r.SetNote(text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyNoteSet, map[string]any{"Name": args[0]}), nil
}

func runEditNote(s *Session, args []string) (string, error) {
	text := rest(args)
	err := s.edit(args[0], func(r *contact.Record) error {
		r.EditNote(text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyNoteSet, map[string]any{"Name": args[0]}), nil
}

func runRemoveNote(s *Session, args []string) (string, error) {
	err := s.edit(args[0], func(r *contact.Record) error {
		r.ClearNote()
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyNoteRemoved, map[string]any{"Name": args[0]}), nil
}

// -----------------------------------------------------------------------------
// Tags
// -----------------------------------------------------------------------------

func runAddTag(s *Session, args []string) (string, error) {
	tags := args[1:]
	_, err := s.upsert(args[0], func(r *contact.Record) error {
		r.AddTags(tags...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyTagsAdded, map[string]any{"Name": args[0], "Tags": strings.Join(tags, ", ")}), nil
}

func runRemoveTag(s *Session, args []string) (string, error) {
	err := s.edit(args[0], func(r *contact.Record) error {
		r.RemoveTag(args[1])
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyTagRemoved, map[string]any{"Name": args[0], "Tag": args[1]}), nil
}

func runFindTag(s *Session, args []string) (string, error) {
	return s.listRecords(s.book.SearchByTag(args[0]), args[0]), nil
}

func runFindTags(s *Session, args []string) (string, error) {
	return s.listRecords(s.book.ContactsWithAllTags(args...), strings.Join(args, " ")), nil
}

func runTags(s *Session, _ []string) (string, error) {
	tags := s.book.AllTags()
	if len(tags) == 0 {
		return s.t(config.TKeyNoTags, nil), nil
	}
	return s.t(config.TKeyTagList, map[string]any{"Tags": strings.Join(tags, ", ")}), nil
}

// -----------------------------------------------------------------------------
// Interchange
// -----------------------------------------------------------------------------

func runExportVCard(s *Session, args []string) (string, error) {
	path := strings.Join(args, " ")
	n, err := writeFile(path, func(f *os.File) (int, error) {
		return engine.ExportVCards(f, s.book)
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyVCardExported, map[string]any{"Count": n, "Path": path}), nil
}

func runImportVCard(s *Session, args []string) (string, error) {
	path := strings.Join(args, " ")
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	n, err := engine.ImportVCards(f, s.book)
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyVCardImported, map[string]any{"Count": n, "Path": path}), nil
}

func runExportCalendar(s *Session, args []string) (string, error) {
	path := strings.Join(args, " ")
	gen := &engine.Generator{
		Clock: s.clock,
		FormatSummary: func(name string, age int) string {
			return s.t(config.TKeyCalendarSummary, map[string]any{"Name": name, "Age": age})
		},
	}
	n, err := writeFile(path, func(f *os.File) (int, error) {
		return gen.WriteCalendar(f, s.book)
	})
	if err != nil {
		return "", err
	}
	return s.t(config.TKeyCalendarExported, map[string]any{"Count": n, "Path": path}), nil
}

// writeFile creates path with owner-only permissions and runs fn on it.
func writeFile(path string, fn func(f *os.File) (int, error)) (n int, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePermUserRW)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return fn(f)
}
