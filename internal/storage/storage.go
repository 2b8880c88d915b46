// Package storage persists the address book as a single YAML document.
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
)

const formatVersion = 1

type document struct {
	Version  int          `yaml:"version"`
	Contacts []contactDoc `yaml:"contacts"`
}

type contactDoc struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"` // DD.MM.YYYY
	Email    string   `yaml:"email,omitempty"`
	Address  string   `yaml:"address,omitempty"`
	Note     string   `yaml:"note,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// FileStore reads and writes the address book at Path.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the book. A missing file yields an empty book and no error.
func (s *FileStore) Load() (*contact.Book, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info(config.MsgBookMissing,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyFile, s.Path)
		return contact.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLoadBook, err)
	}

	book, err := Decode(data)
	if err != nil {
		return nil, err
	}
	slog.Info(config.MsgBookLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, book.Len())
	return book, nil
}

// Quarantine renames an unreadable book file to <path>.corrupt-<unix> so a
// later Save cannot overwrite it, and returns the new location.
func (s *FileStore) Quarantine(now time.Time) (string, error) {
	backup := fmt.Sprintf(config.FormatCorruptPath, s.Path, now.Unix())
	if err := os.Rename(s.Path, backup); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrQuarantine, err)
	}
	slog.Warn(config.MsgBookQuarantine,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyBackup, backup)
	return backup, nil
}

// Save writes the book atomically: a temporary file in the same directory
// is renamed over Path.
func (s *FileStore) Save(book *contact.Book) error {
	data, err := Encode(book)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, book.Len())
	return nil
}

// Encode serializes the whole book, keeping its order.
func Encode(book *contact.Book) ([]byte, error) {
	doc := document{Version: formatVersion, Contacts: []contactDoc{}}
	for _, r := range book.All() {
		d := contactDoc{
			ID:      r.ID,
			Name:    r.Name,
			Phones:  r.Phones,
			Email:   r.Email,
			Address: r.Address,
			Note:    r.Note,
			Tags:    r.Tags,
		}
		if r.Birthday != nil {
			d.Birthday = contact.FormatBirthday(*r.Birthday)
		}
		doc.Contacts = append(doc.Contacts, d)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrEncodeBook, err)
	}
	return data, nil
}

// Decode rebuilds a book from Encode's output. Records without an ID get
// a new one; invalid phones, emails or birthdays reject the whole file.
func Decode(data []byte) (*contact.Book, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDecodeBook, err)
	}

	book := contact.NewBook()
	for _, d := range doc.Contacts {
		if d.Name == "" {
			return nil, fmt.Errorf("%s: %w", config.ErrDecodeBook, contact.ErrEmptyName)
		}
		// Fields go through the record's setters so a hand-edited file
		// obeys the same rules as console input.
		r := &contact.Record{
			ID:      d.ID,
			Name:    d.Name,
			Address: d.Address,
			Note:    d.Note,
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		for _, p := range d.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", config.ErrDecodeBook, d.Name, err)
			}
		}
		if d.Email != "" {
			if err := r.SetEmail(d.Email); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", config.ErrDecodeBook, d.Name, err)
			}
		}
		if d.Birthday != "" {
			if err := r.SetBirthday(d.Birthday); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", config.ErrDecodeBook, d.Name, err)
			}
		}
		r.AddTags(d.Tags...)
		book.Add(r)
	}
	return book, nil
}
