package contact

import (
	"errors"
	"fmt"

	"github.com/tartampluch/contactbook/internal/config"
)

// Sentinel errors returned by record and book operations.
var (
	ErrNotFound          = errors.New(config.ErrContactNotFound)
	ErrPhoneNotFound     = errors.New(config.ErrPhoneNotFound)
	ErrEmailAlreadyUnset = errors.New(config.ErrEmailAlreadyUnset)
	ErrEmptyName         = errors.New(config.ErrEmptyName)

	// Field kinds of a ValidationError, usable with errors.Is.
	ErrInvalidPhone    = errors.New(config.ErrInvalidPhone)
	ErrInvalidBirthday = errors.New(config.ErrInvalidBirthday)
	ErrInvalidEmail    = errors.New(config.ErrInvalidEmail)
)

// ValidationError reports a malformed field value. Reason is meant for the
// user and names the violated constraint.
type ValidationError struct {
	Kind   error
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Value, e.Reason)
}

// Unwrap lets errors.Is match the field kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, value, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Value: value, Reason: reason}
}
