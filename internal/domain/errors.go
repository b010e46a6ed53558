package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a post or author does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateTitle is returned when another post already uses the title.
	ErrDuplicateTitle = errors.New("a post with this title already exists")
	// ErrDuplicateSlug is returned when the derived slug is already taken.
	ErrDuplicateSlug = errors.New("a post with this url already exists")
	// ErrDuplicateEmail is returned when an author email is already registered.
	ErrDuplicateEmail = errors.New("an author with this email already exists")
	// ErrStorageUnavailable wraps transient backend failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the field errors in a stable order for display.
func (e *ValidationError) Messages() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e.Fields[k])
	}
	return msgs
}

// IsUserError reports whether err should be shown back to the form author
// rather than treated as a server fault.
func IsUserError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrDuplicateTitle) ||
		errors.Is(err, ErrDuplicateSlug)
}
