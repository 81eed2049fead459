package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a list id does not exist.
	ErrNotFound = errors.New("not found")

	ErrTitleRequired     = errors.New("title is required")
	ErrTitleTooLong      = errors.New("task title is too long")
	ErrListTitleRequired = errors.New("list title is required")
)

// ValidationError rejects a command before any mutation happens.
type ValidationError struct {
	Field string // "task title" or "list title"
	Value string // raw input
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
