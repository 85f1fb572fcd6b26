package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrDuplicate    = errors.New("duplicate")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// DuplicateError rejects an add or edit whose URL is already taken by a
// custom or built-in site. State is left untouched.
type DuplicateError struct {
	URL string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("url already saved: %s", e.URL)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// NotFoundError indicates the referenced site or pending action is gone.
type NotFoundError struct {
	Resource string // "site", "pending deletion"
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates unusable input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func siteNotFound(url string) error {
	return &NotFoundError{Resource: "site", ID: url}
}

func emptyField(field string) error {
	return &ValidationError{Field: field, Message: "cannot be empty"}
}

// IsDuplicate checks if an error is a duplicate-url rejection.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
