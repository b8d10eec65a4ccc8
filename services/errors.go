package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("only the author can modify the recipe")
	ErrSelfSubscribe      = errors.New("can not subscribe to yourself")
)

// ConflictError covers duplicate-add / missing-remove membership failures.
// The message goes to the client verbatim in an {"errors": ...} body.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// FieldError is a validation failure attributed to a single payload field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

func Fieldf(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}
