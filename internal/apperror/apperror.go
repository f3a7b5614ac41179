package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

type AppError struct {
	Err     error             // sentinel error, checked with errors.Is
	Message string            // human-readable error message
	Fields  map[string]string // field → problem, set for validation errors
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record by its integer id.
func NotFound(resource string, id int) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

// NotFoundBy reports a missing record looked up by a named field,
// e.g. NotFoundBy("user", "username", "sarah").
func NotFoundBy(resource, field, value string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with %s %s", resource, field, value),
	}
}

// Validation carries an itemized set of field problems. HTTP handlers map it
// to a 400 with the fields echoed in the response body.
func Validation(message string, fields map[string]string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  fields,
	}
}

// ValidationField is the single-field convenience form of Validation.
func ValidationField(message, field, problem string) *AppError {
	return Validation(message, map[string]string{field: problem})
}

func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}
