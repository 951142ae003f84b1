package domain

import (
	"errors"
	"strings"
)

// Error kinds. Every error the core returns to a handler unwraps to one of
// these so the transport can pick a status code with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
)

// Error is a classified failure with the message shown to the client.
// Fields, when set, carries per-field validation messages.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrNotAuthenticated   = newError(ErrUnauthorized, "Unauthorized")
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid credentials")
	ErrAccessDenied       = newError(ErrForbidden, "Forbidden")
	ErrInvalidJSON        = newError(ErrBadRequest, "Invalid JSON")
	ErrInvalidBirthDate   = newError(ErrBadRequest, "Invalid birthDate format, expected YYYY-MM-DD")
	ErrBreedReference     = newError(ErrBadRequest, "Breed not found")
	ErrValueTooLong       = newError(ErrBadRequest, "Value too long")
	ErrEmailTaken         = newError(ErrConflict, "Email already in use")
	ErrBreedInUse         = newError(ErrConflict, "Breed is still referenced by pets")

	ErrUserNotFound    = newError(ErrNotFound, "User not found")
	ErrAddressNotFound = newError(ErrNotFound, "Address not found or forbidden")
	ErrBreedNotFound   = newError(ErrNotFound, "Breed not found")
	ErrPetNotFound     = newError(ErrNotFound, "Pet not found")
)

// MissingFields reports required fields absent from a create payload.
func MissingFields(names ...string) *Error {
	return newError(ErrBadRequest, "Missing required fields ("+strings.Join(names, ", ")+")")
}

// ValidationFailed wraps field-level violations.
func ValidationFailed(fields map[string]string) *Error {
	return &Error{Kind: ErrBadRequest, Message: "Validation failed", Fields: fields}
}
