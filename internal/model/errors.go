package model

import (
	"errors"
	"fmt"
)

// Code identifies a business failure. Codes are stable: handlers map them to
// HTTP statuses and clients may switch on them.
type Code string

const (
	CodeInvalidEmail       Code = "INVALID_EMAIL"
	CodeInvalidPassword    Code = "INVALID_PASSWORD"
	CodeWeakPassword       Code = "WEAK_PASSWORD"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeEmailExists        Code = "EMAIL_EXISTS"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeClientNotFound     Code = "CLIENT_NOT_FOUND"
	CodeInvalidID          Code = "INVALID_ID"
	CodeFetch              Code = "FETCH_ERROR"
)

// Error is a typed business failure. Equal codes compare as equal under
// errors.Is so callers can match against the exported sentinels below.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func E(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Ef(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is matching. Messages here are the user-facing
// defaults; constructors above override them where a more specific message
// exists.
var (
	ErrInvalidEmail       = E(CodeInvalidEmail, "invalid email format")
	ErrInvalidPassword    = E(CodeInvalidPassword, "invalid password")
	ErrWeakPassword       = E(CodeWeakPassword, "password must contain at least an uppercase letter, a lowercase letter and a digit")
	ErrEmailExists        = E(CodeEmailExists, "this email is already in use")
	ErrInvalidCredentials = E(CodeInvalidCredentials, "incorrect email or password")
	ErrClientNotFound     = E(CodeClientNotFound, "client not found")
	ErrInvalidID          = E(CodeInvalidID, "invalid id")
)

// IsCode reports whether err carries the given business code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// ErrNotFound / ErrExists are the raw storage-level outcomes, wrapped
// per-entity by the DAOs.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

func NewError(entity string, err error) error {
	return fmt.Errorf("%s: %w", entity, err)
}
