package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation      ErrorKind = "BAD_REQUEST"
	KindUnauthenticated ErrorKind = "UNAUTHORIZED"
	// KindForbidden has no operation raising it yet; it keeps the 403 mapping.
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindConflict        ErrorKind = "CONFLICT"
	KindFetch           ErrorKind = "FETCH_ERROR"
	KindInternal        ErrorKind = "INTERNAL_SERVER_ERROR"
)

// AppError is a domain error carrying a user-facing message and the kind
// used to pick the HTTP status.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so the sentinels below work
// with errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrValidation      = &AppError{Kind: KindValidation}
	ErrUnauthenticated = &AppError{Kind: KindUnauthenticated}
	ErrNotFound        = &AppError{Kind: KindNotFound}
	ErrConflict        = &AppError{Kind: KindConflict}
	ErrFetch           = &AppError{Kind: KindFetch}
	ErrInternal        = &AppError{Kind: KindInternal}
)

func NewValidationError(message string, err error) error {
	return &AppError{Kind: KindValidation, Message: message, Err: err}
}

func NewUnauthenticatedError(message string) error {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string, err error) error {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func NewFetchError(message string, err error) error {
	return &AppError{Kind: KindFetch, Message: message, Err: err}
}

func NewInternalError(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for anything that is not
// an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code sent to clients.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to show to clients. Fetch and internal
// failures never expose their cause.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) || HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	if appErr.Message == "" {
		return http.StatusText(HTTPStatus(err))
	}
	return appErr.Message
}

// PublicCode is the error code sent next to PublicMessage.
func PublicCode(err error) ErrorKind {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return KindInternal
	}
	return KindOf(err)
}
