package util

import (
	"errors"
	"net/http"
)

// Error kinds. Every error leaving a service wraps exactly one of these.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrDelivery           = errors.New("delivery failed")
	ErrInternal           = errors.New("internal error")
)

// Error carries a client facing message on top of one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) error { return NewError(ErrNotFound, message) }

func InvalidCredentials(message string) error { return NewError(ErrInvalidCredentials, message) }

func AlreadyExists(message string) error { return NewError(ErrAlreadyExists, message) }

func BadRequest(message string) error { return NewError(ErrBadRequest, message) }

func Internal(message string) error { return NewError(ErrInternal, message) }

/*
* Map the kind of the error to the http status
* Anything unknown is treated as an internal error
 */
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor hides the text of errors that were never converted by a service.
func MessageFor(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SERVER_ERROR
}
