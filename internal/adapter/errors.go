package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPeopleUnavailable wraps every failure of FetchPeople: transport
	// errors, non-2xx responses and undecodable bodies.
	ErrPeopleUnavailable = errors.New("people list unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response from the people API. Detail holds the
// server's "detail" field when the body carried one.
type APIError struct {
	StatusCode int
	Detail     string
	Body       string

	kind error
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, msg)
}

// Unwrap exposes the status sentinel so callers can use [errors.Is].
func (e *APIError) Unwrap() error {
	return e.kind
}

// HasDetail reports whether the server supplied a non-blank detail.
func (e *APIError) HasDetail() bool {
	return strings.TrimSpace(e.Detail) != ""
}
