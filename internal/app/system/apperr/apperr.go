// Package apperr defines the error kinds handlers report to clients and the
// HTTP status each kind maps to.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the wire.
type Kind int

const (
	Internal Kind = iota
	InvalidArgument
	Conflict
	Unauthorized
	NotFound
	TooMany
	TooLarge
)

// Status returns the HTTP status code for k. Conflict shares 400 with
// InvalidArgument; clients tell them apart by message only.
func (k Kind) Status() int {
	switch k {
	case InvalidArgument, Conflict:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case TooMany:
		return http.StatusTooManyRequests
	case TooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case TooMany:
		return "too_many_requests"
	case TooLarge:
		return "too_large"
	default:
		return "internal"
	}
}

// InternalMessage is the only message clients see for Internal errors.
const InternalMessage = "Internal server error"

// Error is a client-facing error. Msg is safe to send; Err, if set, is the
// underlying cause and is only logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) *Error         { return &Error{Kind: InvalidArgument, Msg: msg} }
func Conflicting(msg string) *Error     { return &Error{Kind: Conflict, Msg: msg} }
func Unauthorised(msg string) *Error    { return &Error{Kind: Unauthorized, Msg: msg} }
func Missing(msg string) *Error         { return &Error{Kind: NotFound, Msg: msg} }
func RateLimited(msg string) *Error     { return &Error{Kind: TooMany, Msg: msg} }
func PayloadTooLarge(msg string) *Error { return &Error{Kind: TooLarge, Msg: msg} }

// Wrap marks err as an Internal failure described by op (for the log).
func Wrap(op string, err error) *Error {
	return &Error{Kind: Internal, Msg: op, Err: err}
}

// From returns err as an *Error, treating anything unrecognized as Internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Internal, Msg: "unexpected error", Err: err}
}

// Message returns the text to send to the client for e.
func (e *Error) Message() string {
	if e.Kind == Internal {
		return InternalMessage
	}
	return e.Msg
}
