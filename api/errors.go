package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	// InvalidURLParams means the request URL could not be built from the base URL, path and params.
	InvalidURLParams ErrorKind = iota + 1
	// BadRequest means the request could not be sent or no response was received.
	BadRequest
	// APIError means a response was received with a non-2xx status.
	APIError
	// JSONParseError means the body was not valid JSON or did not match the expected shape.
	JSONParseError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidURLParams:
		return "invalid URL params"
	case BadRequest:
		return "bad request"
	case APIError:
		return "API error"
	case JSONParseError:
		return "JSON parse error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidURLParams = &Error{Kind: InvalidURLParams}
	ErrBadRequest       = &Error{Kind: BadRequest}
	ErrAPIError         = &Error{Kind: APIError}
	ErrJSONParseError   = &Error{Kind: JSONParseError}
)

// Error is returned by every client operation.
type Error struct {
	Kind    ErrorKind
	Message string
	// StatusCode is set for APIError only.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
