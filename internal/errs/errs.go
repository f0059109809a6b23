package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidInput  Kind = "invalid_input"
	KindUnknownStatus Kind = "unknown_status"
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindInternal      Kind = "internal"
)

// Error is a domain failure. Store and driver errors are never converted to it.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is matches by kind, so errors.Is(err, ErrInvalidInput) works for any message.
// UnknownStatus is a specialization of InvalidInput.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == e.Kind {
		return true
	}
	return t.Kind == KindInvalidInput && e.Kind == KindUnknownStatus
}

var (
	ErrInvalidInput  = &Error{Kind: KindInvalidInput, Msg: "invalid input"}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus, Msg: "unknown status"}
	ErrNotFound      = &Error{Kind: KindNotFound, Msg: "resource not found"}
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists, Msg: "resource already exists"}
)

func Invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func UnknownStatus(status string) error {
	return &Error{Kind: KindUnknownStatus, Msg: "unknown status: " + status}
}

func NotFound(resource, id string) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s with id %s not found", resource, id)}
}

// NotFoundBy reports a lookup miss on a non-id key.
func NotFoundBy(resource, field, value string) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s with %s %s not found", resource, field, value)}
}

func AlreadyExists(resource, field, value string) error {
	return &Error{Kind: KindAlreadyExists, Msg: fmt.Sprintf("%s with %s %s already exists", resource, field, value)}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
