// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the data-access layer
type ErrorKind string

const (
	KindConnectivity        ErrorKind = "connectivity"
	KindConstraintViolation ErrorKind = "constraint_violation"
	KindNotFound            ErrorKind = "not_found"
	KindAlreadyExists       ErrorKind = "already_exists"
	KindCapacityExceeded    ErrorKind = "capacity_exceeded"
	KindValidation          ErrorKind = "validation"
	KindUnauthorized        ErrorKind = "unauthorized"
	KindUnknown             ErrorKind = "unknown"
)

// Error is a tagged error carrying a kind, the failing operation and the
// database's original error code (SQLSTATE) when there is one.
type Error struct {
	Kind    ErrorKind
	Code    string
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Code != "" {
		return fmt.Sprintf("%s (code %s)", msg, e.Code)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so sentinel-style checks like
// errors.Is(err, domain.ErrAlreadyExists) work through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Code == ""
}

// Sentinels for errors.Is
var (
	ErrConnectivity     = &Error{Kind: KindConnectivity, Message: "database unreachable"}
	ErrConstraint       = &Error{Kind: KindConstraintViolation, Message: "constraint violation"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists, Message: "already exists"}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded, Message: "capacity exceeded"}
	ErrValidation       = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized, Message: "invalid credentials"}
)

// NewError builds a tagged error without an underlying cause
func NewError(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
