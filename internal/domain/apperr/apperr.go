// internal/domain/apperr/apperr.go

// Package apperr defines the error taxonomy returned by core operations.
//
// Every failure crossing a feature boundary is one of five kinds:
//   - Validation: bad input, caller should correct and resubmit
//   - Denied: authorization policy said no, carries a reason code
//   - NotFound: the referenced record no longer exists
//   - Conflict: the operation collides with existing state (duplicate email)
//   - Unavailable: a collaborator outage; the caller may retry with backoff
//
// Handlers map kinds to HTTP status codes in one place; nothing in the core
// uses panics or untyped errors for control flow.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the five-way taxonomy.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindDenied
	KindNotFound
	KindConflict
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDenied:
		return "denied"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Error is a classified application error.
type Error struct {
	Kind   Kind
	Msg    string
	Reason string // denial reason code, set only for KindDenied
	Err    error  // wrapped cause, set for KindUnavailable
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Denied builds a KindDenied error carrying a policy reason code.
func Denied(reason string) *Error {
	return &Error{Kind: KindDenied, Msg: "not allowed", Reason: reason}
}

// NotFound builds a KindNotFound error for the named record type.
func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Msg: what + " not found"}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a collaborator failure for the named operation.
func Unavailable(op string, err error) *Error {
	return &Error{Kind: KindUnavailable, Msg: op + " unavailable", Err: err}
}

// KindOf returns the Kind of err, or 0 if err is not an apperr.Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// IsKind reports whether err is an apperr.Error of the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// DenialReason returns the reason code if err is a denial, else "".
func DenialReason(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind == KindDenied {
		return ae.Reason
	}
	return ""
}
