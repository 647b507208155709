package core

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable, machine-readable class of a domain error.
type ErrorKind string

const (
	ErrorKindValidation         ErrorKind = "validation"
	ErrorKindNotFound           ErrorKind = "not_found"
	ErrorKindPreconditionFailed ErrorKind = "precondition_failed"
	ErrorKindForbidden          ErrorKind = "forbidden"
	ErrorKindUnauthenticated    ErrorKind = "unauthenticated"
	ErrorKindOperationFailed    ErrorKind = "operation_failed"
)

// Sentinels for errors.Is checks against *Error values.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrOperationFailed    = errors.New("operation failed")
)

var sentinels = map[ErrorKind]error{
	ErrorKindValidation:         ErrValidation,
	ErrorKindNotFound:           ErrNotFound,
	ErrorKindPreconditionFailed: ErrPreconditionFailed,
	ErrorKindForbidden:          ErrForbidden,
	ErrorKindUnauthenticated:    ErrUnauthenticated,
	ErrorKindOperationFailed:    ErrOperationFailed,
}

// Message keys shared with clients.
const (
	KeyParameterInvalid   = "parameterInvalid"
	KeyParameterEmpty     = "parameterEmpty"
	KeyProblemNotFound    = "problemNotFound"
	KeyNominationNotFound = "nominationNotFound"
	KeyMustHaveSolved     = "qualityNominationMustHaveSolvedProblem"
	KeyLockdown           = "lockdown"
	KeyUserNotAllowed     = "userNotAllowed"
	KeyUserNotLoggedIn    = "userNotLoggedIn"
	KeyGeneralError       = "generalError"
)

// Error is a domain error. Kind and Key are safe to expose to callers; Err is
// kept for logs only.
type Error struct {
	Kind  ErrorKind
	Key   string
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": " + e.Key
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// ValidationError reports a malformed, missing or mistyped field.
func ValidationError(field, key string) *Error {
	return &Error{Kind: ErrorKindValidation, Key: key, Field: field}
}

// NotFoundError reports a missing referenced entity.
func NotFoundError(key string) *Error {
	return &Error{Kind: ErrorKindNotFound, Key: key}
}

// PreconditionFailedError reports a request the caller is not yet entitled to make.
func PreconditionFailedError(key string) *Error {
	return &Error{Kind: ErrorKindPreconditionFailed, Key: key}
}

// ForbiddenError reports lockdown or missing privileges.
func ForbiddenError(key string) *Error {
	return &Error{Kind: ErrorKindForbidden, Key: key}
}

// UnauthenticatedError reports a request without a resolvable acting user.
func UnauthenticatedError() *Error {
	return &Error{Kind: ErrorKindUnauthenticated, Key: KeyUserNotLoggedIn}
}

// OperationFailedError wraps a storage failure.
func OperationFailedError(op string, err error) *Error {
	return &Error{Kind: ErrorKindOperationFailed, Key: KeyGeneralError, Err: fmt.Errorf("%s: %w", op, err)}
}

// AsError extracts the domain error from err. Errors that are not domain errors
// are reported as operation failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: ErrorKindOperationFailed, Key: KeyGeneralError, Err: err}
}
