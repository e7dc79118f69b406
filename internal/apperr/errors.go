// Package apperr is the tagged error-kind model used across the service
// layer. Every error the services return can be mapped to an HTTP status
// by the handlers without the handler needing to know the business
// meaning of the error, following the teacher's internal/dto/errors.go
// sentinel-error pattern, generalized into a small typed Kind instead of
// one flat list of sentinel vars.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error into the handful of outcomes the
// HTTP layer needs to distinguish, per the status-code table in §6.2.
type Kind string

const (
	KindValidation   Kind = "validation"   // 400
	KindUnauthorized Kind = "unauthorized" // 401
	KindForbidden    Kind = "forbidden"    // 403
	KindNotFound     Kind = "not_found"    // 404
	KindConflict     Kind = "conflict"     // 409
	KindInternal     Kind = "internal"     // 500
)

// Error is a business error tagged with the Kind that determines its HTTP
// status. Handlers type-assert with As to recover it; anything that isn't
// an *Error is treated as KindInternal.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func NotFound(resource string) *Error {
	return New(KindNotFound, resource+" not found")
}

func Conflict(format string, args ...interface{}) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "invalid credentials"
	}
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "access forbidden"
	}
	return New(KindForbidden, message)
}

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal error", err)
}

// KindOf extracts the Kind of err, defaulting to KindInternal for any
// error that wasn't produced by this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
