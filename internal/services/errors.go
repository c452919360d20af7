// Package services implements the transaction operations of the backend:
// registration, authentication, catalog management, purchases, rentals, and
// file attachment. Each operation validates its input, orchestrates the
// repositories, and returns either an entity snapshot or a typed *Error.
package services

import (
	"errors"
	"fmt"

	"github.com/openshelf/openshelf/internal/validation"
)

// Kind classifies an operation failure. The transport layer maps kinds to
// HTTP status codes; the detail never decides the status.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// Error is a tagged operation failure.
type Error struct {
	Kind       Kind
	Message    string
	Violations []validation.Violation
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func validationError(result validation.Result) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    "validation failed",
		Violations: result.Violations,
	}
}

func conflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func notFoundError(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func unauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// internalError wraps a store or collaborator failure. No store error ever
// escapes an operation unclassified.
func internalError(context string, err error) *Error {
	return &Error{Kind: KindInternal, Message: context, cause: err}
}

// KindOf extracts the error kind, defaulting to KindInternal for errors that
// did not originate in this package.
func KindOf(err error) Kind {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindInternal
}
