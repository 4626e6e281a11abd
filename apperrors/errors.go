// Package apperrors defines the domain error taxonomy shared by the
// services and mapped to HTTP status codes at the handler boundary.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure.
type Kind int

const (
	// KindValidation — missing or malformed input, the caller's fault.
	KindValidation Kind = iota
	// KindNotFound — a referenced entity does not exist.
	KindNotFound
	// KindAuthorization — the caller does not own the target entity.
	KindAuthorization
	// KindConflict — the operation would duplicate a unique resource.
	KindConflict
	// KindPrecondition — a valid entity is in the wrong state for the operation.
	KindPrecondition
)

// Error is a domain failure whose message is surfaced verbatim to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) error    { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error      { return &Error{Kind: KindNotFound, Message: msg} }
func Authorization(msg string) error { return &Error{Kind: KindAuthorization, Message: msg} }
func Conflict(msg string) error      { return &Error{Kind: KindConflict, Message: msg} }
func Precondition(msg string) error  { return &Error{Kind: KindPrecondition, Message: msg} }

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// HTTPStatus maps a domain error to its response status. Anything outside
// the taxonomy is an unexpected failure and maps to 500.
func HTTPStatus(err error) int {
	var de *Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
