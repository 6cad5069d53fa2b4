package shoplens

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These map roughly onto HTTP status codes at the API boundary, but are
// defined in domain terms so internal code never depends on HTTP semantics.
const (
	EINVALID     = "invalid"     // input validation failed, no network touched
	ENOTFOUND    = "not_found"   // requested entity does not exist
	EUNAVAILABLE = "unavailable" // a single fetch failed (timeout, network, non-2xx)
	EUNREACHABLE = "unreachable" // the home page could not be fetched at all
	EINTERNAL    = "internal"    // something unexpected
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("shoplens error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code, if it is an *Error.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if it is an *Error.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
