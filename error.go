package pagesum

import (
	"errors"
	"fmt"
)

// Application error codes. These map to broad categories of failure that
// callers can branch on without parsing message text.
const (
	EINVALID      = "invalid"      // validation or parse failure
	ENOTFOUND     = "not_found"    // entity or result does not exist
	EINTERNAL     = "internal"     // unexpected internal failure
	EUNAVAILABLE  = "unavailable"  // upstream service or network failure
	EUNAUTHORIZED = "unauthorized" // missing or rejected credential
)

// Error represents an application error with a machine-readable code and a
// human-readable message suitable for display.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagesum error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of an application error, or EINTERNAL for any
// non-application error. Returns an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an application error. Non-application
// errors return their Error() text. Returns an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
