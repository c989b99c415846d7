// Package domainerrors carries coded errors across the service boundary.
//
// Stores return sentinel facts (see pkg/platform/sentinel) or plain booleans;
// services translate those facts into a Code so callers can branch without
// string matching.
package domainerrors

import "errors"

// Code classifies a domain error.
type Code string

const (
	CodeNotFound          Code = "not_found"
	CodeCapacityExhausted Code = "capacity_exhausted"
	CodeConflict          Code = "conflict"
	CodeValidation        Code = "validation_error"
	CodeInvalidInput      Code = "invalid_input"
	CodeInternal          Code = "internal_error"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in err's chain, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
