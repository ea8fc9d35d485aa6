// Package errors provides the structured error type shared by topo's packages.
//
// Every failure carries a machine-readable [Code]. The render core reports
// four kinds:
//   - PARSE_ERROR: malformed textual geometry, path tokens, seeds, theme references or coordinates
//   - FORMAT_ERROR: malformed binary theme files or datasets
//   - RANGE_ERROR: empty numeric ranges, out-of-bounds theme indices, oversized crops
//   - IO_ERROR: file open, read or write failures
//
// The remaining codes are used by the CLI and the pipeline for input validation.
//
// Errors nest: wrapping a coded error in another keeps both codes visible to [Is].
//
//	err := errors.Wrap(errors.ErrCodeFormat, errors.New(errors.ErrCodeIO, "short read"), "themes.bin")
//	errors.Is(err, errors.ErrCodeFormat) // true
//	errors.Is(err, errors.ErrCodeIO)     // true
//	errors.GetCode(err)                  // FORMAT_ERROR
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeParse  Code = "PARSE_ERROR"
	ErrCodeFormat Code = "FORMAT_ERROR"
	ErrCodeRange  Code = "RANGE_ERROR"
	ErrCodeIO     Code = "IO_ERROR"

	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text without code prefixes, for display.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}
