// Package errors provides standardized domain errors with codes for
// the goldenfix generator.
//
// Per-case decode failures are captured as fixture data, not as Go
// errors; this package covers the process-level taxonomy: fatal
// preconditions that abort a run entirely.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Code represents a machine-readable error code.
type Code string

// Error codes used by the generator.
const (
	CodeEmptyCorpus Code = "EMPTY_CORPUS"
	CodeScan        Code = "SCAN"
	CodeWrite       Code = "WRITE"
)

// Error is a domain error with a code and message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors for use with errors.Is().
var (
	// ErrEmptyCorpus means no input files were discovered at all.
	ErrEmptyCorpus = &Error{Code: CodeEmptyCorpus, Message: "no referenced fixture files found"}
)

// Scan wraps a reference-scanning failure.
func Scan(err error, msg string) *Error {
	return &Error{Code: CodeScan, Message: msg, cause: err}
}

// Write wraps an output-persistence failure.
func Write(err error, msg string) *Error {
	return &Error{Code: CodeWrite, Message: msg, cause: err}
}
