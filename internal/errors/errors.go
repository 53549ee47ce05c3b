// Package errors provides the structured error type used across pjatext.
// Every failure carries a Code from the tool's error taxonomy so callers can
// classify it with errors.Is() and errors.As() without matching on text.
package errors

import (
	"errors"
	"fmt"
)

// Code represents error categories for classifying different types of failures.
type Code int

const (
	// Unknown indicates an unclassified error.
	Unknown Code = iota
	// Argument indicates a flag was given without a required argument.
	Argument
	// Position indicates a flag violates an ordering rule, such as a flag that
	// must be last or a modifier missing its target.
	Position
	// Resource indicates a referenced file does not exist or is unreadable.
	Resource
	// Resolution indicates a flag name did not resolve to a registered command.
	Resolution
	// State indicates the run ended validation without a usable source text.
	State
	// Configuration indicates a configuration error.
	Configuration
	// IO indicates a file read or write failure.
	IO
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Argument:
		return "Argument"
	case Position:
		return "Position"
	case Resource:
		return "Resource"
	case Resolution:
		return "Resolution"
	case State:
		return "State"
	case Configuration:
		return "Configuration"
	case IO:
		return "IO"
	default:
		return fmt.Sprintf("Code(%d)", c)
	}
}

// Error represents a structured application error with code, message,
// operation context, and optional cause for error chaining.
type Error struct {
	Code    Code   // Error category
	Message string // Human-readable error message
	Op      string // Operation that failed (e.g., "fileio.Read")
	Cause   error  // Underlying error, if any
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with additional context.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithOp adds operation context to the error and returns the modified error.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Error implements the error interface.
// The format varies based on whether Op and Cause are set:
//   - With Op and Cause: "op: message: cause"
//   - With Op only: "op: message"
//   - With Cause only: "message: cause"
//   - Message only: "message"
func (e *Error) Error() string {
	if e.Op != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// GetCode extracts the error code from an error.
// Returns Unknown if the error is not an *Error type.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// Sentinel errors for common cases.
var (
	// ErrNoSource indicates no source text was bound by the end of validation.
	ErrNoSource = New(State, "no source text bound")
	// ErrFileNotFound indicates a referenced file does not exist.
	ErrFileNotFound = New(Resource, "file not found")
	// ErrUnknownFlag indicates a flag name did not resolve to a command.
	ErrUnknownFlag = New(Resolution, "unknown flag")
)
