package command

import (
	"fmt"

	"github.com/tungetti/pjatext/internal/constants"
	"github.com/tungetti/pjatext/internal/errors"
)

// Result is the tri-state outcome of a validate or execute call.
type Result int

const (
	// ResultUndefined is the zero value: the command produced no verdict.
	ResultUndefined Result = iota
	// ResultOk indicates success.
	ResultOk
	// ResultErr indicates failure.
	ResultErr
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultUndefined:
		return "undefined"
	case ResultOk:
		return "ok"
	case ResultErr:
		return "err"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Output is what a command reports back to the engine.
// An Output with an empty Message contributes nothing to the report.
type Output struct {
	// Result is the verdict.
	Result Result

	// Message is the user-facing report line, without label.
	Message string

	// Error classifies a failure, if any.
	Error *errors.Error
}

// Ok creates a successful output.
func Ok(message string) Output {
	return Output{Result: ResultOk, Message: message}
}

// Err creates a failed output without an error code.
func Err(message string) Output {
	return Output{Result: ResultErr, Message: message}
}

// Fail creates a failed output whose error carries code.
func Fail(code errors.Code, message string) Output {
	return Output{
		Result:  ResultErr,
		Message: message,
		Error:   errors.New(code, message),
	}
}

// Undefined returns the zero Output.
func Undefined() Output {
	return Output{}
}

// WithMessage returns a copy of the output with the message replaced.
func (o Output) WithMessage(message string) Output {
	o.Message = message
	return o
}

// IsOk returns true if the output is a success.
func (o Output) IsOk() bool {
	return o.Result == ResultOk
}

// IsErr returns true if the output is a failure.
func (o Output) IsErr() bool {
	return o.Result == ResultErr
}

// IsUndefined returns true if the output carries no verdict.
func (o Output) IsUndefined() bool {
	return o.Result == ResultUndefined
}

// HasMessage reports whether the output contributes a report line.
func (o Output) HasMessage() bool {
	return o.Message != ""
}

// Label returns the report label. Anything that is not a success is
// reported as an error.
func (o Output) Label() string {
	if o.IsOk() {
		return constants.LabelSuccess
	}
	return constants.LabelError
}

// String renders the output as one report line without the newline.
func (o Output) String() string {
	return o.Label() + ": " + o.Message
}
