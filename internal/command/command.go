// Package command defines the contract between the dispatch engine and the
// pluggable commands it runs, along with the registry that stores them.
//
// Each command answers to a short name (its caller, e.g. "-w") and a long
// name (its alias, e.g. "--words"). The engine validates every flag of an
// instruction first and only executes once all of them passed.
package command

import (
	"github.com/tungetti/pjatext/internal/instruction"
)

// Command is a pluggable unit of behaviour bound to a flag.
type Command interface {
	// Caller returns the short flag name.
	Caller() string

	// Alias returns the long flag name.
	Alias() string

	// Validate checks flag in the context of the whole instruction. It may
	// bind state on ops and may set the Modifier of another flag in inst.
	Validate(flag *instruction.Flag, inst *instruction.Instruction, ops *Operations) Output

	// Execute produces the command's report line. It runs only after every
	// flag validated successfully.
	Execute(flag *instruction.Flag, ops *Operations) Output
}

// Describer is implemented by commands that provide help text.
type Describer interface {
	Description() string
}

// Names is the caller/alias pair shared by command implementations.
// It should be embedded in concrete commands.
type Names struct {
	caller string
	alias  string
}

// NewNames creates a name pair.
func NewNames(caller, alias string) Names {
	return Names{caller: caller, alias: alias}
}

// Caller returns the short flag name.
func (n Names) Caller() string {
	return n.caller
}

// Alias returns the long flag name.
func (n Names) Alias() string {
	return n.alias
}

// Matches reports whether name is the caller or the alias.
func (n Names) Matches(name string) bool {
	return name == n.caller || name == n.alias
}

// DescriptionOf returns the help text of cmd, or "" if it has none.
func DescriptionOf(cmd Command) string {
	if d, ok := cmd.(Describer); ok {
		return d.Description()
	}
	return ""
}

// FuncCommand is a command built from functions.
// This is useful for small commands that don't need a full struct.
type FuncCommand struct {
	Names
	description  string
	executeFunc  func(flag *instruction.Flag, ops *Operations) Output
	validateFunc func(flag *instruction.Flag, inst *instruction.Instruction, ops *Operations) Output
}

// FuncCommandOption is a functional option for FuncCommand.
type FuncCommandOption func(*FuncCommand)

// WithValidateFunc sets the validate function for a FuncCommand.
func WithValidateFunc(fn func(flag *instruction.Flag, inst *instruction.Instruction, ops *Operations) Output) FuncCommandOption {
	return func(c *FuncCommand) {
		c.validateFunc = fn
	}
}

// WithDescription sets the help text for a FuncCommand.
func WithDescription(description string) FuncCommandOption {
	return func(c *FuncCommand) {
		c.description = description
	}
}

// NewFuncCommand creates a new function-based command. Without a validate
// function the command accepts any flag.
func NewFuncCommand(caller, alias string, executeFunc func(flag *instruction.Flag, ops *Operations) Output, opts ...FuncCommandOption) *FuncCommand {
	c := &FuncCommand{
		Names:       NewNames(caller, alias),
		executeFunc: executeFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate runs the command's validate function if defined.
func (c *FuncCommand) Validate(flag *instruction.Flag, inst *instruction.Instruction, ops *Operations) Output {
	if c.validateFunc == nil {
		return Ok("")
	}
	return c.validateFunc(flag, inst, ops)
}

// Execute runs the command's execute function. A missing function yields
// an undefined output.
func (c *FuncCommand) Execute(flag *instruction.Flag, ops *Operations) Output {
	if c.executeFunc == nil {
		return Undefined()
	}
	return c.executeFunc(flag, ops)
}

// Description returns the help text.
func (c *FuncCommand) Description() string {
	return c.description
}

// Ensure FuncCommand implements Command and Describer.
var (
	_ Command   = (*FuncCommand)(nil)
	_ Describer = (*FuncCommand)(nil)
)
