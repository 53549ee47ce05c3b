package commands

import (
	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
	"github.com/tungetti/pjatext/internal/instruction"
)

// SourceFile binds the source text from the file named by its argument.
type SourceFile struct {
	command.Names
	fs fileio.FileSystem
}

// NewSourceFile creates the -f/--file command.
func NewSourceFile(fs fileio.FileSystem) *SourceFile {
	return &SourceFile{
		Names: command.NewNames(SourceFileCaller, SourceFileAlias),
		fs:    fs,
	}
}

// Description returns the help text.
func (c *SourceFile) Description() string {
	return "Read the source text from <path>"
}

// Validate checks the file exists and loads it into ops.
func (c *SourceFile) Validate(flag *instruction.Flag, _ *instruction.Instruction, ops *command.Operations) command.Output {
	if out, ok := requireArgument(flag.HasArgument()); !ok {
		return out
	}
	if !c.fs.Exists(flag.Argument) {
		return command.Fail(errors.Resource, MsgFileNotFound)
	}

	ops.InputPath = flag.Argument
	ops.Source = c.fs.ReadUnchecked(ops.InputPath)
	return command.Ok("")
}

// Execute reports nothing.
func (c *SourceFile) Execute(*instruction.Flag, *command.Operations) command.Output {
	return command.Ok("")
}

// InputFile marks input redirection. The engine handles the redirection
// itself before validation, so the command only has to be registered.
type InputFile struct {
	command.Names
}

// NewInputFile creates the -i/--input command.
func NewInputFile() *InputFile {
	return &InputFile{Names: command.NewNames(InputFileCaller, InputFileAlias)}
}

// Description returns the help text.
func (c *InputFile) Description() string {
	return "Read the whole command line from <path> (must be the only flag)"
}

func (c *InputFile) Validate(*instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.Ok("")
}

func (c *InputFile) Execute(*instruction.Flag, *command.Operations) command.Output {
	return command.Ok("")
}

// OutputFile redirects the report to the file named by its argument.
type OutputFile struct {
	command.Names
}

// NewOutputFile creates the -o/--output command.
func NewOutputFile() *OutputFile {
	return &OutputFile{Names: command.NewNames(OutputFileCaller, OutputFileAlias)}
}

// Description returns the help text.
func (c *OutputFile) Description() string {
	return "Write the report to <path> instead of stdout"
}

// Validate records the destination on ops.
func (c *OutputFile) Validate(flag *instruction.Flag, _ *instruction.Instruction, ops *command.Operations) command.Output {
	if out, ok := requireArgument(flag.HasArgument()); !ok {
		return out
	}
	ops.OutputPath = flag.Argument
	return command.Ok("")
}

func (c *OutputFile) Execute(*instruction.Flag, *command.Operations) command.Output {
	return command.Ok("")
}

var (
	_ command.Command = (*SourceFile)(nil)
	_ command.Command = (*InputFile)(nil)
	_ command.Command = (*OutputFile)(nil)
)
