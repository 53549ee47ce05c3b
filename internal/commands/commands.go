// Package commands provides the built-in commands of pjatext.
//
// Base commands bind run state: the source file, the input redirection
// marker and the report destination. Operational commands compute a report
// line from the source text. Modifying commands adjust a sibling flag during
// validation and report nothing themselves.
package commands

import (
	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
)

// Flag names shared across commands.
const (
	SourceFileCaller = "-f"
	SourceFileAlias  = "--file"
	InputFileCaller  = "-i"
	InputFileAlias   = "--input"
	OutputFileCaller = "-o"
	OutputFileAlias  = "--output"

	SortedCaller        = "-s"
	SortedAlias         = "--sorted"
	ReverseSortedCaller = "-rs"
	ReverseSortedAlias  = "--reverse-sorted"
	ByLengthCaller      = "-l"
	ByLengthAlias       = "--by-length"
)

// User-facing messages.
const (
	MsgArgumentRequired = "This flag requires an argument!"
	MsgFileNotFound     = "Provided file doesn't exist!"
	MsgMustBeLast       = "This flag should be the last one"
	MsgCannotBeLast     = "This flag can't be the last one!"
	MsgMissingTarget    = "Missing required flag after this one!"
	MsgSizeUnavailable  = "Source file size is unavailable!"
)

// Base returns the base commands in registration order.
func Base(fs fileio.FileSystem) []command.Command {
	return []command.Command{
		NewSourceFile(fs),
		NewInputFile(),
		NewOutputFile(),
	}
}

// Operational returns the operational and modifying commands in
// registration order.
func Operational(fs fileio.FileSystem) []command.Command {
	return []command.Command{
		NewCountLines(),
		NewCountDigits(),
		NewCountNumbers(),
		NewCountChars(),
		NewCountWords(),
		NewShowAnagrams(),
		NewShowPalindromes(),
		NewShowWords(),
		NewShowWordsReverse(),
		NewShowFileSize(fs),
		NewWordsByLength(),
	}
}

// requireArgument fails when flag carries no argument.
func requireArgument(hasArgument bool) (command.Output, bool) {
	if !hasArgument {
		return command.Fail(errors.Argument, MsgArgumentRequired), false
	}
	return command.Ok(""), true
}
