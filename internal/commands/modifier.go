package commands

import (
	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/instruction"
)

// WordsByLength switches the sorting flag right after it to length order.
// It reports nothing on execution.
type WordsByLength struct {
	command.Names
}

// NewWordsByLength creates the -l/--by-length command.
func NewWordsByLength() *WordsByLength {
	return &WordsByLength{Names: command.NewNames(ByLengthCaller, ByLengthAlias)}
}

// Description returns the help text.
func (c *WordsByLength) Description() string {
	return "Sort the following -s/-rs by word length (must precede it)"
}

// Validate applies the modifier to the next flag. A following -l is
// accepted as is and will in turn check its own successor.
func (c *WordsByLength) Validate(flag *instruction.Flag, inst *instruction.Instruction, _ *command.Operations) command.Output {
	next, ok := inst.FlagAt(flag.Position + 1)
	if !ok {
		return command.Fail(errors.Position, MsgCannotBeLast)
	}
	if next.NameIn(ByLengthCaller, ByLengthAlias) {
		return command.Ok("")
	}
	if !next.NameIn(SortedCaller, SortedAlias, ReverseSortedCaller, ReverseSortedAlias) {
		return command.Fail(errors.Position, MsgMissingTarget)
	}

	next.Modifier = instruction.ModifierByLength
	return command.Ok("")
}

func (c *WordsByLength) Execute(*instruction.Flag, *command.Operations) command.Output {
	return command.Ok("")
}
