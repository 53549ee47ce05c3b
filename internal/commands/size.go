package commands

import (
	"fmt"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
	"github.com/tungetti/pjatext/internal/instruction"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// ShowFileSize reports the size of the bound source file.
type ShowFileSize struct {
	command.Names
	fs fileio.FileSystem
}

// NewShowFileSize creates the -si/--size command.
func NewShowFileSize(fs fileio.FileSystem) *ShowFileSize {
	return &ShowFileSize{
		Names: command.NewNames("-si", "--size"),
		fs:    fs,
	}
}

// Description returns the help text.
func (c *ShowFileSize) Description() string {
	return "Show the source file size in B, KB, MB or GB"
}

func (c *ShowFileSize) Validate(*instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.Ok("")
}

func (c *ShowFileSize) Execute(_ *instruction.Flag, ops *command.Operations) command.Output {
	size, err := c.fs.Size(ops.InputPath)
	if err != nil {
		return command.Fail(errors.IO, MsgSizeUnavailable)
	}
	return command.Ok(labelled("Size", FormatSize(size)))
}

// FormatSize scales bytes by 1000 until under 1000 or GB is reached and
// rounds half-up to two decimals, e.g. 1536 -> "1.54 KB". Rounding is done
// in integer hundredths so 1005 gives "1.01 KB".
func FormatSize(bytes int64) string {
	unit := 0
	div := int64(1)
	for bytes/div >= 1000 && unit < len(sizeUnits)-1 {
		div *= 1000
		unit++
	}

	q, r := bytes/div, bytes%div
	hundredths := q*100 + (r*100+div/2)/div

	whole, frac := hundredths/100, hundredths%100
	switch {
	case frac == 0:
		return fmt.Sprintf("%d %s", whole, sizeUnits[unit])
	case frac%10 == 0:
		return fmt.Sprintf("%d.%d %s", whole, frac/10, sizeUnits[unit])
	default:
		return fmt.Sprintf("%d.%02d %s", whole, frac, sizeUnits[unit])
	}
}
