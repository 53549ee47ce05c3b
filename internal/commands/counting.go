package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/instruction"
)

// counter is an operational command that formats "<label>: <count>".
// Counters accept any position and take no argument.
type counter struct {
	command.Names
	label       string
	description string
	count       func(source string) int
}

func (c *counter) Description() string {
	return c.description
}

func (c *counter) Validate(*instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.Ok("")
}

func (c *counter) Execute(_ *instruction.Flag, ops *command.Operations) command.Output {
	return command.Ok(fmt.Sprintf("%s: %d", c.label, c.count(ops.Source)))
}

// NewCountLines creates the -n/--newlines command.
func NewCountLines() command.Command {
	return &counter{
		Names:       command.NewNames("-n", "--newlines"),
		label:       "New lines",
		description: "Count newline characters",
		count:       countLines,
	}
}

// NewCountDigits creates the -d/--digits command.
func NewCountDigits() command.Command {
	return &counter{
		Names:       command.NewNames("-d", "--digits"),
		label:       "Digits",
		description: "Count digit characters",
		count:       countDigits,
	}
}

// NewCountNumbers creates the -dd/--numbers command.
func NewCountNumbers() command.Command {
	return &counter{
		Names:       command.NewNames("-dd", "--numbers"),
		label:       "Numbers",
		description: "Count whitespace-delimited numbers",
		count:       countNumbers,
	}
}

// NewCountChars creates the -c/--chars command.
func NewCountChars() command.Command {
	return &counter{
		Names:       command.NewNames("-c", "--chars"),
		label:       "Chars",
		description: "Count characters",
		count:       utf8.RuneCountInString,
	}
}

// NewCountWords creates the -w/--words command.
func NewCountWords() command.Command {
	return &counter{
		Names:       command.NewNames("-w", "--words"),
		label:       "Words",
		description: "Count whitespace-delimited words",
		count:       func(source string) int { return len(instruction.Words(source)) },
	}
}

func countLines(source string) int {
	return strings.Count(source, "\n")
}

func countDigits(source string) int {
	n := 0
	for i := 0; i < len(source); i++ {
		if isDigit(source[i]) {
			n++
		}
	}
	return n
}

// countNumbers counts words that open with a run of digits not followed by
// a word character, so "42", "42." and "7-up" count but "42abc" and "x1"
// do not.
func countNumbers(source string) int {
	n := 0
	for _, word := range instruction.Words(source) {
		i := 0
		for i < len(word) && isDigit(word[i]) {
			i++
		}
		if i == 0 {
			continue
		}
		if i == len(word) || !isWordChar(word[i]) {
			n++
		}
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordChar(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
