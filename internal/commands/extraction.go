package commands

import (
	"slices"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/instruction"
)

// pairFunc reports whether a source word relates to a reference word.
type pairFunc func(sourceWord, referenceWord string) bool

// extractor lists the source words that relate to at least one word of
// the flag's argument. It must be the last flag and needs an argument.
type extractor struct {
	command.Names
	label       string
	description string
	related     pairFunc
}

func (c *extractor) Description() string {
	return c.description
}

func (c *extractor) Validate(flag *instruction.Flag, inst *instruction.Instruction, _ *command.Operations) command.Output {
	if _, hasNext := inst.FlagAt(flag.Position + 1); hasNext {
		return command.Fail(errors.Position, MsgMustBeLast)
	}
	if out, ok := requireArgument(flag.HasArgument()); !ok {
		return out
	}
	return command.Ok("")
}

func (c *extractor) Execute(flag *instruction.Flag, ops *command.Operations) command.Output {
	return command.Ok(labelled(c.label, formatList(collect(instruction.Words(ops.Source), flag.Words(), c.related))))
}

// collect walks source × reference in order, keeps every matching source
// word and then drops consecutive repeats.
func collect(source, reference []string, related pairFunc) []string {
	var matched []string
	for _, s := range source {
		for _, r := range reference {
			if related(s, r) {
				matched = append(matched, s)
			}
		}
	}
	return slices.Compact(matched)
}

// NewShowAnagrams creates the -a/--anagrams command.
func NewShowAnagrams() command.Command {
	return &extractor{
		Names:       command.NewNames("-a", "--anagrams"),
		label:       "Anagrams",
		description: "List source words that are anagrams of <words> (must be last)",
		related:     areAnagrams,
	}
}

// NewShowPalindromes creates the -p/--palindromes command.
func NewShowPalindromes() command.Command {
	return &extractor{
		Names:       command.NewNames("-p", "--palindromes"),
		label:       "Palindromes",
		description: "List source words that read as <words> reversed (must be last)",
		related:     arePalindromes,
	}
}

func areAnagrams(first, second string) bool {
	if len(first) != len(second) {
		return false
	}
	a, b := []byte(first), []byte(second)
	slices.Sort(a)
	slices.Sort(b)
	return string(a) == string(b)
}

func arePalindromes(first, second string) bool {
	if len(first) != len(second) {
		return false
	}
	for i := 0; i < len(first); i++ {
		if first[i] != second[len(second)-1-i] {
			return false
		}
	}
	return true
}
