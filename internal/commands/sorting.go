package commands

import (
	"cmp"
	"slices"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/instruction"
)

// sorter lists every source word in order. The by-length modifier switches
// the key from the word itself to its byte length.
type sorter struct {
	command.Names
	label       string
	description string
	descending  bool
}

func (c *sorter) Description() string {
	return c.description
}

func (c *sorter) Validate(*instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.Ok("")
}

func (c *sorter) Execute(flag *instruction.Flag, ops *command.Operations) command.Output {
	words := sortWords(instruction.Words(ops.Source), flag.Modifier == instruction.ModifierByLength, c.descending)
	return command.Ok(labelled(c.label, formatList(words)))
}

// sortWords sorts words in place, keeping equal keys in source order.
func sortWords(words []string, byLength, descending bool) []string {
	slices.SortStableFunc(words, func(a, b string) int {
		var r int
		if byLength {
			r = cmp.Compare(len(a), len(b))
		} else {
			r = cmp.Compare(a, b)
		}
		if descending {
			return -r
		}
		return r
	})
	return words
}

// NewShowWords creates the -s/--sorted command.
func NewShowWords() command.Command {
	return &sorter{
		Names:       command.NewNames(SortedCaller, SortedAlias),
		label:       "Sorted",
		description: "List source words in ascending order",
	}
}

// NewShowWordsReverse creates the -rs/--reverse-sorted command.
func NewShowWordsReverse() command.Command {
	return &sorter{
		Names:       command.NewNames(ReverseSortedCaller, ReverseSortedAlias),
		label:       "Reverse sorted",
		description: "List source words in descending order",
		descending:  true,
	}
}
