// Package instruction turns a flat token stream into structured flags.
//
// A token starting with "-" opens a new flag. Every following token that is
// not a flag is appended to that flag's argument with a single trailing
// space, which is trimmed once the flag is complete. Tokens that appear
// before the first flag have no owner and are dropped.
package instruction

import "strings"

const (
	// ModifierNone leaves a command's default behaviour in place.
	ModifierNone = 0
	// ModifierByLength switches the sorting commands from lexicographic to
	// length order.
	ModifierByLength = 1
)

// flagPrefix marks a token as a flag name.
const flagPrefix = "-"

// Flag is one flag of an instruction together with its argument.
type Flag struct {
	// Name is the literal token, short or long form.
	Name string
	// Argument holds the space-joined tokens that followed the flag.
	Argument string
	// Position is the zero-based index of the flag among flags only.
	Position int
	// Modifier is set by modifying commands during validation.
	Modifier int
}

// HasArgument reports whether the flag carries a non-empty argument.
func (f *Flag) HasArgument() bool {
	return f.Argument != ""
}

// NameIn reports whether the flag's name is one of names.
func (f *Flag) NameIn(names ...string) bool {
	for _, n := range names {
		if f.Name == n {
			return true
		}
	}
	return false
}

// Words returns the argument split on whitespace.
func (f *Flag) Words() []string {
	return Words(f.Argument)
}

// Instruction is the ordered list of flags parsed from one command line.
// Its length and order never change after Build; only a flag's Modifier is
// mutated in place.
type Instruction struct {
	flags []*Flag
}

// Build parses tokens into an Instruction. It never fails; empty input
// yields an empty Instruction.
func Build(tokens []string) *Instruction {
	inst := &Instruction{}
	var current *Flag
	var arg strings.Builder

	finalize := func() {
		if current == nil {
			return
		}
		s := arg.String()
		if len(s) > 0 {
			s = s[:len(s)-1]
		}
		current.Argument = s
		inst.flags = append(inst.flags, current)
		arg.Reset()
	}

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, flagPrefix) {
			finalize()
			current = &Flag{Name: tok, Position: len(inst.flags)}
			continue
		}
		if current == nil {
			continue
		}
		arg.WriteString(tok)
		arg.WriteByte(' ')
	}
	finalize()

	return inst
}

// Words splits text into whitespace-delimited words.
func Words(text string) []string {
	return strings.Fields(text)
}

// Flags returns the flags in order. The slice must not be modified.
func (i *Instruction) Flags() []*Flag {
	return i.flags
}

// Len returns the number of flags.
func (i *Instruction) Len() int {
	return len(i.flags)
}

// IsEmpty reports whether the instruction has no flags.
func (i *Instruction) IsEmpty() bool {
	return len(i.flags) == 0
}

// FlagByName returns the first flag with the given name.
func (i *Instruction) FlagByName(name string) (*Flag, bool) {
	for _, f := range i.flags {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// FlagAt returns the flag at position. The returned pointer aliases the
// instruction's flag so modifiers can be applied to it.
func (i *Instruction) FlagAt(position int) (*Flag, bool) {
	if position < 0 || position >= len(i.flags) {
		return nil, false
	}
	return i.flags[position], true
}

// Contains reports whether any flag is named short or long.
func (i *Instruction) Contains(short, long string) bool {
	for _, f := range i.flags {
		if f.NameIn(short, long) {
			return true
		}
	}
	return false
}

// Names returns the flag names in order.
func (i *Instruction) Names() []string {
	names := make([]string, len(i.flags))
	for idx, f := range i.flags {
		names[idx] = f.Name
	}
	return names
}
