package cli

import "github.com/tungetti/pjatext/internal/command"

// Mode represents what the process was asked to do.
type Mode int

const (
	// ModeRun hands the tokens to the engine.
	ModeRun Mode = iota

	// ModeHelp prints the usage screen.
	ModeHelp

	// ModeVersion prints build information.
	ModeVersion

	// ModeDefault runs the configured default command line.
	ModeDefault
)

// String returns the mode name as a string.
func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeHelp:
		return "help"
	case ModeVersion:
		return "version"
	case ModeDefault:
		return "default"
	default:
		return ""
	}
}

// IsMeta reports whether the mode is answered without running the engine.
func (m Mode) IsMeta() bool {
	return m == ModeHelp || m == ModeVersion
}

// CommandInfo holds the help metadata of a registered command.
type CommandInfo struct {
	// Caller is the short flag name, e.g. "-w".
	Caller string

	// Alias is the long flag name, e.g. "--words".
	Alias string

	// Description is a brief description of what the command does.
	Description string
}

// Names returns the caller and alias joined for display.
func (i CommandInfo) Names() string {
	switch {
	case i.Caller == "":
		return i.Alias
	case i.Alias == "":
		return i.Caller
	default:
		return i.Caller + ", " + i.Alias
	}
}

// Commands returns the help metadata of every command in the registry,
// in registration order.
func Commands(registry *command.Registry) []CommandInfo {
	cmds := registry.Commands()
	infos := make([]CommandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		infos = append(infos, CommandInfo{
			Caller:      cmd.Caller(),
			Alias:       cmd.Alias(),
			Description: command.DescriptionOf(cmd),
		})
	}
	return infos
}
