// Package constants defines application-wide constants for pjatext.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "pjatext"
	// AppDescription is a short description of the application.
	AppDescription string = "Flag-driven text statistics for the command line"
)

// ExitCode represents process exit codes for different termination scenarios.
// A rendered report always exits with ExitSuccess, even when it only holds
// error lines; the other codes cover failures outside the engine.
type ExitCode int

const (
	// ExitSuccess indicates a report was produced.
	ExitSuccess ExitCode = iota
	// ExitError indicates the process could not be set up (config, logging).
	ExitError
	// ExitOutput indicates the report could not be written to stdout.
	ExitOutput
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// Configuration sources
const (
	// EnvPrefix is the prefix for environment variables read by the config loader.
	EnvPrefix string = "PJATEXT_"
	// DefaultConfigDir is the default configuration directory relative to $HOME.
	DefaultConfigDir string = ".config/pjatext"
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
	// DefaultLogFile is the suggested log file name when file logging is enabled.
	DefaultLogFile string = "pjatext.log"
)

// Report labels written in front of every rendered output line.
const (
	// LabelSuccess prefixes successful outputs.
	LabelSuccess string = "[SUCCESS]"
	// LabelError prefixes error outputs and outputs without a result.
	LabelError string = "[ERROR]"
)

// Help tokens handled by the CLI wrapper before the engine runs.
const (
	// HelpShort and HelpLong print the usage screen when given alone.
	HelpShort string = "-h"
	HelpLong  string = "--help"
	// VersionLong prints build information when given alone.
	VersionLong string = "--version"
)
