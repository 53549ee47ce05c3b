// Package cli decides how the pjatext process answers its command line and
// renders the help and version screens. Everything that is not a help or
// version request is passed through to the engine untouched, so the engine
// remains the only place where flags are interpreted.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/constants"
)

// ParseResult holds the result of classifying the command line.
type ParseResult struct {
	// Mode is what the process should do.
	Mode Mode

	// Tokens are the engine tokens for ModeRun. Empty for the other modes.
	Tokens []string
}

// ShowHelp reports whether the usage screen was requested.
func (r *ParseResult) ShowHelp() bool {
	return r.Mode == ModeHelp
}

// Parser classifies command lines and renders the meta screens.
type Parser struct {
	programName string
	version     string
	buildTime   string
	gitCommit   string

	output io.Writer
}

// NewParser creates a new CLI parser with build information.
func NewParser(programName, version, buildTime, gitCommit string) *Parser {
	return &Parser{
		programName: programName,
		version:     version,
		buildTime:   buildTime,
		gitCommit:   gitCommit,
		output:      io.Discard,
	}
}

// SetOutput sets the writer used by PrintUsage and PrintVersion.
func (p *Parser) SetOutput(w io.Writer) {
	p.output = w
}

// Parse classifies args. The args parameter should not include the program
// name (typically os.Args[1:]).
//
// Help and version are only recognised as the sole token; anywhere else they
// reach the engine like any other flag. An empty command line selects
// ModeDefault so the caller can substitute the configured default arguments.
func (p *Parser) Parse(args []string) *ParseResult {
	if len(args) == 0 {
		return &ParseResult{Mode: ModeDefault}
	}

	if len(args) == 1 {
		switch args[0] {
		case constants.HelpShort, constants.HelpLong:
			return &ParseResult{Mode: ModeHelp}
		case constants.VersionLong:
			return &ParseResult{Mode: ModeVersion}
		}
	}

	tokens := make([]string, len(args))
	copy(tokens, args)
	return &ParseResult{Mode: ModeRun, Tokens: tokens}
}

// Usage returns the main usage string listing every command in registry.
func (p *Parser) Usage(registry *command.Registry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s - %s\n\n", p.programName, constants.AppDescription))
	b.WriteString("Usage:\n")
	b.WriteString(fmt.Sprintf("  %s -f <file> [flags]\n", p.programName))
	b.WriteString(fmt.Sprintf("  %s -i <file>\n\n", p.programName))

	infos := Commands(registry)
	width := 0
	for _, info := range infos {
		if n := len(info.Names()); n > width {
			width = n
		}
	}

	b.WriteString("Flags:\n")
	for _, info := range infos {
		b.WriteString(fmt.Sprintf("  %-*s  %s\n", width, info.Names(), info.Description))
	}

	b.WriteString("\nOther:\n")
	b.WriteString(fmt.Sprintf("  %s, %s  Show this help\n", constants.HelpShort, constants.HelpLong))
	b.WriteString(fmt.Sprintf("  %s   Show version information\n", constants.VersionLong))

	b.WriteString(fmt.Sprintf("\nWith no flags, %s runs the command line set in %sARGS or default_args.\n",
		p.programName, constants.EnvPrefix))

	return b.String()
}

// PrintUsage writes the usage screen to the parser output.
func (p *Parser) PrintUsage(registry *command.Registry) {
	fmt.Fprint(p.output, p.Usage(registry))
}

// VersionString returns formatted version information.
func (p *Parser) VersionString() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s version %s\n", p.programName, p.version))

	if p.buildTime != "" && p.buildTime != "unknown" {
		b.WriteString(fmt.Sprintf("Build time: %s\n", p.buildTime))
	}

	if p.gitCommit != "" && p.gitCommit != "unknown" {
		commit := p.gitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		b.WriteString(fmt.Sprintf("Git commit: %s\n", commit))
	}

	return b.String()
}

// PrintVersion writes the version screen to the parser output.
func (p *Parser) PrintVersion() {
	fmt.Fprint(p.output, p.VersionString())
}

// VersionInfo returns version components for structured output.
func (p *Parser) VersionInfo() map[string]string {
	return map[string]string{
		"version":   p.version,
		"buildTime": p.buildTime,
		"gitCommit": p.gitCommit,
	}
}
