package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tungetti/pjatext/internal/app"
	"github.com/tungetti/pjatext/internal/cli"
	"github.com/tungetti/pjatext/internal/constants"
	"github.com/tungetti/pjatext/internal/theme"
)

// CLI encapsulates the command-line interface for pjatext.
type CLI struct {
	parser     *cli.Parser
	options    app.Options
	configPath string

	stdout     io.Writer
	stderr     io.Writer
	isTerminal func(w io.Writer) bool
}

// NewCLI creates a new CLI instance writing to the process streams.
// PJATEXT_CONFIG overrides the configuration file location.
func NewCLI() *CLI {
	return &CLI{
		parser: cli.NewParser(constants.AppName, Version, BuildTime, GitCommit),
		options: app.Options{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		},
		configPath: os.Getenv(constants.EnvPrefix + "CONFIG"),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: isTerminal,
	}
}

// Run parses arguments and executes the engine.
// It returns an exit code suitable for os.Exit().
func (c *CLI) Run(args []string) int {
	c.parser.SetOutput(c.stdout)
	result := c.parser.Parse(args)

	if result.Mode == cli.ModeVersion {
		c.parser.PrintVersion()
		return constants.ExitSuccess.Int()
	}

	application := app.New(c.options)
	if err := application.Initialize(c.configPath); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}
	defer func() {
		if err := application.Close(); err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
		}
	}()

	registry := application.Container().GetEngine().Registry()
	if result.ShowHelp() {
		c.parser.PrintUsage(registry)
		return constants.ExitSuccess.Int()
	}

	tokens := result.Tokens
	if result.Mode == cli.ModeDefault {
		defaults, err := application.DefaultArgs()
		if err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return constants.ExitError.Int()
		}
		if len(defaults) == 0 {
			c.parser.PrintUsage(registry)
			return constants.ExitSuccess.Int()
		}
		tokens = defaults
	}

	report, err := application.Run(tokens)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}

	if _, err := io.WriteString(c.stdout, c.paint(application, report)); err != nil {
		return constants.ExitOutput.Int()
	}
	return constants.ExitSuccess.Int()
}

// paint colours the report labels when stdout is a terminal and colour is
// enabled. Reports written by -o never pass through here.
func (c *CLI) paint(application *app.App, report string) string {
	cfg := application.Container().GetConfig()
	if report == "" || cfg.NoColor || !c.isTerminal(c.stdout) {
		return report
	}

	t := theme.GetTheme(theme.ThemeName(cfg.Theme))
	return theme.NewPainter(t, lipgloss.NewRenderer(c.stdout)).Paint(report)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
