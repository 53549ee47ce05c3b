// Package config provides configuration management for pjatext.
// Configuration is read from an optional YAML file and then from PJATEXT_*
// environment variables, with the environment taking precedence. The file is
// located following the XDG Base Directory specification.
package config

import (
	"path/filepath"

	"github.com/google/shlex"

	"github.com/tungetti/pjatext/internal/constants"
	"github.com/tungetti/pjatext/internal/errors"
)

// Config represents the application configuration.
// None of these settings reach the engine: they only shape logging, report
// colouring and the command line used when none is given.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`
	Verbose  bool   `yaml:"verbose" env:"VERBOSE"`
	Quiet    bool   `yaml:"quiet" env:"QUIET"`

	// Presentation
	NoColor bool   `yaml:"no_color" env:"NO_COLOR"`
	Theme   string `yaml:"theme" env:"THEME"`

	// DefaultArgs is a shell-quoted command line run when pjatext is invoked
	// without arguments, e.g. `-f notes.txt -w -n`.
	DefaultArgs string `yaml:"default_args" env:"ARGS"`

	// Directories
	ConfigDir string `yaml:"config_dir" env:"CONFIG_DIR"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, constants.ConfigFileName)
}

// IsVerbose returns true if verbose output is enabled and quiet is not.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// HasDefaultArgs reports whether a default command line is configured.
func (c *Config) HasDefaultArgs() bool {
	return c.DefaultArgs != ""
}

// Args splits DefaultArgs into tokens using shell quoting rules, so
// `-a "cat act"` yields the two tokens the engine expects.
func (c *Config) Args() ([]string, error) {
	if c.DefaultArgs == "" {
		return nil, nil
	}
	args, err := shlex.Split(c.DefaultArgs)
	if err != nil {
		return nil, errors.Wrap(errors.Configuration, "failed to split default_args", err).
			WithOp("config.Args")
	}
	return args, nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
