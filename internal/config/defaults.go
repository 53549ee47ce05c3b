package config

import (
	"os"
	"path/filepath"

	"github.com/tungetti/pjatext/internal/constants"
)

const (
	// DefaultLogLevel is the default logging level. Only warnings and errors
	// reach stderr unless the user asks for more.
	DefaultLogLevel = "warn"

	// DefaultTheme is the report colour theme.
	DefaultTheme = "default"
)

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		LogFile:     "",
		Verbose:     false,
		Quiet:       false,
		NoColor:     false,
		Theme:       DefaultTheme,
		DefaultArgs: "",
		ConfigDir:   defaultConfigDir(),
	}
}

// defaultConfigDir returns the XDG config directory for pjatext.
// Falls back to ~/.config/pjatext if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", constants.DefaultConfigDir)
	}
	return filepath.Join(home, constants.DefaultConfigDir)
}

// GetConfigDir returns the configuration directory, respecting XDG.
func GetConfigDir() string {
	return defaultConfigDir()
}
