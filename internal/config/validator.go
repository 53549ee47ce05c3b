package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/theme"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// Validator validates configuration.
type Validator struct {
	validLogLevels map[string]bool
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		validLogLevels: map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		},
	}
}

// Validate validates the configuration and returns all errors.
func (v *Validator) Validate(cfg *Config) []error {
	var errs []error

	if !v.validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("invalid log level %q: must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Verbose && cfg.Quiet {
		errs = append(errs, &ValidationError{
			Field:   "verbose/quiet",
			Message: "verbose and quiet cannot both be true",
		})
	}

	if !theme.IsAvailable(cfg.Theme) {
		errs = append(errs, &ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q", cfg.Theme),
		})
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				errs = append(errs, &ValidationError{
					Field:   "log_file",
					Message: fmt.Sprintf("directory does not exist: %s", dir),
				})
			}
		}
	}

	if _, err := cfg.Args(); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "default_args",
			Message: "cannot be split into arguments",
		})
	}

	if cfg.ConfigDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "config_dir",
			Message: "config directory cannot be empty",
		})
	}

	return errs
}

// ValidateOrError validates and returns a single wrapped error.
func (v *Validator) ValidateOrError(cfg *Config) error {
	errs := v.Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return errors.New(errors.Configuration, strings.Join(msgs, "; ")).
		WithOp("config.Validate")
}

// IsValid returns true if the configuration is valid.
func (v *Validator) IsValid(cfg *Config) bool {
	return len(v.Validate(cfg)) == 0
}

// ValidateField validates a single field and returns an error if invalid.
func ValidateField(field, value string) error {
	v := NewValidator()

	switch field {
	case "log_level":
		if !v.validLogLevels[strings.ToLower(value)] {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid log level %q", value),
			}
		}
	case "theme":
		if !theme.IsAvailable(value) {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown theme %q", value),
			}
		}
	case "default_args":
		cfg := &Config{DefaultArgs: value}
		if _, err := cfg.Args(); err != nil {
			return &ValidationError{
				Field:   field,
				Message: "cannot be split into arguments",
			}
		}
	}

	return nil
}
