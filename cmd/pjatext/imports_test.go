// cmd/pjatext/imports_test.go
package main

import (
	"testing"

	// Verify all core dependencies can be imported
	_ "github.com/caarlos0/env/v11"
	_ "github.com/charmbracelet/lipgloss"
	_ "github.com/charmbracelet/log"
	_ "github.com/dustin/go-humanize"
	_ "github.com/google/shlex"
	_ "github.com/muesli/termenv"
	_ "github.com/stretchr/testify/assert"
	_ "github.com/stretchr/testify/require"
	_ "github.com/wk8/go-ordered-map"
	_ "golang.org/x/term"
	_ "gopkg.in/yaml.v3"
)

func TestImports(t *testing.T) {
	// This test verifies that all core dependencies can be imported.
	// If this test compiles, all imports are valid.
	t.Log("All core dependencies imported successfully")
}
