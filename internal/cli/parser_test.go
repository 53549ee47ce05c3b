package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/commands"
	testutil "github.com/tungetti/pjatext/internal/testing"
)

func newTestParser() *Parser {
	return NewParser("pjatext", "1.0.0", "2024-01-01T00:00:00Z", "abc1234def")
}

func newTestRegistry() *command.Registry {
	fs := testutil.NewMockFileSystem()
	registry := command.NewRegistry()
	for _, cmd := range commands.Base(fs) {
		registry.Register(cmd)
	}
	for _, cmd := range commands.Operational(fs) {
		registry.Register(cmd)
	}
	return registry
}

// ============================================================================
// Parse Tests
// ============================================================================

func TestParseNoArgs(t *testing.T) {
	p := newTestParser()
	result := p.Parse([]string{})

	assert.Equal(t, ModeDefault, result.Mode)
	assert.Empty(t, result.Tokens)
	assert.False(t, result.ShowHelp())
}

func TestParseHelpFlags(t *testing.T) {
	p := newTestParser()

	for _, arg := range []string{"-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			result := p.Parse([]string{arg})
			assert.Equal(t, ModeHelp, result.Mode)
			assert.True(t, result.ShowHelp())
			assert.Empty(t, result.Tokens)
		})
	}
}

func TestParseVersionFlag(t *testing.T) {
	p := newTestParser()
	result := p.Parse([]string{"--version"})

	assert.Equal(t, ModeVersion, result.Mode)
	assert.Empty(t, result.Tokens)
}

func TestParseMetaFlagsOnlyWhenAlone(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name string
		args []string
	}{
		{"help after flag", []string{"-f", "a.txt", "-h"}},
		{"help before flag", []string{"--help", "-w"}},
		{"version with argument", []string{"--version", "x"}},
		{"single dash v", []string{"-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Parse(tt.args)
			assert.Equal(t, ModeRun, result.Mode)
			assert.Equal(t, tt.args, result.Tokens)
		})
	}
}

func TestParseRunCopiesTokens(t *testing.T) {
	p := newTestParser()
	args := []string{"-f", "a.txt", "-w"}

	result := p.Parse(args)
	require.Equal(t, ModeRun, result.Mode)
	args[0] = "-x"

	assert.Equal(t, []string{"-f", "a.txt", "-w"}, result.Tokens)
}

// ============================================================================
// Mode Tests
// ============================================================================

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeRun, "run"},
		{ModeHelp, "help"},
		{ModeVersion, "version"},
		{ModeDefault, "default"},
		{Mode(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestModeIsMeta(t *testing.T) {
	assert.True(t, ModeHelp.IsMeta())
	assert.True(t, ModeVersion.IsMeta())
	assert.False(t, ModeRun.IsMeta())
	assert.False(t, ModeDefault.IsMeta())
}

// ============================================================================
// Command Info Tests
// ============================================================================

func TestCommandsFollowRegistryOrder(t *testing.T) {
	infos := Commands(newTestRegistry())

	require.NotEmpty(t, infos)
	assert.Equal(t, "-f", infos[0].Caller)
	assert.Equal(t, "-i", infos[1].Caller)
	assert.Equal(t, "-o", infos[2].Caller)
	for _, info := range infos {
		assert.NotEmpty(t, info.Alias, "%s has no alias", info.Caller)
		assert.NotEmpty(t, info.Description, "%s has no description", info.Caller)
	}
}

func TestCommandInfoNames(t *testing.T) {
	assert.Equal(t, "-w, --words", CommandInfo{Caller: "-w", Alias: "--words"}.Names())
	assert.Equal(t, "-w", CommandInfo{Caller: "-w"}.Names())
	assert.Equal(t, "--words", CommandInfo{Alias: "--words"}.Names())
}

func TestCommandsEmptyRegistry(t *testing.T) {
	assert.Empty(t, Commands(command.NewRegistry()))
}

// ============================================================================
// Usage Tests
// ============================================================================

func TestUsageContainsAllCommands(t *testing.T) {
	p := newTestParser()
	registry := newTestRegistry()
	usage := p.Usage(registry)

	assert.True(t, strings.HasPrefix(usage, "pjatext - "))
	for _, cmd := range registry.Commands() {
		assert.Contains(t, usage, cmd.Caller()+", "+cmd.Alias())
	}
	assert.Contains(t, usage, "--help")
	assert.Contains(t, usage, "--version")
	assert.Contains(t, usage, "PJATEXT_ARGS")
}

func TestUsageAlignsDescriptions(t *testing.T) {
	p := newTestParser()
	usage := p.Usage(newTestRegistry())

	var column int
	inFlags := false
	for _, line := range strings.Split(usage, "\n") {
		if line == "Flags:" {
			inFlags = true
			continue
		}
		if !inFlags {
			continue
		}
		if line == "" {
			break
		}
		idx := strings.Index(line[2:], "  ")
		require.Greater(t, idx, 0, line)
		start := 2 + idx + len(line[2+idx:]) - len(strings.TrimLeft(line[2+idx:], " "))
		if column == 0 {
			column = start
		}
		assert.Equal(t, column, start, line)
	}
	assert.NotZero(t, column)
}

func TestPrintUsage(t *testing.T) {
	p := newTestParser()
	var buf bytes.Buffer
	p.SetOutput(&buf)

	registry := newTestRegistry()
	p.PrintUsage(registry)

	assert.Equal(t, p.Usage(registry), buf.String())
}

// ============================================================================
// Version Tests
// ============================================================================

func TestVersionString(t *testing.T) {
	p := newTestParser()
	v := p.VersionString()

	assert.Contains(t, v, "pjatext version 1.0.0")
	assert.Contains(t, v, "Build time: 2024-01-01T00:00:00Z")
	assert.Contains(t, v, "Git commit: abc1234\n")
	assert.NotContains(t, v, "abc1234def")
}

func TestVersionStringWithUnknown(t *testing.T) {
	p := NewParser("pjatext", "dev", "unknown", "")
	v := p.VersionString()

	assert.Equal(t, "pjatext version dev\n", v)
}

func TestPrintVersion(t *testing.T) {
	p := newTestParser()
	var buf bytes.Buffer
	p.SetOutput(&buf)

	p.PrintVersion()

	assert.Equal(t, p.VersionString(), buf.String())
}

func TestPrintWithoutOutputIsDiscarded(t *testing.T) {
	p := newTestParser()
	assert.NotPanics(t, func() {
		p.PrintVersion()
		p.PrintUsage(newTestRegistry())
	})
}

func TestVersionInfo(t *testing.T) {
	p := newTestParser()
	info := p.VersionInfo()

	assert.Equal(t, "1.0.0", info["version"])
	assert.Equal(t, "2024-01-01T00:00:00Z", info["buildTime"])
	assert.Equal(t, "abc1234def", info["gitCommit"])
}
