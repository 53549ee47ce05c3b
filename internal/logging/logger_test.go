package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/pjatext/internal/errors"
)

// newBufferLogger returns a colourless logger writing to a buffer.
func newBufferLogger(level Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	opts.Level = level
	opts.NoColor = true
	return New(opts), &buf
}

// =============================================================================
// Levels
// =============================================================================

func TestLevelRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			assert.Equal(t, level, ParseLevel(level.String()))
		})
	}
	assert.Equal(t, "unknown", Level(42).String())
}

func TestParseLevelAliases(t *testing.T) {
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestToCharmLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, toCharmLevel(LevelDebug))
	assert.Equal(t, log.InfoLevel, toCharmLevel(LevelInfo))
	assert.Equal(t, log.WarnLevel, toCharmLevel(LevelWarn))
	assert.Equal(t, log.ErrorLevel, toCharmLevel(LevelError))
	assert.Equal(t, log.InfoLevel, toCharmLevel(Level(-3)))
}

// =============================================================================
// Options
// =============================================================================

func TestDefaultOptionsKeepStdoutFree(t *testing.T) {
	opts := DefaultOptions()

	assert.Same(t, os.Stderr, opts.Output)
	assert.Equal(t, LevelWarn, opts.Level)
	assert.False(t, opts.ReportTimestamp)
}

func TestFileOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := FileOptions(&buf)

	assert.Equal(t, &buf, opts.Output)
	assert.True(t, opts.NoColor)
	assert.True(t, opts.ReportTimestamp)
	assert.Equal(t, LevelDebug, opts.Level)
}

// =============================================================================
// Logger
// =============================================================================

func TestLoggerFiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("flag validated")
	logger.Info("instruction built")
	logger.Warn("command failed", "flag", "-si")
	logger.Error("command panicked")

	out := buf.String()
	assert.NotContains(t, out, "flag validated")
	assert.NotContains(t, out, "instruction built")
	assert.Contains(t, out, "command failed")
	assert.Contains(t, out, "flag=-si")
	assert.Contains(t, out, "command panicked")
}

func TestLoggerErrorIgnoresLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)
	logger.SetLevel(LevelError)

	logger.Error("report not written")

	assert.Contains(t, buf.String(), "report not written")
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)

	logger.Debug("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debug("shown")

	assert.Equal(t, LevelDebug, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerWithPrefix(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.WithPrefix("engine").Info("run aborted")
	logger.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "engine")
	assert.NotContains(t, lines[1], "engine")
}

func TestLoggerWithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	child := logger.WithFields("run", 1).WithFields("file", "notes.txt")
	child.Info("source bound", "size", "12 B")
	logger.Info("parent")

	out := buf.String()
	assert.Contains(t, out, "run=1")
	assert.Contains(t, out, "file=notes.txt")
	assert.Contains(t, out, `size="12 B"`)

	parentLine := strings.Split(strings.TrimSpace(out), "\n")[1]
	assert.NotContains(t, parentLine, "run=1")
}

func TestLoggerConcurrentUse(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("tick", "n", n)
			if n%2 == 0 {
				logger.SetLevel(LevelDebug)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, strings.Count(buf.String(), "tick"))
}

// =============================================================================
// Nop and Multi
// =============================================================================

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Debug("x")
		logger.Info("x")
		logger.Warn("x")
		logger.Error("x")
		logger.SetLevel(LevelError)
	})
	assert.Same(t, logger, logger.WithPrefix("engine"))
	assert.Same(t, logger, logger.WithFields("k", "v"))
	assert.Equal(t, LevelInfo, logger.GetLevel())
}

func TestMultiLoggerFansOut(t *testing.T) {
	first, firstBuf := newBufferLogger(LevelDebug)
	second, secondBuf := newBufferLogger(LevelError)
	multi := NewMultiLogger(first, second)

	multi.WithPrefix("engine").WithFields("run", 7).Warn("command failed")
	multi.Error("boom")

	assert.Contains(t, firstBuf.String(), "command failed")
	assert.Contains(t, firstBuf.String(), "run=7")
	assert.NotContains(t, secondBuf.String(), "command failed")
	assert.Contains(t, secondBuf.String(), "boom")
	assert.Equal(t, LevelDebug, multi.GetLevel())

	multi.SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, first.GetLevel())
	assert.Equal(t, LevelWarn, second.GetLevel())
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()

	assert.NotPanics(t, func() { multi.Info("nothing") })
	assert.Equal(t, LevelInfo, multi.GetLevel())
}

// =============================================================================
// File logger and Setup
// =============================================================================

func TestFileLoggerAppends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pjatext.log")

	for _, msg := range []string{"first run", "second run"} {
		logger, closer, err := NewFileLogger(logPath, LevelInfo)
		require.NoError(t, err)
		logger.Info(msg, "flags", 3)
		require.NoError(t, closer.Close())
	}

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
	assert.Contains(t, string(content), "flags=3")
}

func TestFileLoggerUnwritablePath(t *testing.T) {
	logger, closer, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "pjatext.log"), LevelInfo)

	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Nil(t, closer)
	assert.True(t, errors.IsCode(err, errors.IO))
}

func TestSetupConsole(t *testing.T) {
	tests := []struct {
		name     string
		opts     SetupOptions
		expected Level
	}{
		{"configured level", SetupOptions{Level: "info"}, LevelInfo},
		{"verbose wins", SetupOptions{Level: "error", Verbose: true}, LevelDebug},
		{"quiet wins", SetupOptions{Level: "debug", Quiet: true}, LevelError},
		{"unknown level", SetupOptions{Level: "loud"}, LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := Setup(tt.opts)
			require.NoError(t, err)
			require.NotNil(t, closer)
			assert.NoError(t, closer.Close())
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestSetupFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pjatext.log")

	logger, closer, err := Setup(SetupOptions{Level: "debug", File: logPath})
	require.NoError(t, err)

	logger.Debug("engine started", "flags", 2)
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "engine started")
	assert.Contains(t, string(content), "flags=2")
}

func TestSetupFileVerbose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pjatext.log")

	logger, closer, err := Setup(SetupOptions{File: logPath, Verbose: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	_, isMulti := logger.(*multiLogger)
	assert.True(t, isMulti)
	assert.Equal(t, LevelDebug, logger.GetLevel())
}

func TestSetupFileError(t *testing.T) {
	_, _, err := Setup(SetupOptions{File: filepath.Join(t.TempDir(), "missing", "pjatext.log")})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.IO))
}
