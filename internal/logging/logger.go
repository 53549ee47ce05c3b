package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tungetti/pjatext/internal/errors"
)

// Logger defines the interface for logging operations.
// The engine and the CLI depend on this interface only, so tests can
// substitute a recording implementation.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
	// WithPrefix returns a new Logger with the given prefix.
	WithPrefix(prefix string) Logger
	// WithFields returns a new Logger with the given fields added to all messages.
	WithFields(keyvals ...interface{}) Logger
	// SetLevel sets the minimum log level.
	SetLevel(level Level)
	// GetLevel returns the current log level.
	GetLevel() Level
}

// Options configures the logger.
type Options struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is the destination for log messages.
	Output io.Writer
	// TimeFormat is the format string for timestamps.
	TimeFormat string
	// Prefix is an optional prefix for all log messages.
	Prefix string
	// NoColor disables colorized output.
	NoColor bool
	// ReportTimestamp enables timestamp output.
	ReportTimestamp bool
}

// DefaultOptions returns the console defaults. Diagnostics go to stderr at
// warn level so the report on stdout stays the only regular output.
func DefaultOptions() Options {
	return Options{
		Level:           LevelWarn,
		Output:          os.Stderr,
		TimeFormat:      "15:04:05",
		NoColor:         false,
		ReportTimestamp: false,
	}
}

// FileOptions returns options for file logging (no color, full timestamp).
func FileOptions(w io.Writer) Options {
	return Options{
		Level:           LevelDebug,
		Output:          w,
		TimeFormat:      "2006-01-02 15:04:05",
		NoColor:         true,
		ReportTimestamp: true,
	}
}

// SetupOptions selects where the CLI logger writes.
type SetupOptions struct {
	// Level is the textual level from configuration (debug, info, warn, error).
	Level string
	// File, when set, redirects all log output to that path.
	File string
	// NoColor disables colour on the console logger.
	NoColor bool
	// Verbose lowers the console level to debug.
	Verbose bool
	// Quiet raises the console level to error.
	Quiet bool
}

// logger is the concrete implementation of Logger.
type logger struct {
	mu     sync.RWMutex
	impl   *log.Logger
	level  Level
	fields []interface{}
	prefix string
	output io.Writer
}

// New creates a new logger with the given options.
func New(opts Options) Logger {
	l := log.NewWithOptions(opts.Output, log.Options{
		TimeFormat:      opts.TimeFormat,
		Level:           toCharmLevel(opts.Level),
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
	})

	if opts.NoColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return &logger{
		impl:   l,
		level:  opts.Level,
		prefix: opts.Prefix,
		output: opts.Output,
	}
}

// NewNop returns a no-op logger that discards all output.
func NewNop() Logger {
	return &nopLogger{}
}

// NewFileLogger creates a logger that appends to the file at path.
// The returned closer releases the file handle.
func NewFileLogger(path string, level Level) (Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(errors.IO, "failed to open log file", err).
			WithOp("logging.NewFileLogger")
	}

	opts := FileOptions(file)
	opts.Level = level
	return New(opts), file, nil
}

// Setup builds the logger used by the command-line entry point.
// The closer is never nil; it is a no-op for console logging.
func Setup(opts SetupOptions) (Logger, io.Closer, error) {
	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = LevelDebug
	}
	if opts.Quiet {
		level = LevelError
	}

	console := DefaultOptions()
	console.Level = level
	console.NoColor = opts.NoColor

	if opts.File == "" {
		return New(console), nopCloser{}, nil
	}

	fileLogger, closer, err := NewFileLogger(opts.File, level)
	if err != nil {
		return nil, nil, err
	}
	if opts.Verbose {
		// Verbose runs mirror the file log on the console.
		return NewMultiLogger(fileLogger, New(console)), closer, nil
	}
	return fileLogger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewMultiLogger creates a logger that writes to multiple loggers.
func NewMultiLogger(loggers ...Logger) Logger {
	return &multiLogger{loggers: loggers}
}

func (l *logger) Debug(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level <= LevelDebug {
		l.impl.Debug(msg, append(l.fields, keyvals...)...)
	}
}

func (l *logger) Info(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level <= LevelInfo {
		l.impl.Info(msg, append(l.fields, keyvals...)...)
	}
}

func (l *logger) Warn(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level <= LevelWarn {
		l.impl.Warn(msg, append(l.fields, keyvals...)...)
	}
}

func (l *logger) Error(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	// Error is always logged regardless of level
	l.impl.Error(msg, append(l.fields, keyvals...)...)
}

func (l *logger) WithPrefix(prefix string) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &logger{
		impl:   l.impl.WithPrefix(prefix),
		level:  l.level,
		fields: l.fields,
		prefix: prefix,
		output: l.output,
	}
}

func (l *logger) WithFields(keyvals ...interface{}) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	newFields := make([]interface{}, len(l.fields)+len(keyvals))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], keyvals)

	return &logger{
		impl:   l.impl,
		level:  l.level,
		fields: newFields,
		prefix: l.prefix,
		output: l.output,
	}
}

func (l *logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.impl.SetLevel(toCharmLevel(level))
}

func (l *logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// toCharmLevel converts our Level to charmbracelet/log Level.
func toCharmLevel(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// nopLogger discards all log output.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, keyvals ...interface{}) {}
func (n *nopLogger) Info(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Warn(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Error(msg string, keyvals ...interface{}) {}
func (n *nopLogger) WithPrefix(prefix string) Logger          { return n }
func (n *nopLogger) WithFields(keyvals ...interface{}) Logger { return n }
func (n *nopLogger) SetLevel(level Level)                     {}
func (n *nopLogger) GetLevel() Level                          { return LevelInfo }

// multiLogger writes to multiple loggers.
type multiLogger struct {
	loggers []Logger
}

func (m *multiLogger) Debug(msg string, keyvals ...interface{}) {
	for _, l := range m.loggers {
		l.Debug(msg, keyvals...)
	}
}

func (m *multiLogger) Info(msg string, keyvals ...interface{}) {
	for _, l := range m.loggers {
		l.Info(msg, keyvals...)
	}
}

func (m *multiLogger) Warn(msg string, keyvals ...interface{}) {
	for _, l := range m.loggers {
		l.Warn(msg, keyvals...)
	}
}

func (m *multiLogger) Error(msg string, keyvals ...interface{}) {
	for _, l := range m.loggers {
		l.Error(msg, keyvals...)
	}
}

func (m *multiLogger) WithPrefix(prefix string) Logger {
	newLoggers := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		newLoggers[i] = l.WithPrefix(prefix)
	}
	return &multiLogger{loggers: newLoggers}
}

func (m *multiLogger) WithFields(keyvals ...interface{}) Logger {
	newLoggers := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		newLoggers[i] = l.WithFields(keyvals...)
	}
	return &multiLogger{loggers: newLoggers}
}

func (m *multiLogger) SetLevel(level Level) {
	for _, l := range m.loggers {
		l.SetLevel(level)
	}
}

func (m *multiLogger) GetLevel() Level {
	if len(m.loggers) > 0 {
		return m.loggers[0].GetLevel()
	}
	return LevelInfo
}
