// Package testing provides shared test infrastructure for pjatext: a
// recording logger, an in-memory file system, text fixtures and assertions
// for command outputs and rendered reports.
package testing

import (
	"sort"
	"strings"
	"sync"

	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
	"github.com/tungetti/pjatext/internal/logging"
)

// ============================================================================
// MockLogger - Implements logging.Logger for testing
// ============================================================================

// LogMessage represents a recorded log message.
type LogMessage struct {
	Level   logging.Level
	Message string
	Fields  []interface{}
}

// MockLogger implements logging.Logger for testing purposes.
// It records all log messages for later inspection.
type MockLogger struct {
	mu       sync.Mutex
	messages []LogMessage
	level    logging.Level
	prefix   string
	fields   []interface{}
}

// NewMockLogger creates a new MockLogger with default settings.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: make([]LogMessage, 0),
		level:    logging.LevelDebug,
	}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, keyvals ...interface{}) {
	m.record(logging.LevelDebug, msg, keyvals)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, keyvals ...interface{}) {
	m.record(logging.LevelInfo, msg, keyvals)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, keyvals ...interface{}) {
	m.record(logging.LevelWarn, msg, keyvals)
}

// Error logs an error message.
func (m *MockLogger) Error(msg string, keyvals ...interface{}) {
	m.record(logging.LevelError, msg, keyvals)
}

// WithPrefix returns a new Logger with the given prefix.
// The new logger shares the message storage with the parent.
func (m *MockLogger) WithPrefix(prefix string) logging.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &childMockLogger{
		parent: m,
		prefix: prefix,
		fields: append([]interface{}{}, m.fields...),
	}
}

// WithFields returns a new Logger with the given fields added to all messages.
// The new logger shares the message storage with the parent.
func (m *MockLogger) WithFields(keyvals ...interface{}) logging.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()

	newFields := make([]interface{}, len(m.fields)+len(keyvals))
	copy(newFields, m.fields)
	copy(newFields[len(m.fields):], keyvals)

	return &childMockLogger{
		parent: m,
		prefix: m.prefix,
		fields: newFields,
	}
}

// childMockLogger is a logger that shares message storage with a parent MockLogger.
type childMockLogger struct {
	parent *MockLogger
	prefix string
	fields []interface{}
}

func (c *childMockLogger) Debug(msg string, keyvals ...interface{}) {
	c.parent.recordFromChild(logging.LevelDebug, c.prefix, msg, c.fields, keyvals)
}

func (c *childMockLogger) Info(msg string, keyvals ...interface{}) {
	c.parent.recordFromChild(logging.LevelInfo, c.prefix, msg, c.fields, keyvals)
}

func (c *childMockLogger) Warn(msg string, keyvals ...interface{}) {
	c.parent.recordFromChild(logging.LevelWarn, c.prefix, msg, c.fields, keyvals)
}

func (c *childMockLogger) Error(msg string, keyvals ...interface{}) {
	c.parent.recordFromChild(logging.LevelError, c.prefix, msg, c.fields, keyvals)
}

func (c *childMockLogger) WithPrefix(prefix string) logging.Logger {
	return &childMockLogger{
		parent: c.parent,
		prefix: prefix,
		fields: append([]interface{}{}, c.fields...),
	}
}

func (c *childMockLogger) WithFields(keyvals ...interface{}) logging.Logger {
	newFields := make([]interface{}, len(c.fields)+len(keyvals))
	copy(newFields, c.fields)
	copy(newFields[len(c.fields):], keyvals)

	return &childMockLogger{
		parent: c.parent,
		prefix: c.prefix,
		fields: newFields,
	}
}

func (c *childMockLogger) SetLevel(level logging.Level) {
	c.parent.SetLevel(level)
}

func (c *childMockLogger) GetLevel() logging.Level {
	return c.parent.GetLevel()
}

// recordFromChild records a message from a child logger.
func (m *MockLogger) recordFromChild(level logging.Level, prefix, msg string, persistentFields, keyvals []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if level < m.level {
		return
	}

	allFields := append([]interface{}{}, persistentFields...)
	allFields = append(allFields, keyvals...)

	fullMsg := msg
	if prefix != "" {
		fullMsg = prefix + ": " + msg
	}

	m.messages = append(m.messages, LogMessage{
		Level:   level,
		Message: fullMsg,
		Fields:  allFields,
	})
}

// SetLevel sets the minimum log level.
func (m *MockLogger) SetLevel(level logging.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// GetLevel returns the current log level.
func (m *MockLogger) GetLevel() logging.Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// record stores a log message.
func (m *MockLogger) record(level logging.Level, msg string, keyvals []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if level < m.level {
		return
	}

	allFields := append([]interface{}{}, m.fields...)
	allFields = append(allFields, keyvals...)

	fullMsg := msg
	if m.prefix != "" {
		fullMsg = m.prefix + ": " + msg
	}

	m.messages = append(m.messages, LogMessage{
		Level:   level,
		Message: fullMsg,
		Fields:  allFields,
	})
}

// Messages returns all recorded log messages.
func (m *MockLogger) Messages() []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogMessage{}, m.messages...)
}

// MessagesAtLevel returns all messages at a specific log level.
func (m *MockLogger) MessagesAtLevel(level logging.Level) []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []LogMessage
	for _, msg := range m.messages {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// Clear removes all recorded messages.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = m.messages[:0]
}

// ContainsMessage checks if any recorded message contains the given substring.
func (m *MockLogger) ContainsMessage(substring string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, msg := range m.messages {
		if strings.Contains(msg.Message, substring) {
			return true
		}
	}
	return false
}

// ContainsMessageAtLevel checks if any message at the given level contains the substring.
func (m *MockLogger) ContainsMessageAtLevel(level logging.Level, substring string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, msg := range m.messages {
		if msg.Level == level && strings.Contains(msg.Message, substring) {
			return true
		}
	}
	return false
}

// MessageCount returns the total number of recorded messages.
func (m *MockLogger) MessageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// Ensure MockLogger implements logging.Logger.
var _ logging.Logger = (*MockLogger)(nil)

// ============================================================================
// MockFileSystem - Implements fileio.FileSystem in memory
// ============================================================================

// FileWrite records one write made through a MockFileSystem.
type FileWrite struct {
	Path    string
	Content string
}

// MockFileSystem is an in-memory fileio.FileSystem.
// Writes replace the stored content and are recorded in order.
type MockFileSystem struct {
	mu        sync.Mutex
	files     map[string]string
	writes    []FileWrite
	reads     []string
	sizeError  error
	writeError error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string]string)}
}

// WithFile adds a file and returns the mock for chaining.
func (m *MockFileSystem) WithFile(path, content string) *MockFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
	return m
}

// SetSizeError makes every Size call fail with err.
func (m *MockFileSystem) SetSizeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizeError = err
}

// SetWriteError makes every write fail with err. WriteUnchecked drops the
// failure like the real file system does.
func (m *MockFileSystem) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// Remove deletes a file.
func (m *MockFileSystem) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

// Exists reports whether path is stored.
func (m *MockFileSystem) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// ReadUnchecked returns the stored content, or "" for unknown paths.
func (m *MockFileSystem) ReadUnchecked(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, path)
	return m.files[path]
}

// Write stores content at path unless a write error is set.
func (m *MockFileSystem) Write(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeError != nil {
		return m.writeError
	}
	m.files[path] = content
	m.writes = append(m.writes, FileWrite{Path: path, Content: content})
	return nil
}

// WriteUnchecked is Write without the error.
func (m *MockFileSystem) WriteUnchecked(path, content string) {
	_ = m.Write(path, content)
}

// Size returns the byte length of the stored content.
func (m *MockFileSystem) Size(path string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sizeError != nil {
		return 0, m.sizeError
	}
	content, ok := m.files[path]
	if !ok {
		return 0, errors.ErrFileNotFound
	}
	return int64(len(content)), nil
}

// Content returns the stored content of path.
func (m *MockFileSystem) Content(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	return content, ok
}

// Writes returns all recorded writes.
func (m *MockFileSystem) Writes() []FileWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]FileWrite{}, m.writes...)
}

// Reads returns the paths passed to ReadUnchecked, in order.
func (m *MockFileSystem) Reads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.reads...)
}

// Paths returns the stored paths in sorted order.
func (m *MockFileSystem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Ensure MockFileSystem implements fileio.FileSystem.
var _ fileio.FileSystem = (*MockFileSystem)(nil)
