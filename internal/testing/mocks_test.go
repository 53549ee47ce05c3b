package testing

import (
	stdtesting "testing"

	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/logging"
)

// ============================================================================
// MockLogger Tests
// ============================================================================

func TestMockLogger_BasicLogging(t *stdtesting.T) {
	logger := NewMockLogger()

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	messages := logger.Messages()
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}

	if messages[0].Level != logging.LevelDebug {
		t.Errorf("expected first message at debug level, got %s", messages[0].Level)
	}
	if messages[3].Level != logging.LevelError {
		t.Errorf("expected fourth message at error level, got %s", messages[3].Level)
	}
}

func TestMockLogger_SetLevel(t *stdtesting.T) {
	logger := NewMockLogger()
	logger.SetLevel(logging.LevelWarn)

	logger.Debug("debug - should be filtered")
	logger.Warn("warn - should appear")

	if logger.MessageCount() != 1 {
		t.Errorf("expected 1 message, got %d", logger.MessageCount())
	}
	if !logger.ContainsMessageAtLevel(logging.LevelWarn, "should appear") {
		t.Error("expected warn message to be recorded")
	}
}

func TestMockLogger_ChildSharesStorage(t *stdtesting.T) {
	logger := NewMockLogger()

	logger.WithPrefix("engine").WithFields("run", 1).Debug("flag validated", "flag", "-w")

	messages := logger.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Message != "engine: flag validated" {
		t.Errorf("unexpected message %q", messages[0].Message)
	}
	if len(messages[0].Fields) != 4 {
		t.Errorf("expected 4 fields, got %d", len(messages[0].Fields))
	}

	logger.Clear()
	if logger.MessageCount() != 0 {
		t.Errorf("expected no messages after Clear, got %d", logger.MessageCount())
	}
}

// ============================================================================
// MockFileSystem Tests
// ============================================================================

func TestMockFileSystem_ReadWrite(t *stdtesting.T) {
	fs := NewMockFileSystem().WithFile("a.txt", "hello")

	if !fs.Exists("a.txt") {
		t.Error("expected a.txt to exist")
	}
	if fs.Exists("b.txt") {
		t.Error("expected b.txt to be missing")
	}
	if got := fs.ReadUnchecked("a.txt"); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	if got := fs.ReadUnchecked("b.txt"); got != "" {
		t.Errorf("expected empty read for missing file, got %q", got)
	}

	fs.WriteUnchecked("out.txt", "first")
	fs.WriteUnchecked("out.txt", "second")

	content, ok := fs.Content("out.txt")
	if !ok || content != "second" {
		t.Errorf("expected out.txt to hold %q, got %q (exists: %v)", "second", content, ok)
	}
	if writes := fs.Writes(); len(writes) != 2 {
		t.Errorf("expected 2 writes, got %d", len(writes))
	}
	if reads := fs.Reads(); len(reads) != 2 || reads[0] != "a.txt" {
		t.Errorf("unexpected reads %v", reads)
	}
	if paths := fs.Paths(); len(paths) != 2 || paths[0] != "a.txt" || paths[1] != "out.txt" {
		t.Errorf("unexpected paths %v", paths)
	}
}

func TestMockFileSystem_WriteError(t *stdtesting.T) {
	fs := NewMockFileSystem()
	fs.SetWriteError(errors.New(errors.IO, "disk full"))

	if err := fs.Write("out.txt", "report"); err == nil {
		t.Error("expected write error")
	}
	fs.WriteUnchecked("out.txt", "report")
	if fs.Exists("out.txt") {
		t.Error("expected failed writes to store nothing")
	}
	if writes := fs.Writes(); len(writes) != 0 {
		t.Errorf("expected no recorded writes, got %d", len(writes))
	}

	fs.SetWriteError(nil)
	if err := fs.Write("out.txt", "report"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMockFileSystem_Size(t *stdtesting.T) {
	fs := NewMockFileSystem().WithFile("a.txt", "12345")

	size, err := fs.Size("a.txt")
	if err != nil || size != 5 {
		t.Errorf("expected size 5, got %d (err: %v)", size, err)
	}

	if _, err := fs.Size("missing.txt"); !errors.IsCode(err, errors.Resource) {
		t.Errorf("expected resource error, got %v", err)
	}

	fs.Remove("a.txt")
	if fs.Exists("a.txt") {
		t.Error("expected a.txt to be removed")
	}

	fs.WithFile("b.txt", "x")
	fs.SetSizeError(errors.New(errors.IO, "stat failed"))
	if _, err := fs.Size("b.txt"); !errors.IsCode(err, errors.IO) {
		t.Errorf("expected injected IO error, got %v", err)
	}
}
