package testing

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// Process Stream Helpers
// ============================================================================

// CaptureOutput runs fn with os.Stdout and os.Stderr redirected to pipes and
// returns what fn wrote to each. Writers bound before the call still see the
// original streams.
func CaptureOutput(t testing.TB, fn func()) (stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stderr pipe: %v", err)
	}

	savedOut, savedErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() {
		os.Stdout, os.Stderr = savedOut, savedErr
	}()

	drain := func(r *os.File) <-chan string {
		ch := make(chan string, 1)
		go func() {
			data, _ := io.ReadAll(r)
			_ = r.Close()
			ch <- string(data)
		}()
		return ch
	}
	outC, errC := drain(outR), drain(errR)

	fn()

	_ = outW.Close()
	_ = errW.Close()
	return <-outC, <-errC
}

// ============================================================================
// Temporary File Helpers
// ============================================================================

// TempFile writes content to a new file in a per-test directory and returns
// its path. The directory is removed when the test ends.
func TempFile(t testing.TB, content string) string {
	t.Helper()
	return TempFileWithName(t, "source.txt", content)
}

// TempFileWithName is TempFile with a chosen base name.
func TempFileWithName(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// TempDirWithFiles creates a temporary directory holding files, keyed by
// path relative to the directory.
func TempDirWithFiles(t testing.TB, files map[string]string) string {
	t.Helper()

	builder := NewTempDirBuilder()
	for name, content := range files {
		builder.WithFile(name, content)
	}

	return builder.Build(t)
}
