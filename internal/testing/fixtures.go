package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================================
// Source Text Fixtures
// ============================================================================

// SampleText is a short multi-line source with words, digits and numbers.
//
//	words:    12
//	newlines: 3
//	digits:   7
//	numbers:  3 ("42", "7.", "100")
const SampleText = `the quick fox 42
jumped over 7. lazy
dogs x1 100 times
`

// AnagramText contains "tac" (an anagram of "cat" and "act") and "dog".
const AnagramText = "tac dog"

// PalindromeText contains words whose reversals are common words.
const PalindromeText = "god live star stop"

// UnsortedText mixes word lengths and orders for sorting tests.
const UnsortedText = "pear fig banana kiwi apple"

// ============================================================================
// Command Line Fixtures
// ============================================================================

// CommandFile renders tokens as the contents of an input redirection file,
// one token per line.
func CommandFile(tokens ...string) string {
	return strings.Join(tokens, "\n") + "\n"
}

// ============================================================================
// TempDirBuilder - Create temporary directories with files for testing
// ============================================================================

// TempDirBuilder helps create temporary directories with files for testing.
type TempDirBuilder struct {
	files map[string]string
}

// NewTempDirBuilder creates a new TempDirBuilder.
func NewTempDirBuilder() *TempDirBuilder {
	return &TempDirBuilder{
		files: make(map[string]string),
	}
}

// WithFile adds a file with the given path and content.
// Path is relative to the temp directory root.
func (b *TempDirBuilder) WithFile(path, content string) *TempDirBuilder {
	b.files[path] = content
	return b
}

// WithSource adds the source text file "source.txt".
func (b *TempDirBuilder) WithSource(content string) *TempDirBuilder {
	return b.WithFile("source.txt", content)
}

// WithCommands adds "cmds.txt" holding tokens for input redirection.
func (b *TempDirBuilder) WithCommands(tokens ...string) *TempDirBuilder {
	return b.WithFile("cmds.txt", CommandFile(tokens...))
}

// Build creates the temporary directory with all configured files.
// The directory is removed when the test ends.
func (b *TempDirBuilder) Build(t testing.TB) string {
	t.Helper()

	tmpDir := t.TempDir()

	for path, content := range b.files {
		fullPath := filepath.Join(tmpDir, path)

		dir := filepath.Dir(fullPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file %s: %v", fullPath, err)
		}
	}

	return tmpDir
}
