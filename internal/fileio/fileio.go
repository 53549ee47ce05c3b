// Package fileio provides the file system collaborator used by the engine
// and its commands. The unchecked variants swallow failures so that command
// code can treat I/O as infallible once a path has been validated.
package fileio

import (
	"os"

	"github.com/tungetti/pjatext/internal/errors"
)

// FileSystem is the set of file operations commands rely on.
type FileSystem interface {
	// Exists reports whether path names an existing file.
	Exists(path string) bool
	// ReadUnchecked returns the file contents, or "" when it cannot be read.
	ReadUnchecked(path string) string
	// WriteUnchecked truncates path and writes content, ignoring failures.
	WriteUnchecked(path, content string)
	// Write truncates path and writes content.
	Write(path, content string) error
	// Size returns the file size in bytes.
	Size(path string) (int64, error)
}

// OS implements FileSystem on the host file system.
type OS struct{}

// NewOS returns the host file system.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether path exists and is not a directory.
func (OS) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Read returns the contents of path.
func (OS) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.Resource, "file not found", err).WithOp("fileio.Read")
		}
		return "", errors.Wrap(errors.IO, "read failed", err).WithOp("fileio.Read")
	}
	return string(data), nil
}

// Write truncates path and writes content to it, creating the file if needed.
func (OS) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrap(errors.IO, "write failed", err).WithOp("fileio.Write")
	}
	return nil
}

func (o OS) ReadUnchecked(path string) string {
	content, _ := o.Read(path)
	return content
}

func (o OS) WriteUnchecked(path, content string) {
	_ = o.Write(path, content)
}

// Size returns the size of path in bytes.
func (OS) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrap(errors.Resource, "file not found", err).WithOp("fileio.Size")
		}
		return 0, errors.Wrap(errors.IO, "stat failed", err).WithOp("fileio.Size")
	}
	return info.Size(), nil
}

// Compile-time check.
var _ FileSystem = OS{}
