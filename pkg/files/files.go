package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/sys/atomicwriter"
)

// Exists returns true if path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir creates the directory (and parents) if it does not exist yet.
func EnsureDir(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// ReadTrimmed reads the file and returns its contents with surrounding
// whitespace removed. Runtime artifacts such as hidden service hostname
// files end with a newline that must never leak into exported values.
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteAtomic writes data to path via a temp file plus rename so a
// concurrent reader never observes partial contents. The parent directory
// is created when missing.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := atomicwriter.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteAtomicOnce writes data to path atomically unless the file already
// exists, in which case the existing contents are returned verbatim. This
// is the persistence primitive for one-time values: once written they are
// reused forever and never regenerated.
func WriteAtomicOnce(path string, data []byte, perm os.FileMode) (string, error) {
	if Exists(path) {
		return ReadTrimmed(path)
	}
	if err := WriteAtomic(path, data, perm); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
