package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadTrimmed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hostname")
	if err := os.WriteFile(path, []byte("abcdef123456.onion\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := ReadTrimmed(path)
	if err != nil {
		t.Fatalf("ReadTrimmed failed: %v", err)
	}
	if got != "abcdef123456.onion" {
		t.Errorf("expected trimmed hostname, got %q", got)
	}
}

func TestWriteAtomicCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "secret")

	if err := WriteAtomic(path, []byte("value"), 0o600); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("expected %q, got %q", "value", string(data))
	}
}

func TestWriteAtomicOnceNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "password")

	first, err := WriteAtomicOnce(path, []byte("original\n"), 0o600)
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if first != "original" {
		t.Errorf("expected trimmed original value, got %q", first)
	}

	second, err := WriteAtomicOnce(path, []byte("replacement"), 0o600)
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if second != "original" {
		t.Errorf("existing file must win: expected %q, got %q", "original", second)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "original\n" {
		t.Errorf("file contents changed: got %q", string(data))
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists reported a missing file")
	}
	if Exists(dir) {
		t.Error("Exists must be false for directories")
	}
	if !DirExists(dir) {
		t.Error("DirExists must be true for directories")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if !Exists(path) {
		t.Error("Exists reported a present file as missing")
	}
}
