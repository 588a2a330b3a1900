package entropy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDeriveIsDeterministic(t *testing.T) {
	seed := []byte("test-seed")

	first, err := Derive(seed, "app-bitcoin-rpc-password")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	second, err := Derive(seed, "app-bitcoin-rpc-password")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if first != second {
		t.Errorf("same inputs produced different secrets: %q vs %q", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
	if first != strings.ToLower(first) {
		t.Errorf("expected lowercase hex, got %q", first)
	}
}

func TestDeriveInputsChangeOutput(t *testing.T) {
	base, _ := Derive([]byte("seed"), "app-demo-password")

	cases := []struct {
		name  string
		seed  []byte
		label string
	}{
		{"different label", []byte("seed"), "app-demo-token"},
		{"different purpose same app", []byte("seed"), "app-demo-password2"},
		{"different seed", []byte("other-seed"), "app-demo-password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Derive(tc.seed, tc.label)
			if err != nil {
				t.Fatalf("Derive failed: %v", err)
			}
			if got == base {
				t.Errorf("expected a different secret for %s", tc.name)
			}
		})
	}
}

func TestDeriveLongLabels(t *testing.T) {
	label := strings.Repeat("app-some-very-long-identifier-", 100)
	if _, err := Derive([]byte("seed"), label); err != nil {
		t.Fatalf("Derive must accept arbitrary label lengths: %v", err)
	}
}

func TestDeriveRequiresSeed(t *testing.T) {
	if _, err := Derive(nil, "label"); !errors.Is(err, ErrMissingSeed) {
		t.Errorf("expected ErrMissingSeed, got %v", err)
	}
	if _, err := Derive([]byte{}, "label"); !errors.Is(err, ErrMissingSeed) {
		t.Errorf("expected ErrMissingSeed for empty seed, got %v", err)
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSeed(filepath.Join(dir, "absent")); !errors.Is(err, ErrMissingSeed) {
			t.Errorf("expected ErrMissingSeed, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty")
		if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := LoadSeed(path); !errors.Is(err, ErrMissingSeed) {
			t.Errorf("expected ErrMissingSeed, got %v", err)
		}
	})

	t.Run("trims newline", func(t *testing.T) {
		path := filepath.Join(dir, "seed")
		if err := os.WriteFile(path, []byte("deadbeef\n"), 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		seed, err := LoadSeed(path)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}
		if string(seed) != "deadbeef" {
			t.Errorf("expected trimmed seed, got %q", seed)
		}
	})
}
