package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveSortsAndQuotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	vars := map[string]string{
		"APP_DEMO_PASSWORD": "s3cret with spaces",
		"APP_DEMO_IP":       "10.21.22.2",
		"APP_DEMO_URL":      "key=value",
	}
	if err := Save(path, vars); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}

	expected := "APP_DEMO_IP=10.21.22.2\n" +
		"APP_DEMO_PASSWORD=\"s3cret with spaces\"\n" +
		"APP_DEMO_URL=\"key=value\"\n"
	if string(data) != expected {
		t.Errorf("unexpected file contents:\nwant %q\ngot  %q", expected, string(data))
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	vars := map[string]string{"B": "2", "A": "1", "C": "3"}

	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	if err := Save(first, vars); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := Save(second, vars); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if string(a) != string(b) {
		t.Errorf("identical inputs produced different files:\n%q\n%q", a, b)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	vars, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("Load of a missing file must not fail: %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("expected empty map, got %v", vars)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	saved := map[string]string{
		"APP_DEMO_HIDDEN_SERVICE": "notyetset.onion",
		"APP_DEMO_PASSWORD":       "plain",
	}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for k, want := range saved {
		if got := loaded[k]; got != want {
			t.Errorf("%s: expected %q, got %q", k, want, got)
		}
	}
}
