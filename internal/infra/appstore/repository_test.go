package appstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

const manifestYAML = `manifestVersion: "1"
id: bitcoin
name: Bitcoin Node
exports:
  - name: IP
    kind: address
    value: 10.21.22.2
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.BasePath = t.TempDir()
	return cfg
}

func installApp(t *testing.T, cfg *config.Config, appID string, manifest string) {
	t.Helper()
	appDir := filepath.Join(cfg.GetAppsPath(), appID)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatalf("Failed to create app directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, model.ManifestFilename), []byte(manifest), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
}

func TestGetApp(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "bitcoin", manifestYAML)
	store := NewAppStore(cfg)

	app, err := store.GetApp("bitcoin")
	if err != nil {
		t.Fatalf("GetApp failed: %v", err)
	}
	if app.ID != "bitcoin" {
		t.Errorf("Expected app id bitcoin, got %s", app.ID)
	}
	if app.DataDir != filepath.Join(cfg.GetAppDataPath(), "bitcoin") {
		t.Errorf("Unexpected data dir %s", app.DataDir)
	}
	if len(app.Manifest.Exports) != 1 {
		t.Errorf("Expected 1 export, got %d", len(app.Manifest.Exports))
	}
}

func TestGetAppNotInstalled(t *testing.T) {
	store := NewAppStore(testConfig(t))

	if _, err := store.GetApp("ghost"); err == nil {
		t.Fatal("Expected an error for a missing app")
	}
}

func TestGetAppRejectsMismatchedID(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "lightning", manifestYAML) // manifest still says bitcoin
	store := NewAppStore(cfg)

	if _, err := store.GetApp("lightning"); err == nil {
		t.Fatal("Expected an error when manifest id does not match directory")
	}
}

func TestGetAppRejectsNewerManifestVersion(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "bitcoin", "manifestVersion: \"99\"\nid: bitcoin\n")
	store := NewAppStore(cfg)

	if _, err := store.GetApp("bitcoin"); err == nil {
		t.Fatal("Expected an error for a manifest newer than supported")
	}
}

func TestGetAppsSkipsBrokenManifests(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "bitcoin", manifestYAML)
	installApp(t, cfg, "broken", "id: [not yaml")
	store := NewAppStore(cfg)

	apps, err := store.GetApps()
	if err != nil {
		t.Fatalf("GetApps failed: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "bitcoin" {
		t.Fatalf("Expected only bitcoin to load, got %d apps", len(apps))
	}
}

func TestInstallAndUninstall(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "bitcoin", manifestYAML)
	store := NewAppStore(cfg)

	if err := store.Install("bitcoin"); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	dataDir := filepath.Join(cfg.GetAppDataPath(), "bitcoin")
	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		t.Fatalf("Expected data directory after install: %v", err)
	}

	if err := store.Uninstall("bitcoin"); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}
	if _, err := os.Stat(dataDir); !os.IsNotExist(err) {
		t.Fatal("Expected data directory to be removed")
	}
}

func TestInstallRequiresManifest(t *testing.T) {
	store := NewAppStore(testConfig(t))

	if err := store.Install("ghost"); err == nil {
		t.Fatal("Expected install of an undelivered app to fail")
	}
}

func TestSettingsAreLoaded(t *testing.T) {
	cfg := testConfig(t)
	installApp(t, cfg, "bitcoin", manifestYAML)
	dataDir := filepath.Join(cfg.GetAppDataPath(), "bitcoin")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data directory: %v", err)
	}
	settings := filepath.Join(dataDir, model.SettingsFilename)
	if err := os.WriteFile(settings, []byte("network=testnet\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	store := NewAppStore(cfg)

	app, err := store.GetApp("bitcoin")
	if err != nil {
		t.Fatalf("GetApp failed: %v", err)
	}
	if value, ok := app.Setting("network"); !ok || value != "testnet" {
		t.Errorf("Expected network=testnet, got %q (ok=%v)", value, ok)
	}
}
