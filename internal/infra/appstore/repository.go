// Package appstore loads installed applications from the platform's apps
// directory. An app is installed when its installation directory carries a
// manifest; the store only manages the private data directory next to it.
package appstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/env"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/version"
)

// MaxManifestVersion is the newest manifest format this build understands.
// Manifests written for a newer platform are rejected instead of being
// half-interpreted.
const MaxManifestVersion = "1"

type fsAppStore struct {
	config *config.Config
}

// Compile-time assertion that *fsAppStore implements the interface.
var _ repository.AppStore = (*fsAppStore)(nil)

// NewAppStore creates an AppStore backed by the platform's apps and
// app-data directories.
func NewAppStore(cfg *config.Config) repository.AppStore {
	return &fsAppStore{config: cfg}
}

func (s *fsAppStore) GetApp(appID string) (*model.App, error) {
	appDir := filepath.Join(s.config.GetAppsPath(), appID)
	manifestPath := filepath.Join(appDir, model.ManifestFilename)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewConfigurationError(appID, "app is not installed", nil)
		}
		return nil, model.NewConfigurationError(appID, "failed to read manifest", err)
	}

	manifest, err := model.ParseManifest(data)
	if err != nil {
		return nil, model.NewConfigurationError(appID, "invalid manifest", err)
	}
	if manifest.ID != appID {
		return nil, model.NewConfigurationError(appID, fmt.Sprintf("manifest id %q does not match directory", manifest.ID), nil)
	}
	if version.Numeric(manifest.ManifestVersion) > version.Numeric(MaxManifestVersion) {
		return nil, model.NewConfigurationError(appID,
			fmt.Sprintf("manifest version %s is newer than supported %s", manifest.ManifestVersion, MaxManifestVersion), nil)
	}

	app := &model.App{
		ID:       appID,
		Dir:      appDir,
		DataDir:  filepath.Join(s.config.GetAppDataPath(), appID),
		Manifest: manifest,
	}

	settings, err := env.Load(filepath.Join(app.DataDir, model.SettingsFilename))
	if err != nil {
		return nil, model.NewConfigurationError(appID, "failed to read settings", err)
	}
	app.Settings = settings

	return app, nil
}

// GetApps loads every installed app in id order. Apps with broken manifests
// are skipped with a log entry so one bad app cannot take down a boot pass.
func (s *fsAppStore) GetApps() ([]*model.App, error) {
	entries, err := os.ReadDir(s.config.GetAppsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read apps directory: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)

	apps := make([]*model.App, 0, len(ids))
	for _, id := range ids {
		if !files.Exists(filepath.Join(s.config.GetAppsPath(), id, model.ManifestFilename)) {
			continue
		}
		app, err := s.GetApp(id)
		if err != nil {
			log.Error("skipping app with unusable manifest", "app_id", id, "error", err)
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (s *fsAppStore) IsInstalled(appID string) bool {
	return files.Exists(filepath.Join(s.config.GetAppsPath(), appID, model.ManifestFilename))
}

// Install creates the app's private data directory. The installation
// directory with its manifest and compose files is delivered by the
// packaging layer, not by this store.
func (s *fsAppStore) Install(appID string) error {
	if !s.IsInstalled(appID) {
		return model.NewConfigurationError(appID, "no manifest found in apps directory", nil)
	}
	dataDir := filepath.Join(s.config.GetAppDataPath(), appID)
	if err := files.EnsureDir(dataDir); err != nil {
		return fmt.Errorf("failed to create data directory for %s: %w", appID, err)
	}
	log.Info("app installed", "app_id", appID, "data_dir", dataDir)
	return nil
}

// Uninstall removes the app's private data directory, including its one-time
// secrets. Derived secrets are a pure function of the seed and come back
// identical on reinstall; generated values do not.
func (s *fsAppStore) Uninstall(appID string) error {
	dataDir := filepath.Join(s.config.GetAppDataPath(), appID)
	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("failed to remove data directory for %s: %w", appID, err)
	}
	log.Info("app uninstalled", "app_id", appID)
	return nil
}
