package repository

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// AppStore provides access to installed applications and their persisted state.
type AppStore interface {
	// GetApp loads a single installed application with its manifest and settings.
	GetApp(appID string) (*model.App, error)

	// GetApps loads every installed application.
	GetApps() ([]*model.App, error)

	// IsInstalled reports whether the application is registered on this host.
	IsInstalled(appID string) bool

	// Install registers the application and creates its private data directory.
	Install(appID string) error

	// Uninstall removes the application's registration and its data directory.
	Uninstall(appID string) error
}
