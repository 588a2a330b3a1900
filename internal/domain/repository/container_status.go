package repository

import (
	"context"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// ContainerStatusRepository answers runtime status questions about app containers.
type ContainerStatusRepository interface {
	// GetAppStatus returns the status of a specific application.
	GetAppStatus(ctx context.Context, appID string) (model.GetAppStatusResult, error)

	// GetAppsStatus returns the status of all installed applications.
	GetAppsStatus(ctx context.Context) (model.GetAppsStatusResult, error)

	// IsServiceRunning reports whether the named service of the app has a
	// running container.
	IsServiceRunning(ctx context.Context, appID string, service string) (bool, error)
}
