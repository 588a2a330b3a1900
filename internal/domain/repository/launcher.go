package repository

import (
	"context"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// Launcher materializes an application's compose services. The platform only
// ever asks it to start named services detached; everything past "asked to
// start" belongs to the launcher.
type Launcher interface {
	// StartServices starts the named services of the app detached, without
	// bringing up their declared dependencies.
	StartServices(ctx context.Context, app *model.App, services []string) error
}
