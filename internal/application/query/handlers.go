package query

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/query/get_app_env"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/query/get_apps_status"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/cqrs"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// RegisterQueryHandlers wires every query handler into the bus.
func RegisterQueryHandlers(b cqrs.QueryBus, store repository.AppStore, status repository.ContainerStatusRepository) error {
	if err := b.Register(get_app_env.NewGetAppEnvQueryHandler(store)); err != nil {
		return log.Errorf("failed to register get app env query handler: %v", err)
	}

	if err := b.Register(get_apps_status.NewGetAppsStatusQueryHandler(status)); err != nil {
		return log.Errorf("failed to register get apps status query handler: %v", err)
	}

	return nil
}
