package command

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/await_ready"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/install_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/resolve_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/resolve_apps"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/uninstall_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/cqrs"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// RegisterCommandHandlers wires every command handler into the bus.
func RegisterCommandHandlers(
	b cqrs.CommandBus,
	cfg *config.Config,
	store repository.AppStore,
	runtime repository.AppRuntime,
	networks repository.NetworkRepository,
	r *resolver.Resolver,
) error {
	if err := b.Register(resolve_app.NewResolveAppHandler(store, r)); err != nil {
		return log.Errorf("failed to register resolve app handler: %v", err)
	}

	if err := b.Register(resolve_apps.NewResolveAppsHandler(cfg, store, networks, r)); err != nil {
		return log.Errorf("failed to register resolve apps handler: %v", err)
	}

	if err := b.Register(await_ready.NewAwaitReadyHandler(cfg, store, runtime)); err != nil {
		return log.Errorf("failed to register await ready handler: %v", err)
	}

	if err := b.Register(install_app.NewInstallAppHandler(store, r)); err != nil {
		return log.Errorf("failed to register install app handler: %v", err)
	}

	if err := b.Register(uninstall_app.NewUninstallAppHandler(store)); err != nil {
		return log.Errorf("failed to register uninstall app handler: %v", err)
	}

	return nil
}
