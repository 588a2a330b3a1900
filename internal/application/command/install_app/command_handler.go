package install_app

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// InstallAppHandler handles the InstallAppCommand
type InstallAppHandler struct {
	store    repository.AppStore
	resolver *resolver.Resolver
}

// Handle executes the InstallAppCommand. The fresh install is resolved right
// away so its env file exists before the launcher first materializes it.
func (h *InstallAppHandler) Handle(cmd InstallAppCommand) error {
	if cmd.AppID == "" {
		return log.Errorf("app ID is required for install app command")
	}

	if err := h.store.Install(cmd.AppID); err != nil {
		return err
	}

	app, err := h.store.GetApp(cmd.AppID)
	if err != nil {
		return err
	}
	if _, err := h.resolver.ResolveApp(app); err != nil {
		return err
	}

	log.Info("app installed and resolved", "app_id", cmd.AppID)
	return nil
}

// NewInstallAppHandler creates a new InstallAppHandler
func NewInstallAppHandler(store repository.AppStore, r *resolver.Resolver) *InstallAppHandler {
	return &InstallAppHandler{store: store, resolver: r}
}
