package uninstall_app

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// UninstallAppHandler handles the UninstallAppCommand
type UninstallAppHandler struct {
	store repository.AppStore
}

// Handle executes the UninstallAppCommand
func (h *UninstallAppHandler) Handle(cmd UninstallAppCommand) error {
	if cmd.AppID == "" {
		return log.Errorf("app ID is required for uninstall app command")
	}
	return h.store.Uninstall(cmd.AppID)
}

// NewUninstallAppHandler creates a new UninstallAppHandler
func NewUninstallAppHandler(store repository.AppStore) *UninstallAppHandler {
	return &UninstallAppHandler{store: store}
}
