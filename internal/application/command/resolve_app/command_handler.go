package resolve_app

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// ResolveAppHandler handles the ResolveAppCommand
type ResolveAppHandler struct {
	store    repository.AppStore
	resolver *resolver.Resolver
}

// Handle executes the ResolveAppCommand
func (h *ResolveAppHandler) Handle(cmd ResolveAppCommand) error {
	if cmd.AppID == "" {
		return log.Errorf("app ID is required for resolve app command")
	}

	app, err := h.store.GetApp(cmd.AppID)
	if err != nil {
		return err
	}

	entries, err := h.resolver.ResolveApp(app)
	if err != nil {
		return err
	}

	log.Info("app resolved", "app_id", app.ID, "entries", len(entries))
	return nil
}

// NewResolveAppHandler creates a new ResolveAppHandler
func NewResolveAppHandler(store repository.AppStore, r *resolver.Resolver) *ResolveAppHandler {
	return &ResolveAppHandler{store: store, resolver: r}
}
