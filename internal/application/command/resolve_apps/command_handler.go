package resolve_apps

import (
	"errors"

	"github.com/google/uuid"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/apps"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// ResolveAppsHandler handles the ResolveAppsCommand
type ResolveAppsHandler struct {
	config   *config.Config
	store    repository.AppStore
	networks repository.NetworkRepository
	resolver *resolver.Resolver
}

// Handle executes the ResolveAppsCommand.
//
// A ConfigurationError is fatal for the affected app only: it is logged and
// the pass continues with the remaining apps. A ConflictError aborts the
// whole pass because it indicates a platform-wide misconfiguration.
func (h *ResolveAppsHandler) Handle(cmd ResolveAppsCommand) error {
	passID := uuid.NewString()
	log.Info("starting resolution pass", "pass_id", passID)

	if h.config.IsFeatureEnabled(config.FeatureDockerNetworks) {
		network := model.Network{Name: h.config.GetNetworkName(), Subnet: h.config.GetNetworkSubnet()}
		if err := h.networks.EnsureNetwork(network); err != nil {
			// Resolution itself only writes files; a missing network is a
			// launcher problem, not a resolution one.
			log.Warn("could not ensure platform network", "pass_id", passID, "network", network.Name, "error", err)
		}
	}

	installed, err := h.store.GetApps()
	if err != nil {
		return log.Errorf("failed to load installed apps: %v", err)
	}

	ordered, acyclic := apps.Order(installed)
	if !acyclic {
		log.Warn("dependency cycle between apps, forward references inside the cycle stay unresolved", "pass_id", passID)
	}

	resolved := 0
	for _, app := range ordered {
		if _, err := h.resolver.ResolveApp(app); err != nil {
			var conflict *model.ConflictError
			if errors.As(err, &conflict) {
				log.Error("resolution pass aborted on conflict", "pass_id", passID, "app_id", app.ID, "error", err)
				return err
			}
			log.Error("app resolution failed", "pass_id", passID, "app_id", app.ID, "error", err)
			continue
		}
		resolved++
	}

	log.Info("resolution pass finished", "pass_id", passID, "apps", len(ordered), "resolved", resolved)
	return nil
}

// NewResolveAppsHandler creates a new ResolveAppsHandler
func NewResolveAppsHandler(cfg *config.Config, store repository.AppStore, networks repository.NetworkRepository, r *resolver.Resolver) *ResolveAppsHandler {
	return &ResolveAppsHandler{config: cfg, store: store, networks: networks, resolver: r}
}
