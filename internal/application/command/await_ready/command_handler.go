package await_ready

import (
	"context"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/readiness"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// AwaitReadyHandler handles the AwaitReadyCommand
type AwaitReadyHandler struct {
	config  *config.Config
	store   repository.AppStore
	runtime repository.AppRuntime
}

// Handle executes the AwaitReadyCommand. A timed-out wait is not an error:
// the primary services are allowed to start without the integration rather
// than holding up platform boot.
func (h *AwaitReadyHandler) Handle(cmd AwaitReadyCommand) error {
	if cmd.AppID == "" {
		return log.Errorf("app ID is required for await ready command")
	}

	app, err := h.store.GetApp(cmd.AppID)
	if err != nil {
		return err
	}
	if app.PreStart() == nil {
		log.Debug("app declares no pre-start hook", "app_id", app.ID)
		return nil
	}
	if !h.config.IsFeatureEnabled(config.FeatureOnionServices) {
		log.Info("onion services disabled, skipping readiness hook", "app_id", app.ID)
		return nil
	}

	barrier := readiness.NewBarrier(
		h.runtime,
		h.runtime,
		h.config.GetTorDataPath(),
		h.config.GetReadinessInterval(),
		h.config.GetReadinessMaxAttempts(),
	)

	result, err := barrier.Await(context.Background(), app)
	if err != nil {
		return err
	}

	switch result.State {
	case model.BarrierArtifactPresent:
		log.Info("readiness barrier released", "app_id", app.ID, "attempts", result.Attempts, "elapsed", result.Elapsed.String())
	case model.BarrierTimedOut:
		log.Warn("readiness barrier timed out, starting without the integration", "app_id", app.ID, "attempts", result.Attempts)
	}
	return nil
}

// NewAwaitReadyHandler creates a new AwaitReadyHandler
func NewAwaitReadyHandler(cfg *config.Config, store repository.AppStore, runtime repository.AppRuntime) *AwaitReadyHandler {
	return &AwaitReadyHandler{config: cfg, store: store, runtime: runtime}
}
