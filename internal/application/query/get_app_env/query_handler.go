package get_app_env

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/dto"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/env"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// GetAppEnvQueryHandler handles the GetAppEnvQuery
type GetAppEnvQueryHandler struct {
	store repository.AppStore
}

// Handle executes the GetAppEnvQuery and returns the result. The env file is
// the source read by the launcher, so the query reflects exactly what a
// service definition would see. An app that has never been resolved yields
// an empty environment.
func (h *GetAppEnvQueryHandler) Handle(query GetAppEnvQuery) (*dto.GetAppEnvResult, error) {
	if query.AppID == "" {
		return nil, log.Errorf("app ID is required for get app env query")
	}

	app, err := h.store.GetApp(query.AppID)
	if err != nil {
		return nil, err
	}

	envFile := resolver.EnvFilePath(app)
	vars, err := env.Load(envFile)
	if err != nil {
		return nil, log.Errorf("failed to read env file for %s: %v", app.ID, err)
	}

	return &dto.GetAppEnvResult{
		AppID:   app.ID,
		EnvFile: envFile,
		Env:     vars,
	}, nil
}

// NewGetAppEnvQueryHandler creates a new GetAppEnvQueryHandler
func NewGetAppEnvQueryHandler(store repository.AppStore) *GetAppEnvQueryHandler {
	return &GetAppEnvQueryHandler{store: store}
}
