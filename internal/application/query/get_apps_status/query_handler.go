package get_apps_status

import (
	"context"
	"fmt"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// GetAppsStatusQueryHandler handles the GetAppsStatusQuery
type GetAppsStatusQueryHandler struct {
	status repository.ContainerStatusRepository
}

// Handle executes the GetAppsStatusQuery and returns the result
func (h *GetAppsStatusQueryHandler) Handle(query GetAppsStatusQuery) (*model.GetAppsStatusResult, error) {
	result, err := h.status.GetAppsStatus(context.Background())
	if err != nil {
		log.Error("error getting apps status", "error", err)
		return nil, fmt.Errorf("failed to get apps status: %w", err)
	}

	log.Debug("retrieved apps status", "apps_count", len(result.Apps))
	return &model.GetAppsStatusResult{Apps: result.Apps}, nil
}

// NewGetAppsStatusQueryHandler creates a new GetAppsStatusQueryHandler
func NewGetAppsStatusQueryHandler(status repository.ContainerStatusRepository) *GetAppsStatusQueryHandler {
	return &GetAppsStatusQueryHandler{status: status}
}
