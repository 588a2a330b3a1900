package docker_compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/infra/docker"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// composeProjectLabel identifies which compose project a container belongs
// to. Apps are started from their installation directory, so the project
// name is the app id.
const composeProjectLabel = "com.docker.compose.project"

// composeServiceLabel carries the compose service name of a container.
const composeServiceLabel = "com.docker.compose.service"

// GetAppStatus returns the aggregated container status of a single app.
func (r *composeRepository) GetAppStatus(ctx context.Context, appID string) (model.GetAppStatusResult, error) {
	log.Debug("getting app status", "app_id", appID)

	// The installation directory distinguishes a stopped app (directory
	// exists, no containers) from an unknown one.
	appDir := filepath.Join(r.config.GetAppsPath(), appID)
	appDirExists := files.DirExists(appDir)

	dockerContainers, err := r.listAppContainers(ctx, appID, "")
	if err != nil {
		return model.GetAppStatusResult{}, fmt.Errorf("failed to list containers for %s: %w", appID, err)
	}

	status := &model.AppStatus{
		ID:         appID,
		Name:       appID,
		Containers: make([]model.Container, 0, len(dockerContainers)),
	}
	for _, dockerContainer := range dockerContainers {
		c := model.Container{
			ID:         dockerContainer.ID,
			Service:    dockerContainer.Labels[composeServiceLabel],
			StatusCode: docker.MapDockerStateToContainerStatus(dockerContainer.State),
			Ports:      docker.MapDockerPortsToContainerPorts(dockerContainer.Ports),
		}
		if c.StatusCode == model.ContainerStatusProblematic {
			c.Error = fmt.Sprintf("container in problematic state: %s", dockerContainer.Status)
		}
		status.Containers = append(status.Containers, c)
	}

	if len(status.Containers) == 0 {
		if appDirExists {
			status.StatusCode = model.ContainerStatusStopped
		} else {
			status.StatusCode = model.ContainerStatusUnknown
		}
	} else {
		status.StatusCode = determineAppStatus(status.Containers)
	}

	return model.GetAppStatusResult{App: status}, nil
}

// GetAppsStatus aggregates the status of every installed app.
func (r *composeRepository) GetAppsStatus(ctx context.Context) (model.GetAppsStatusResult, error) {
	entries, err := os.ReadDir(r.config.GetAppsPath())
	if err != nil {
		return model.GetAppsStatusResult{}, fmt.Errorf("failed to read apps directory: %w", err)
	}

	var apps []*model.AppStatus
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		appID := entry.Name()

		result, err := r.GetAppStatus(ctx, appID)
		if err != nil {
			// One misbehaving app must not hide the others.
			log.Warn("failed to get status for app", "app_id", appID, "error", err)
			continue
		}
		if result.App != nil {
			apps = append(apps, result.App)
		}
	}

	log.Debug("apps status retrieved", "apps_count", len(apps))
	return model.GetAppsStatusResult{Apps: apps}, nil
}

// IsServiceRunning reports whether the named service of the app has a
// running container. The barrier uses it to skip start commands for
// producers that are already up.
func (r *composeRepository) IsServiceRunning(ctx context.Context, appID string, service string) (bool, error) {
	dockerContainers, err := r.listAppContainers(ctx, appID, service)
	if err != nil {
		return false, fmt.Errorf("failed to list containers for %s/%s: %w", appID, service, err)
	}
	for _, dockerContainer := range dockerContainers {
		if docker.MapDockerStateToContainerStatus(dockerContainer.State) == model.ContainerStatusActive {
			return true, nil
		}
	}
	return false, nil
}

// listAppContainers lists the app's containers via the compose labels,
// optionally narrowed to a single service.
func (r *composeRepository) listAppContainers(ctx context.Context, appID string, service string) ([]container.Summary, error) {
	filterArgs := filters.NewArgs()
	filterArgs.Add("label", fmt.Sprintf("%s=%s", composeProjectLabel, appID))
	if service != "" {
		filterArgs.Add("label", fmt.Sprintf("%s=%s", composeServiceLabel, service))
	}

	return r.client.ContainerList(ctx, container.ListOptions{All: true, Filters: filterArgs})
}

// determineAppStatus folds per-container states into one app-level status.
func determineAppStatus(containers []model.Container) model.ContainerStatusCode {
	if len(containers) == 0 {
		return model.ContainerStatusStopped
	}

	var active, idle, stopped, restarting, problematic int
	for _, c := range containers {
		switch c.StatusCode {
		case model.ContainerStatusActive:
			active++
		case model.ContainerStatusIdle:
			idle++
		case model.ContainerStatusStopped:
			stopped++
		case model.ContainerStatusRestarting:
			if c.ExitCode != 0 {
				problematic++
			} else {
				restarting++
			}
		default:
			problematic++
		}
	}

	switch {
	case problematic > 0:
		return model.ContainerStatusProblematic
	case restarting > 0:
		return model.ContainerStatusRestarting
	case active > 0 && stopped == 0 && idle == 0:
		return model.ContainerStatusActive
	case stopped > 0 && active == 0 && idle == 0:
		return model.ContainerStatusStopped
	case idle > 0 || (active > 0 && stopped > 0):
		return model.ContainerStatusIdle
	}
	return model.ContainerStatusUnknown
}
