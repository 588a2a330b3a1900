package application

import (
	"github.com/docker/docker/client"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/infra/appstore"
	"github.com/getumbrel/umbrel-apps-sub001/internal/infra/orchestrator/docker_compose"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// NewAppStore returns the filesystem-backed store of installed apps.
func NewAppStore(cfg *config.Config) repository.AppStore {
	return appstore.NewAppStore(cfg)
}

// NewAppRuntime returns the compose-backed runtime used for start commands
// and container status queries.
func NewAppRuntime(cfg *config.Config) repository.AppRuntime {
	return docker_compose.NewComposeRepository(cfg, newDockerClient())
}

func newDockerClient() *client.Client {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		log.Fatal("Failed to create Docker client", "error", err)
	}
	return dockerClient
}
