package docker_compose

import (
	"sync"

	"github.com/docker/docker/client"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
)

// composeRepository implements the AppRuntime interface on top of the docker
// compose plugin and the docker API.
//
// The implementation is split across several files in this package:
//  - repository.go   – struct definition, constructor, simple accessors
//  - compose_cmd.go  – helpers that wrap `docker compose` CLI invocations
//  - status.go       – container status queries and aggregation
//
// All methods belong to the *composeRepository receiver; Go allows methods to
// be declared in any file within the same package.
type composeRepository struct {
	client *client.Client
	mu     sync.RWMutex
	config *config.Config
}

// Compile-time assertion that *composeRepository implements the interface.
var _ repository.AppRuntime = (*composeRepository)(nil)

// NewComposeRepository creates a new docker compose backed AppRuntime implementation.
func NewComposeRepository(cfg *config.Config, dockerClient *client.Client) repository.AppRuntime {
	return &composeRepository{
		client: dockerClient,
		config: cfg,
	}
}

// GetClient returns the underlying Docker client instance.
func (r *composeRepository) GetClient() *client.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.client
}
