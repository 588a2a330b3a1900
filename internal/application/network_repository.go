package application

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/internal/infra/docker/network"
)

// NewNetworkRepository returns the docker-backed manager of the platform's
// shared container network.
func NewNetworkRepository() repository.NetworkRepository {
	return network.NewDockerNetworkRepository(newDockerClient())
}
