package docker

import (
	"strings"

	"github.com/docker/docker/api/types/container"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// MapDockerStateToContainerStatus maps a Docker container state to a ContainerStatusCode
func MapDockerStateToContainerStatus(state string) model.ContainerStatusCode {
	switch strings.ToLower(state) {
	case "running":
		return model.ContainerStatusActive
	case "exited", "stopped":
		return model.ContainerStatusStopped
	case "restarting":
		return model.ContainerStatusRestarting
	case "paused":
		return model.ContainerStatusIdle
	case "dead", "oomkilled":
		return model.ContainerStatusProblematic
	default:
		return model.ContainerStatusUnknown
	}
}

// MapDockerPortsToContainerPorts converts host-published Docker ports to a ContainerPort slice
func MapDockerPortsToContainerPorts(dockerPorts []container.Port) []model.ContainerPort {
	var ports []model.ContainerPort
	for _, dockerPort := range dockerPorts {
		if dockerPort.PublicPort > 0 {
			ports = append(ports, model.ContainerPort{
				Port:     int(dockerPort.PublicPort),
				Protocol: dockerPort.Type,
			})
		}
	}
	return ports
}
