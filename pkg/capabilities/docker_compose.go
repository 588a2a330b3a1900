package capabilities

import (
	"os/exec"
	"strings"
)

// DockerComposeCapability probes the docker compose plugin.
type DockerComposeCapability struct {
	version string
}

// NewDockerComposeCapability creates a new docker compose capability probe.
func NewDockerComposeCapability() *DockerComposeCapability {
	return &DockerComposeCapability{version: "unknown"}
}

// Name returns the name of the capability.
func (c *DockerComposeCapability) Name() string {
	return CapabilityDockerCompose
}

// Version returns the detected compose version.
func (c *DockerComposeCapability) Version() string {
	return c.version
}

// IsAvailable checks whether the compose plugin responds on this host.
func (c *DockerComposeCapability) IsAvailable() bool {
	output, err := exec.Command("docker", "compose", "version").Output()
	if err != nil {
		return false
	}

	// Output looks like "Docker Compose version v2.32.1".
	text := string(output)
	if !strings.Contains(text, "Docker Compose version") {
		return false
	}
	if parts := strings.Fields(text); len(parts) > 3 {
		c.version = strings.TrimPrefix(parts[3], "v")
	}
	return true
}
