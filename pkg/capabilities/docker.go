package capabilities

import (
	"os/exec"
	"strings"
)

// DockerCapability probes the docker CLI.
type DockerCapability struct {
	version string
}

// NewDockerCapability creates a new docker capability probe.
func NewDockerCapability() *DockerCapability {
	return &DockerCapability{version: "unknown"}
}

// Name returns the name of the capability.
func (c *DockerCapability) Name() string {
	return CapabilityDocker
}

// Version returns the detected docker version.
func (c *DockerCapability) Version() string {
	return c.version
}

// IsAvailable checks whether the docker CLI responds on this host.
func (c *DockerCapability) IsAvailable() bool {
	output, err := exec.Command("docker", "--version").Output()
	if err != nil {
		return false
	}

	// Output looks like "Docker version 28.2.2, build e6534b4".
	text := string(output)
	if !strings.Contains(text, "Docker version") {
		return false
	}
	if parts := strings.Fields(text); len(parts) > 2 {
		c.version = strings.TrimSuffix(parts[2], ",")
	}
	return true
}
