package capabilities

import (
	"os/exec"
	"strings"
)

// TorCapability probes the tor binary. Hidden-service exports and their
// readiness hooks only work on hosts that have it.
type TorCapability struct {
	version string
}

// NewTorCapability creates a new tor capability probe.
func NewTorCapability() *TorCapability {
	return &TorCapability{version: "unknown"}
}

// Name returns the name of the capability.
func (c *TorCapability) Name() string {
	return CapabilityTor
}

// Version returns the detected tor version.
func (c *TorCapability) Version() string {
	return c.version
}

// IsAvailable checks whether the tor binary responds on this host.
func (c *TorCapability) IsAvailable() bool {
	output, err := exec.Command("tor", "--version").Output()
	if err != nil {
		return false
	}

	// Output starts with "Tor version 0.4.8.13.".
	text := string(output)
	if !strings.Contains(text, "Tor version") {
		return false
	}
	if parts := strings.Fields(text); len(parts) > 2 {
		c.version = strings.TrimSuffix(parts[2], ".")
	}
	return true
}
