package capabilities

import "runtime"

// Capability names probed during platform preflight.
const (
	CapabilityDocker        = "docker"
	CapabilityDockerCompose = "docker-compose"
	CapabilityTor           = "tor"
	CapabilitySeed          = "seed"
)

// Capability represents one host prerequisite that can be detected.
type Capability interface {
	// Name returns the name of the capability.
	Name() string
	// Version returns the detected version, or the default when unknown.
	Version() string
	// IsAvailable probes the host and reports whether the capability works.
	IsAvailable() bool
}

// SystemInfo represents basic host information.
type SystemInfo struct {
	OS   string
	Arch string
}

// GetSystemInfo returns the current host information.
func GetSystemInfo() SystemInfo {
	return SystemInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// All returns every capability the platform depends on. Apps are
// materialized as compose projects, so docker and the compose plugin are
// hard prerequisites for every launcher operation; tor and the seed only
// gate optional features and app subsets. seedPath locates the platform
// entropy seed.
func All(seedPath string) []Capability {
	return []Capability{
		NewDockerCapability(),
		NewDockerComposeCapability(),
		NewTorCapability(),
		NewSeedCapability(seedPath),
	}
}
