package config

const (
	// FeatureEnvOverrides applies operator-authored env overrides on top of
	// computed app environments.
	FeatureEnvOverrides = "env_overrides"
	// FeatureDockerNetworks ensures the shared container network exists
	// before a resolution pass.
	FeatureDockerNetworks = "docker_networks"
	// FeatureOnionServices resolves hidden-service exports and runs their
	// readiness hooks. Disabled on hosts without tor.
	FeatureOnionServices = "onion_services"
)

// DefaultFeatureValues defines the default values for each feature
var DefaultFeatureValues = map[string]bool{
	FeatureEnvOverrides:   true,
	FeatureDockerNetworks: true,
	FeatureOnionServices:  true,
}

// IsFeatureEnabled checks if a feature is enabled in the configuration.
func (c *Config) IsFeatureEnabled(feature string) bool {
	value, exists := c.Features[feature]
	if !exists {
		return DefaultFeatureValues[feature]
	}
	return value
}
