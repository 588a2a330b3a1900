package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// basePath may be overridden at build time.
var basePath string

const (
	// defaultBasePath defines the default file system path used by the platform for storing and accessing resources.
	defaultBasePath = "/opt/umbrel"
	// defaultDeviceDomain is the local domain apps are reachable under.
	defaultDeviceDomain = "local"
	// defaultNetworkName is the container network shared by all apps.
	defaultNetworkName = "umbrel_main_network"
	// defaultNetworkSubnet is the reserved range statically-assigned app addresses live in.
	defaultNetworkSubnet = "10.21.0.0/16"

	// defaultReadinessIntervalSeconds is the pause between readiness polls.
	defaultReadinessIntervalSeconds = 1
	// defaultReadinessMaxAttempts bounds the readiness poll budget.
	defaultReadinessMaxAttempts = 60

	// Platform folders
	appsFolder    = "apps"
	appDataFolder = "app-data"
	torDataFolder = "tor/data"

	// seedFile holds the platform-wide entropy seed.
	seedFile = "db/umbrel-seed/seed"
)

// Config holds the platform configuration
type Config struct {
	Features map[string]bool `json:"features"`
	// BasePath specifies the root directory used to store platform-related files and configurations.
	BasePath string `json:"base_path,omitempty"`
	// LogLevel specifies the minimum log level to output (debug, info, warn, error).
	LogLevel string `json:"log_level,omitempty"`
	// DeviceHostname overrides the hostname exposed to apps; defaults to the OS hostname.
	DeviceHostname string `json:"device_hostname,omitempty"`
	// DeviceDomain is the local domain apps are reachable under.
	DeviceDomain string `json:"device_domain,omitempty"`
	// NetworkName is the name of the shared container network.
	NetworkName string `json:"network_name,omitempty"`
	// NetworkSubnet is the subnet of the shared container network.
	NetworkSubnet string `json:"network_subnet,omitempty"`
	// ReadinessIntervalSeconds is the pause between readiness polls.
	ReadinessIntervalSeconds int `json:"readiness_interval_seconds,omitempty"`
	// ReadinessMaxAttempts bounds the readiness poll budget.
	ReadinessMaxAttempts int `json:"readiness_max_attempts,omitempty"`
}

// prepareConfig ensures the configuration is valid by applying defaults and validating features
func prepareConfig(cfg *Config) {
	if cfg.BasePath == "" {
		cfg.BasePath = defaultBasePath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DeviceDomain == "" {
		cfg.DeviceDomain = defaultDeviceDomain
	}
	if cfg.NetworkName == "" {
		cfg.NetworkName = defaultNetworkName
	}
	if cfg.NetworkSubnet == "" {
		cfg.NetworkSubnet = defaultNetworkSubnet
	}
	if cfg.ReadinessIntervalSeconds <= 0 {
		cfg.ReadinessIntervalSeconds = defaultReadinessIntervalSeconds
	}
	if cfg.ReadinessMaxAttempts <= 0 {
		cfg.ReadinessMaxAttempts = defaultReadinessMaxAttempts
	}

	// Validate and merge features
	cfg.Features = validateAndMergeFeatures(cfg.Features)
}

// validateAndMergeFeatures ensures only supported features are used and merges with defaults
func validateAndMergeFeatures(configFeatures map[string]bool) map[string]bool {
	if configFeatures == nil {
		configFeatures = make(map[string]bool)
	}

	mergedFeatures := make(map[string]bool)
	for feature, defaultValue := range DefaultFeatureValues {
		if value, exists := configFeatures[feature]; exists {
			mergedFeatures[feature] = value
		} else {
			mergedFeatures[feature] = defaultValue
		}
	}

	return mergedFeatures
}

func NewConfig() *Config {
	config := &Config{
		Features: make(map[string]bool),
	}

	// Apply build-time overrides or defaults
	if basePath != "" {
		config.BasePath = basePath
	} else {
		config.BasePath = defaultBasePath
	}

	return config
}

// LoadConfig loads the configuration from a JSON file. A missing or
// unreadable file yields a default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := NewConfig()

	// Set default features initially
	config.Features = validateAndMergeFeatures(nil)

	// Try to load existing config if it exists
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := json.Unmarshal(data, config); err == nil {
				prepareConfig(config)
				return config, nil
			}
		}
	}

	prepareConfig(config)
	return config, nil
}

// GetAppsPath returns the directory holding per-app installation directories.
func (c *Config) GetAppsPath() string {
	return c.buildPath(appsFolder)
}

// GetAppDataPath returns the directory holding per-app private data directories.
func (c *Config) GetAppDataPath() string {
	return c.buildPath(appDataFolder)
}

// GetTorDataPath returns the directory hidden-service artifacts appear under.
func (c *Config) GetTorDataPath() string {
	return c.buildPath(torDataFolder)
}

// GetSeedPath returns the location of the platform-wide entropy seed.
func (c *Config) GetSeedPath() string {
	return c.buildPath(seedFile)
}

func (c *Config) GetNetworkName() string {
	return c.NetworkName
}

func (c *Config) GetNetworkSubnet() string {
	return c.NetworkSubnet
}

// GetDeviceHostname returns the configured hostname, falling back to the OS
// hostname.
func (c *Config) GetDeviceHostname() string {
	if c.DeviceHostname != "" {
		return c.DeviceHostname
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return "umbrel"
}

func (c *Config) GetDeviceDomain() string {
	return c.DeviceDomain
}

// GetReadinessInterval returns the pause between readiness polls.
func (c *Config) GetReadinessInterval() time.Duration {
	return time.Duration(c.ReadinessIntervalSeconds) * time.Second
}

// GetReadinessMaxAttempts returns the readiness poll budget.
func (c *Config) GetReadinessMaxAttempts() int {
	return c.ReadinessMaxAttempts
}

// buildPath constructs a file path from base path and components
func (c *Config) buildPath(components ...string) string {
	parts := append([]string{c.BasePath}, components...)
	return filepath.Join(parts...)
}
