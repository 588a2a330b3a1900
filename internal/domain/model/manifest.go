package model

import (
	"fmt"

	"github.com/getumbrel/umbrel-apps-sub001/pkg/yaml"
)

// ManifestFilename is the name of the application manifest inside an app's
// installation directory.
const ManifestFilename = "app.yml"

// Manifest is the parsed application manifest.
type Manifest struct {
	ManifestVersion string       `yaml:"manifestVersion"`
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Version         string       `yaml:"version,omitempty"`
	Dependencies    []string     `yaml:"dependencies,omitempty"`
	Exports         []ExportSpec `yaml:"exports,omitempty"`
	Hooks           *Hooks       `yaml:"hooks,omitempty"`
}

// Hooks groups the lifecycle hooks an app may declare.
type Hooks struct {
	PreStart *PreStartHook `yaml:"preStart,omitempty"`
}

// PreStartHook gates the app's primary services on an asynchronously
// produced artifact. StartServices are brought up detached while waiting.
type PreStartHook struct {
	AwaitExport   string   `yaml:"awaitExport"`
	StartServices []string `yaml:"startServices,omitempty"`
}

// ParseManifest parses an application manifest from YAML bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Validate checks structural requirements of the manifest.
func (m *Manifest) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("manifest without an id")
	}
	if m.ManifestVersion == "" {
		return fmt.Errorf("manifest %s: missing manifestVersion", m.ID)
	}
	seen := make(map[string]bool, len(m.Exports))
	for i := range m.Exports {
		export := &m.Exports[i]
		if err := export.Validate(); err != nil {
			return fmt.Errorf("manifest %s: %w", m.ID, err)
		}
		if seen[export.Name] {
			return fmt.Errorf("manifest %s: duplicate export %s", m.ID, export.Name)
		}
		seen[export.Name] = true
	}
	if m.Hooks != nil && m.Hooks.PreStart != nil {
		hook := m.Hooks.PreStart
		if hook.AwaitExport == "" {
			return fmt.Errorf("manifest %s: preStart hook without awaitExport", m.ID)
		}
		if !seen[hook.AwaitExport] {
			return fmt.Errorf("manifest %s: preStart hook awaits unknown export %s", m.ID, hook.AwaitExport)
		}
	}
	return nil
}

// ExportByName returns the export spec with the given name.
func (m *Manifest) ExportByName(name string) (*ExportSpec, bool) {
	for i := range m.Exports {
		if m.Exports[i].Name == name {
			return &m.Exports[i], true
		}
	}
	return nil, false
}
