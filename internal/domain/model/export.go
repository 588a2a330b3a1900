package model

import "fmt"

// ExportKind classifies an exported environment value.
type ExportKind string

const (
	// ExportKindStatic is a literal or templated string, internal to the app.
	ExportKindStatic ExportKind = "static"
	// ExportKindAddress is a statically-assigned container address, globally unique.
	ExportKindAddress ExportKind = "address"
	// ExportKindPort is a host-exposed port, globally unique.
	ExportKindPort ExportKind = "port"
	// ExportKindPath is a filesystem path, typically built from builtins.
	ExportKindPath ExportKind = "path"
	// ExportKindSecret is derived from the platform seed and a label.
	ExportKindSecret ExportKind = "secret"
	// ExportKindGenerated is generated once, persisted to a file and reused verbatim.
	ExportKindGenerated ExportKind = "generated"
	// ExportKindRef reads another app's published export.
	ExportKindRef ExportKind = "ref"
	// ExportKindOnion reads a hidden-service hostname artifact.
	ExportKindOnion ExportKind = "onion"
)

// Generators for one-time persisted values.
const (
	GeneratorHex  = "hex"
	GeneratorUUID = "uuid"
)

// ExportSpec declares one environment export of an application manifest.
// Which fields apply depends on Kind.
type ExportSpec struct {
	Name      string      `yaml:"name"`
	Kind      ExportKind  `yaml:"kind"`
	Value     string      `yaml:"value,omitempty"`
	Label     string      `yaml:"label,omitempty"`
	Generator string      `yaml:"generator,omitempty"`
	File      string      `yaml:"file,omitempty"`
	App       string      `yaml:"app,omitempty"`
	Export    string      `yaml:"export,omitempty"`
	Default   string      `yaml:"default,omitempty"`
	Service   string      `yaml:"service,omitempty"`
	Select    *SelectSpec `yaml:"select,omitempty"`
}

// SelectSpec picks a value variant based on a persisted app setting.
type SelectSpec struct {
	Setting string            `yaml:"setting"`
	Cases   map[string]string `yaml:"cases"`
	Default string            `yaml:"default,omitempty"`
}

// Validate checks that the spec carries the fields its kind requires.
func (s *ExportSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("export without a name")
	}
	switch s.Kind {
	case ExportKindStatic, ExportKindPath:
		if s.Value == "" && s.Select == nil {
			return fmt.Errorf("export %s: kind %s requires a value or a select block", s.Name, s.Kind)
		}
	case ExportKindAddress, ExportKindPort:
		if s.Value == "" {
			return fmt.Errorf("export %s: kind %s requires a value", s.Name, s.Kind)
		}
	case ExportKindSecret:
		// Label defaults to the lowercased export name.
	case ExportKindGenerated:
		if s.Generator != GeneratorHex && s.Generator != GeneratorUUID {
			return fmt.Errorf("export %s: unknown generator %q", s.Name, s.Generator)
		}
		if s.File == "" {
			return fmt.Errorf("export %s: kind generated requires a file", s.Name)
		}
	case ExportKindRef:
		if s.App == "" || s.Export == "" {
			return fmt.Errorf("export %s: kind ref requires app and export", s.Name)
		}
	case ExportKindOnion:
		if s.Service == "" {
			return fmt.Errorf("export %s: kind onion requires a service", s.Name)
		}
	default:
		return fmt.Errorf("export %s: unknown kind %q", s.Name, s.Kind)
	}
	if s.Select != nil && s.Select.Setting == "" {
		return fmt.Errorf("export %s: select block without a setting", s.Name)
	}
	return nil
}
