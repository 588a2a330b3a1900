package capabilities

import (
	"os"
	"strings"
)

// SeedCapability checks that the platform entropy seed exists and is not
// empty. Every derived secret is a pure function of it, so a host without a
// seed cannot resolve any app that exports one.
type SeedCapability struct {
	path string
}

// NewSeedCapability creates a probe for the seed file at path.
func NewSeedCapability(path string) *SeedCapability {
	return &SeedCapability{path: path}
}

// Name returns the name of the capability.
func (c *SeedCapability) Name() string {
	return CapabilitySeed
}

// Version returns "present" when the seed is usable. The seed itself is
// never logged or exposed.
func (c *SeedCapability) Version() string {
	if c.IsAvailable() {
		return "present"
	}
	return "missing"
}

// IsAvailable reports whether the seed file exists with non-empty contents.
func (c *SeedCapability) IsAvailable() bool {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) != ""
}
