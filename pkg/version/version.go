package version

import (
	"strconv"
	"strings"
)

// version is injected at build time via -ldflags.
var version = "0.0.0"

// GetVersion returns the platform tool version string.
func GetVersion() string {
	return version
}

// GetNumericVersion returns the build version in comparable numeric form.
func GetNumericVersion() int {
	return Numeric(version)
}

// Numeric converts a dotted version string ("1", "1.1", "2.0.3") into an
// integer that orders the same way the versions do, with three digits per
// component. Missing components count as zero so "2" orders above "1.1".
// Used to gate manifests written for a newer platform.
func Numeric(v string) int {
	parts := strings.Split(v, ".")
	result := 0
	for i := 0; i < 3; i++ {
		num := 0
		if i < len(parts) {
			num, _ = strconv.Atoi(strings.TrimSpace(parts[i]))
		}
		result = result*1000 + num
	}
	return result
}
