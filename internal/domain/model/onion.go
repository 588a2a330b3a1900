package model

import "path/filepath"

// OnionSentinel is the resolved value of an onion export until the
// hidden-service hostname artifact exists on disk.
const OnionSentinel = "notyetset.onion"

// OnionArtifactPath returns the well-known hostname artifact location for a
// hidden service of one app service. Its contents, once present, are treated
// as immutable.
func OnionArtifactPath(torDataDir string, appID string, service string) string {
	return filepath.Join(torDataDir, "app-"+appID+"-"+service, "hostname")
}
