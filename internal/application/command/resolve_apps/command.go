package resolve_apps

// ResolveAppsCommand runs a full boot pass: every installed app is resolved
// in dependency order and its env file written.
type ResolveAppsCommand struct{}

// Name returns the name of the command
func (c ResolveAppsCommand) Name() string {
	return "ResolveApps"
}
