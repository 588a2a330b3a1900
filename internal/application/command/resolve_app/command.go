package resolve_app

// ResolveAppCommand computes and publishes the environment of one app and
// writes its env file.
type ResolveAppCommand struct {
	AppID string
}

// Name returns the name of the command
func (c ResolveAppCommand) Name() string {
	return "ResolveApp"
}
