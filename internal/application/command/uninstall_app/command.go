package uninstall_app

// UninstallAppCommand deregisters an app and removes its private data
// directory.
type UninstallAppCommand struct {
	AppID string
}

// Name returns the name of the command
func (c UninstallAppCommand) Name() string {
	return "UninstallApp"
}
