package install_app

// InstallAppCommand registers an app delivered by the packaging layer and
// creates its private data directory.
type InstallAppCommand struct {
	AppID string
}

// Name returns the name of the command
func (c InstallAppCommand) Name() string {
	return "InstallApp"
}
