package await_ready

// AwaitReadyCommand runs the app's pre-start readiness hook. The platform
// supervisor invokes it right before the app's primary services start.
type AwaitReadyCommand struct {
	AppID string
}

// Name returns the name of the command
func (c AwaitReadyCommand) Name() string {
	return "AwaitReady"
}
