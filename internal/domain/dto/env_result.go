package dto

// GetAppEnvResult represents the resolved environment of a single app.
// Keeping this struct in the domain layer allows application/query handlers
// to stay independent from infrastructure details while still returning rich
// data structures when required.
type GetAppEnvResult struct {
	AppID   string
	EnvFile string
	Env     map[string]string
}
