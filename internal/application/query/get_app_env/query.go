package get_app_env

// GetAppEnvQuery retrieves the resolved environment of one app as written
// to its env file.
type GetAppEnvQuery struct {
	AppID string
}

// Name returns the name of the query
func (q GetAppEnvQuery) Name() string {
	return "GetAppEnv"
}
