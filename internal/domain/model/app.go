package model

// Well-known files inside an app's directories.
const (
	// EnvFilename is the resolved environment written into the app's
	// installation directory and consumed by the launcher.
	EnvFilename = ".env"
	// OverridesFilename is an optional operator-authored env file in the
	// app's data directory, applied last over computed entries.
	OverridesFilename = ".env.overrides"
	// SettingsFilename holds persisted app settings in env format.
	SettingsFilename = "settings.env"
)

// App represents an installed application: its manifest plus its on-disk
// locations and persisted settings.
type App struct {
	ID       string
	Dir      string // installation directory holding the manifest and compose files
	DataDir  string // private directory for persisted values and settings
	Manifest *Manifest
	Settings map[string]string
}

// Name returns the human-readable app name, falling back to the id.
func (a *App) Name() string {
	if a.Manifest != nil && a.Manifest.Name != "" {
		return a.Manifest.Name
	}
	return a.ID
}

// Dependencies returns the ids of the apps this app declares it depends on.
func (a *App) Dependencies() []string {
	if a.Manifest == nil {
		return nil
	}
	return a.Manifest.Dependencies
}

// PreStart returns the app's pre-start hook, or nil when none is declared.
func (a *App) PreStart() *PreStartHook {
	if a.Manifest == nil || a.Manifest.Hooks == nil {
		return nil
	}
	return a.Manifest.Hooks.PreStart
}

// Setting returns a persisted setting value by key.
func (a *App) Setting(key string) (string, bool) {
	value, ok := a.Settings[key]
	return value, ok
}
